// Package fixgen generates static HTTP/1.1 fixture files: fixed
// catalogs of literal request and response byte payloads written to
// disk as test inputs for HTTP parsers elsewhere. The payloads are
// emitted verbatim; nothing here parses or validates them.
//
// Example usage:
//
//	if err := fixgen.GenerateRequests("sample_requests"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := fixgen.GenerateResponses("sample_responses"); err != nil {
//	    log.Fatal(err)
//	}
package fixgen

import (
	"github.com/rs/zerolog"

	"github.com/bft-labs/fixgen/internal/catalog"
	"github.com/bft-labs/fixgen/internal/gen"
)

// Entry is one fixture: an output filename and the exact bytes to
// write to it.
type Entry = catalog.Entry

// Catalog is an immutable ordered list of fixture entries.
type Catalog = catalog.Catalog

// Requests returns the request fixture catalog (32 entries).
func Requests() Catalog { return catalog.Requests() }

// Responses returns the response fixture catalog (16 entries).
func Responses() Catalog { return catalog.Responses() }

// Generate writes every entry of cat into dir, creating the directory
// if needed. Progress lines go to stdout.
func Generate(cat Catalog, dir string) error {
	g, err := gen.New(cat, dir)
	if err != nil {
		return err
	}
	return g.Run()
}

// GenerateRequests writes the request catalog into dir.
func GenerateRequests(dir string) error { return Generate(catalog.Requests(), dir) }

// GenerateResponses writes the response catalog into dir.
func GenerateResponses(dir string) error { return Generate(catalog.Responses(), dir) }

// Logger returns the package-level zerolog logger used by the generators.
func Logger() zerolog.Logger { return gen.Logger() }
