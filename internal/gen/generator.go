// Package gen writes fixture catalogs to disk. One Generator handles
// one catalog and one output directory; writes are sequential, in
// catalog order, and overwrite whatever is already there.
package gen

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/bft-labs/fixgen/internal/catalog"
)

// Generator writes every entry of a catalog into Dir.
type Generator struct {
	Catalog catalog.Catalog
	Dir     string

	// Out receives the "Created: <path>" progress lines and the
	// trailing summary. Defaults to os.Stdout.
	Out io.Writer

	// Manifest enables writing a manifest.json sidecar after a
	// successful run.
	Manifest bool

	// Quiet suppresses the progress stream. Filesystem effects are
	// unchanged.
	Quiet bool
}

// New validates the catalog and returns a Generator targeting dir.
func New(cat catalog.Catalog, dir string) (*Generator, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	if dir == "" {
		return nil, fmt.Errorf("catalog %s: output directory is required", cat.Name)
	}
	return &Generator{Catalog: cat, Dir: dir, Out: os.Stdout}, nil
}

// Run creates the output directory (parents included) and writes each
// entry's payload to its named file as exact bytes. The first
// filesystem error aborts the run; files already written stay on disk.
func (g *Generator) Run() error {
	out := g.out()

	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", g.Dir, err)
	}

	for _, e := range g.Catalog.Entries {
		path, err := g.WriteEntry(e)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Created: %s\n", path)
	}

	if g.Manifest {
		if err := writeManifest(g.Dir, g.Catalog); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "\nGenerated %d fixtures in %s\n", g.Catalog.Len(), g.Dir)
	logger.Info().Str("dir", g.Dir).Int("count", g.Catalog.Len()).Msg("catalog written")
	return nil
}

// WriteEntry writes a single entry under Dir and returns the path.
// The payload lands via temp file + rename, so a concurrent reader
// never observes a torn fixture.
func (g *Generator) WriteEntry(e catalog.Entry) (string, error) {
	path := filepath.Join(g.Dir, e.Name)
	if err := atomic.WriteFile(path, bytes.NewReader(e.Payload)); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func (g *Generator) out() io.Writer {
	if g.Quiet {
		return io.Discard
	}
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}
