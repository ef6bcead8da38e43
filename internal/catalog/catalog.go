// Package catalog holds the fixed fixture catalogs: ordered sets of
// literal HTTP/1.1 request and response payloads, keyed by output
// filename. The payloads are test inputs for HTTP parsers elsewhere;
// they are written to disk verbatim and never parsed or validated here.
package catalog

import (
	"fmt"
	"strings"
)

// Entry is one fixture: an output filename and the exact bytes to
// write to it. Payloads may contain arbitrary bytes and are not
// required to be valid UTF-8.
type Entry struct {
	Name    string
	Payload []byte
}

// Catalog is an immutable ordered list of fixture entries. Order is
// insertion order and determines write/log ordering only; the numeric
// filename prefix carries the stable display order.
type Catalog struct {
	Name    string
	Entries []Entry
}

// Validate checks that every entry has a name and that no two entries
// share one.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Entries))
	for i, e := range c.Entries {
		if e.Name == "" {
			return fmt.Errorf("catalog %s: entry %d has empty name", c.Name, i)
		}
		if seen[e.Name] {
			return fmt.Errorf("catalog %s: duplicate entry name %s", c.Name, e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

// Len returns the number of entries.
func (c Catalog) Len() int { return len(c.Entries) }

// Lookup returns the entry with the given name.
func (c Catalog) Lookup(name string) (Entry, bool) {
	for _, e := range c.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

func entry(name, payload string) Entry {
	return Entry{Name: name, Payload: []byte(payload)}
}

// numberedLines renders count lines of format, one per index, each
// terminated with CRLF. Used for the many-headers fixture.
func numberedLines(format string, count int) string {
	var b strings.Builder
	for i := 0; i < count; i++ {
		fmt.Fprintf(&b, format, i, i)
		b.WriteString("\r\n")
	}
	return b.String()
}

// numberedParams renders count query parameters paramN=valueN joined
// by '&'.
func numberedParams(count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = fmt.Sprintf("param%d=value%d", i, i)
	}
	return strings.Join(parts, "&")
}

// rawBytes returns every byte value from 1 through 255 except NUL, LF
// and CR, exactly once, in ascending order. 253 bytes.
func rawBytes() []byte {
	b := make([]byte, 0, 253)
	for i := 1; i <= 255; i++ {
		if i == '\n' || i == '\r' {
			continue
		}
		b = append(b, byte(i))
	}
	return b
}
