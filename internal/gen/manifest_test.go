package gen

import (
	"bytes"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"
)

func TestManifestWrittenWhenEnabled(t *testing.T) {
	dir := t.TempDir()
	g, err := New(testCatalog(), dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Out = &bytes.Buffer{}
	g.Manifest = true

	if err := g.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	entries, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if len(entries) != g.Catalog.Len() {
		t.Fatalf("expected %d manifest entries, got %d", g.Catalog.Len(), len(entries))
	}

	for i, e := range g.Catalog.Entries {
		m := entries[i]
		if m.Name != e.Name {
			t.Errorf("entry %d: name %s, want %s", i, m.Name, e.Name)
		}
		if m.Size != len(e.Payload) {
			t.Errorf("entry %d: size %d, want %d", i, m.Size, len(e.Payload))
		}
		if want := crc32.ChecksumIEEE(e.Payload); m.CRC32 != want {
			t.Errorf("entry %d: crc32 %d, want %d", i, m.CRC32, want)
		}
	}
}

func TestManifestSkippedByDefault(t *testing.T) {
	dir := t.TempDir()
	g, err := New(testCatalog(), dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Out = &bytes.Buffer{}

	if err := g.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "manifest.json")); !os.IsNotExist(err) {
		t.Fatalf("expected no manifest.json, stat err = %v", err)
	}
}
