package gen

import (
	"encoding/json"
	"hash/crc32"
	"os"
	"path/filepath"

	"github.com/bft-labs/fixgen/internal/catalog"
)

// ManifestEntry describes one written fixture so downstream test
// suites can detect drift without embedding the payloads.
type ManifestEntry struct {
	Name  string `json:"name"`
	Size  int    `json:"size"`
	CRC32 uint32 `json:"crc32"`
}

func manifestFile(dir string) string { return filepath.Join(dir, "manifest.json") }

func buildManifest(cat catalog.Catalog) []ManifestEntry {
	entries := make([]ManifestEntry, 0, cat.Len())
	for _, e := range cat.Entries {
		entries = append(entries, ManifestEntry{
			Name:  e.Name,
			Size:  len(e.Payload),
			CRC32: crc32.ChecksumIEEE(e.Payload),
		})
	}
	return entries
}

func writeManifest(dir string, cat catalog.Catalog) error {
	b, err := json.MarshalIndent(buildManifest(cat), "", "  ")
	if err != nil {
		return err
	}
	tmp := manifestFile(dir) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, manifestFile(dir))
}

// LoadManifest reads manifest.json from dir.
func LoadManifest(dir string) ([]ManifestEntry, error) {
	b, err := os.ReadFile(manifestFile(dir))
	if err != nil {
		return nil, err
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
