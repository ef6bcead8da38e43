package cliconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				RequestsDir:   "fixtures/req",
				ResponsesDir:  "fixtures/resp",
				Manifest:      &trueVal,
				WatchDebounce: "250ms",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				RequestsDir:   "fixtures/req",
				ResponsesDir:  "fixtures/resp",
				Manifest:      true,
				WatchDebounce: 250 * time.Millisecond,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				RequestsDir:  "from/file",
				ResponsesDir: "from/file/resp",
			},
			changed: map[string]bool{"requests-dir": true},
			initial: Config{
				RequestsDir: "from/flag",
			},
			expected: Config{
				RequestsDir:  "from/flag", // unchanged because flag was set
				ResponsesDir: "from/file/resp",
			},
		},
		{
			name:     "empty file config is a no-op",
			changed:  map[string]bool{},
			initial:  DefaultConfig(),
			expected: DefaultConfig(),
		},
		{
			name: "invalid debounce",
			fileConfig: FileConfig{
				WatchDebounce: "not-a-duration",
			},
			changed: map[string]bool{},
			initial: Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig returned error: %v", err)
			}
			if !reflect.DeepEqual(cfg, tt.expected) {
				t.Fatalf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
requests_dir = "rq"
responses_dir = "rs"
manifest = true
watch_debounce = "1s"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig returned error: %v", err)
	}
	if fc.RequestsDir != "rq" || fc.ResponsesDir != "rs" {
		t.Fatalf("dirs = %q/%q, want rq/rs", fc.RequestsDir, fc.ResponsesDir)
	}
	if fc.Manifest == nil || !*fc.Manifest {
		t.Fatal("manifest not parsed as true")
	}
	if fc.WatchDebounce != "1s" {
		t.Fatalf("watch_debounce = %q, want 1s", fc.WatchDebounce)
	}
}

func TestLoadFileConfigErrors(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("requests_dir = ["), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFileConfig(bad); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}
