package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make
// TOML friendly.
type FileConfig struct {
	RequestsDir   string `toml:"requests_dir"`
	ResponsesDir  string `toml:"responses_dir"`
	Manifest      *bool  `toml:"manifest"`
	Quiet         *bool  `toml:"quiet"`
	WatchDebounce string `toml:"watch_debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.fixgen/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".fixgen", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config
// struct. It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("requests-dir", fc.RequestsDir, &cfg.RequestsDir)
	s.setString("responses-dir", fc.ResponsesDir, &cfg.ResponsesDir)
	s.setBool("manifest", fc.Manifest, &cfg.Manifest)
	s.setBool("quiet", fc.Quiet, &cfg.Quiet)

	return s.setDuration("watch-debounce", fc.WatchDebounce, &cfg.WatchDebounce)
}
