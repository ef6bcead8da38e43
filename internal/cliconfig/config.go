// Package cliconfig layers fixgen configuration: built-in defaults,
// then a TOML config file, then FIXGEN_* environment variables, then
// command-line flags. A changed-flags map keeps explicitly set flags
// from being overridden by lower layers.
package cliconfig

import (
	"fmt"
	"os"
	"time"
)

// Default output directories, relative to the working directory.
const (
	DefaultRequestsDir  = "sample_requests"
	DefaultResponsesDir = "sample_responses"
)

// Config holds CLI configuration for fixgen.
type Config struct {
	RequestsDir  string
	ResponsesDir string

	Manifest bool
	Quiet    bool

	WatchDebounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		RequestsDir:   DefaultRequestsDir,
		ResponsesDir:  DefaultResponsesDir,
		WatchDebounce: 100 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.RequestsDir == "" {
		return fmt.Errorf("requests-dir is required")
	}
	if c.ResponsesDir == "" {
		return fmt.Errorf("responses-dir is required")
	}
	if c.RequestsDir == c.ResponsesDir {
		return fmt.Errorf("requests-dir and responses-dir must differ")
	}
	if c.WatchDebounce <= 0 {
		return fmt.Errorf("watch debounce must be positive")
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't
// been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag
// not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
