package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (FIXGEN_*). It respects flags that have been explicitly set (changed
// map). Returns an error if an environment variable has an invalid
// format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("requests-dir", os.Getenv("FIXGEN_REQUESTS_DIR"), &cfg.RequestsDir)
	s.setString("responses-dir", os.Getenv("FIXGEN_RESPONSES_DIR"), &cfg.ResponsesDir)

	s.setBoolFromString("manifest", os.Getenv("FIXGEN_MANIFEST"), &cfg.Manifest)
	s.setBoolFromString("quiet", os.Getenv("FIXGEN_QUIET"), &cfg.Quiet)

	return s.setDuration("watch-debounce", os.Getenv("FIXGEN_WATCH_DEBOUNCE"), &cfg.WatchDebounce)
}
