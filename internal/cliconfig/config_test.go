package cliconfig

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.RequestsDir != "sample_requests" {
		t.Fatalf("RequestsDir = %q, want sample_requests", cfg.RequestsDir)
	}
	if cfg.ResponsesDir != "sample_responses" {
		t.Fatalf("ResponsesDir = %q, want sample_responses", cfg.ResponsesDir)
	}
	if cfg.Manifest || cfg.Quiet {
		t.Fatal("manifest and quiet must default to off")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty requests dir",
			mutate:  func(c *Config) { c.RequestsDir = "" },
			wantErr: "requests-dir is required",
		},
		{
			name:    "empty responses dir",
			mutate:  func(c *Config) { c.ResponsesDir = "" },
			wantErr: "responses-dir is required",
		},
		{
			name: "same dir for both",
			mutate: func(c *Config) {
				c.RequestsDir = "out"
				c.ResponsesDir = "out"
			},
			wantErr: "must differ",
		},
		{
			name:    "non-positive debounce",
			mutate:  func(c *Config) { c.WatchDebounce = 0 },
			wantErr: "debounce must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate returned error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigSetterPrecedence(t *testing.T) {
	s := newConfigSetter(map[string]bool{"requests-dir": true})

	dst := "from-flag"
	s.setString("requests-dir", "from-file", &dst)
	if dst != "from-flag" {
		t.Fatalf("changed flag was overridden: %q", dst)
	}

	s.setString("responses-dir", "from-file", &dst)
	if dst != "from-file" {
		t.Fatalf("unchanged value not applied: %q", dst)
	}

	var d time.Duration
	if err := s.setDuration("watch-debounce", "250ms", &d); err != nil {
		t.Fatalf("setDuration: %v", err)
	}
	if d != 250*time.Millisecond {
		t.Fatalf("duration = %v, want 250ms", d)
	}
	if err := s.setDuration("watch-debounce", "nonsense", &d); err == nil {
		t.Fatal("expected parse error for bad duration")
	}
}
