package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Left.Path = "a.csv"
	cfg.Right.Path = "b.csv"
	return cfg
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestValidateSource(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "no source at all",
			mutate:  func(c *Config) { c.Left.Path = "" },
			wantErr: "either path or dsn+query is required",
		},
		{
			name: "path and dsn together",
			mutate: func(c *Config) {
				c.Left.DSN = "user@/db"
				c.Left.Query = "SELECT 1"
			},
			wantErr: "mutually exclusive",
		},
		{
			name: "dsn without query",
			mutate: func(c *Config) {
				c.Right.Path = ""
				c.Right.DSN = "user@/db"
			},
			wantErr: "dsn and query must both be set",
		},
		{
			name:    "multi-character delimiter",
			mutate:  func(c *Config) { c.Left.Delimiter = ",," },
			wantErr: "single character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateMapping(t *testing.T) {
	t.Run("duplicate left column", func(t *testing.T) {
		cfg := validConfig()
		cfg.Mapping = []MappingEntry{
			{Left: "id", Right: "a"},
			{Left: "id", Right: "b"},
		}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for duplicate left column")
		}
	})

	t.Run("duplicate right column", func(t *testing.T) {
		cfg := validConfig()
		cfg.Mapping = []MappingEntry{
			{Left: "a", Right: "id"},
			{Left: "b", Right: "id"},
		}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for two left columns mapping to one right column")
		}
	})

	t.Run("empty entry", func(t *testing.T) {
		cfg := validConfig()
		cfg.Mapping = []MappingEntry{{Left: "id"}}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for entry without right column")
		}
	})

	t.Run("custom mode without entries", func(t *testing.T) {
		cfg := validConfig()
		cfg.Display.Mode = "custom"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for custom mode with empty mapping")
		}
	})

	t.Run("custom mode with entries", func(t *testing.T) {
		cfg := validConfig()
		cfg.Display.Mode = "custom"
		cfg.Mapping = []MappingEntry{{Left: "id", Right: "id"}}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestValidateDisplay(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"negative limit", func(c *Config) { c.Display.Limit = -1 }, true},
		{"zero limit means unlimited", func(c *Config) { c.Display.Limit = 0 }, false},
		{"unknown filter", func(c *Config) { c.Display.Filter = "some" }, true},
		{"both filter", func(c *Config) { c.Display.Filter = "both" }, false},
		{"unknown mode", func(c *Config) { c.Display.Mode = "weird" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}

	cfg = validConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log format")
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors for empty sources")
	}
	msg := err.Error()
	if !strings.Contains(msg, "validation failed") {
		t.Errorf("aggregate message missing prefix: %q", msg)
	}
	if !strings.Contains(msg, "left") || !strings.Contains(msg, "right") {
		t.Errorf("aggregate message should mention both sides: %q", msg)
	}
}
