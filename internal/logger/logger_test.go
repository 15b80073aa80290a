package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dbsmedya/tablediff/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string // String representation of zapcore.Level
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"", "info"}, // empty defaults to info
		{"warn", "warn"},
		{"error", "error"},
		{"unknown", "info"}, // unknown defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level := parseLevel(tt.input)
			if level.String() != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, level.String(), tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.LoggingConfig
	}{
		{
			name: "json format info level",
			cfg:  &config.LoggingConfig{Level: "info", Format: "json", Output: "stderr"},
		},
		{
			name: "text format debug level",
			cfg:  &config.LoggingConfig{Level: "debug", Format: "text", Output: "stdout"},
		},
		{
			name: "empty config uses defaults",
			cfg:  &config.LoggingConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if log == nil {
				t.Fatal("New returned nil logger")
			}
		})
	}
}

func TestNewDefault(t *testing.T) {
	log := NewDefault()
	if log == nil {
		t.Fatal("NewDefault returned nil")
	}
	log.Info("default logger works")
}

func TestFileOutput(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	log, err := New(&config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: logPath,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Infow("comparison started", "left", "a.csv", "right", "b.csv")
	log.Sync()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "comparison started") {
		t.Errorf("log file missing message: %s", data)
	}
	if !strings.Contains(string(data), `"left"`) {
		t.Errorf("log file missing structured field: %s", data)
	}
}

func TestWithDataset(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	log, err := New(&config.LoggingConfig{Level: "info", Format: "json", Output: logPath})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.WithDataset("customers").WithColumn("id").Info("checking")
	log.Sync()

	data, _ := os.ReadFile(logPath)
	if !strings.Contains(string(data), `"dataset":"customers"`) {
		t.Errorf("missing dataset context: %s", data)
	}
	if !strings.Contains(string(data), `"column":"id"`) {
		t.Errorf("missing column context: %s", data)
	}
}

func TestWithFields(t *testing.T) {
	log := NewDefault()
	enriched := log.WithFields(map[string]interface{}{
		"rows":    10,
		"columns": 3,
	})
	if enriched == nil {
		t.Fatal("WithFields returned nil")
	}
}
