package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !reflect.DeepEqual(cfg.Sources, DefaultSources) {
		t.Errorf("Expected default llvm-sys sources, got %v", cfg.Sources)
	}
	if cfg.Fetch.Timeout != 30*time.Second || cfg.Fetch.Concurrency != 4 {
		t.Errorf("Unexpected fetch defaults: %+v", cfg.Fetch)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}

	// Sources must be a copy
	cfg.Sources[0] = "changed.rs"
	if DefaultSources[0] == "changed.rs" {
		t.Error("Expected Default to copy the source list")
	}
}

func TestParse(t *testing.T) {
	content := `
sources:
  - src/core.rs
  - https://example.com/target.rs
output: llvm.kan
fetch:
  timeout: 5s
log:
  level: debug
`
	cfg, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}

	expectedSources := []string{"src/core.rs", "https://example.com/target.rs"}
	if !reflect.DeepEqual(cfg.Sources, expectedSources) {
		t.Errorf("Expected sources %v, got %v", expectedSources, cfg.Sources)
	}
	if cfg.Output != "llvm.kan" {
		t.Errorf("Expected output llvm.kan, got %q", cfg.Output)
	}
	if cfg.Fetch.Timeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %s", cfg.Fetch.Timeout)
	}
	if cfg.Fetch.Concurrency != 4 || cfg.Fetch.UserAgent != "kantan-bindgen" {
		t.Errorf("Expected unset fetch fields to keep defaults, got %+v", cfg.Fetch)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("Unexpected log config: %+v", cfg.Log)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"malformed yaml", "sources: [", "failed to parse config"},
		{"empty source list", "sources: []", "at least one source"},
		{"empty source", "sources:\n  - \"\"", "source 0 is empty"},
		{"bad concurrency", "fetch:\n  concurrency: 0", "concurrency"},
		{"bad timeout", "fetch:\n  timeout: -1s", "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("Expected error containing %q, got %v", tt.errText, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	cfg := Default()
	cfg.Sources = []string{"src/core.rs"}
	cfg.Output = "out/llvm.kan"
	cfg.Fetch.Concurrency = 8

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("Expected %+v, got %+v", cfg, loaded)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

