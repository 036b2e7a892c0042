// Package config loads the optional .bindgen.yaml run configuration.
// Only where documents come from and where output goes are configurable;
// the whitelist and type table are compiled in.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// FileName is the default configuration file name
const FileName = ".bindgen.yaml"

// Config is the top-level run configuration
type Config struct {
	Sources []string    `yaml:"sources"`          // Local paths or http(s) URLs, in order
	Output  string      `yaml:"output,omitempty"` // Output file, stdout when empty
	Fetch   FetchConfig `yaml:"fetch"`
	Log     LogConfig   `yaml:"log"`
}

// FetchConfig controls document retrieval
type FetchConfig struct {
	Timeout     time.Duration `yaml:"timeout"`     // Per-request timeout
	Concurrency int           `yaml:"concurrency"` // Parallel downloads
	UserAgent   string        `yaml:"user_agent,omitempty"`
}

// LogConfig controls structured logging
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// llvm-sys sources the Kantan compiler binds against
var DefaultSources = []string{
	"https://gitlab.com/taricorp/llvm-sys.rs/-/raw/master/src/core.rs",
	"https://gitlab.com/taricorp/llvm-sys.rs/-/raw/master/src/linker.rs",
	"https://gitlab.com/taricorp/llvm-sys.rs/-/raw/master/src/analysis.rs",
	"https://gitlab.com/taricorp/llvm-sys.rs/-/raw/master/src/target.rs",
	"https://gitlab.com/taricorp/llvm-sys.rs/-/raw/master/src/target_machine.rs",
	"https://gitlab.com/taricorp/llvm-sys.rs/-/raw/master/src/bit_reader.rs",
	"https://gitlab.com/taricorp/llvm-sys.rs/-/raw/master/src/bit_writer.rs",
	"https://gitlab.com/taricorp/llvm-sys.rs/-/raw/master/src/transforms/pass_manager.rs",
	"https://gitlab.com/taricorp/llvm-sys.rs/-/raw/master/src/transforms/pass_manager_builder.rs",
	"https://gitlab.com/taricorp/llvm-sys.rs/-/raw/master/src/transforms/scalar.rs",
	"https://gitlab.com/taricorp/llvm-sys.rs/-/raw/master/src/transforms/util.rs",
}

// Default returns the configuration used when no file is present
func Default() *Config {
	sources := make([]string, len(DefaultSources))
	copy(sources, DefaultSources)

	return &Config{
		Sources: sources,
		Fetch: FetchConfig{
			Timeout:     30 * time.Second,
			Concurrency: 4,
			UserAgent:   "kantan-bindgen",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads a configuration file; unset fields keep their defaults
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(content)
}

// Parse decodes YAML configuration on top of the defaults
func Parse(content []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for unusable values
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("config: at least one source is required")
	}
	for i, s := range c.Sources {
		if s == "" {
			return fmt.Errorf("config: source %d is empty", i)
		}
	}
	if c.Fetch.Concurrency < 1 {
		return fmt.Errorf("config: fetch concurrency must be at least 1, got %d", c.Fetch.Concurrency)
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("config: fetch timeout must be positive")
	}
	return nil
}

// Marshal encodes the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Save writes the configuration to path
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
