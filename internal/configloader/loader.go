// Package configloader loads the preview server configuration from an
// optional YAML file, applying defaults and environment overrides.
package configloader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the configuration for the prose serve command.
type Config struct {
	// Addr is the listen address, host:port.
	Addr string `yaml:"addr"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// DetectLanguage classifies untagged code fences via go-enry.
	DetectLanguage bool `yaml:"detect_language"`
	// Escape HTML-escapes rendered text and attribute values.
	Escape bool `yaml:"escape"`
	// SampleFile overrides the built-in sample document.
	SampleFile string `yaml:"sample_file"`
}

// Default returns the configuration used when no file and no overrides are
// present.
func Default() Config {
	return Config{
		Addr:     "localhost:8321",
		LogLevel: "info",
	}
}

// Load reads the configuration from path. An empty path returns the
// defaults. Environment overrides are applied after the file in all cases.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides file values with PROSE_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PROSE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("PROSE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func (c Config) validate() error {
	if c.Addr == "" {
		return errors.New("config: addr must not be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}
