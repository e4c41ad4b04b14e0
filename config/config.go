// Package config loads server configuration from an optional YAML file.
// CLI flags override file values; both fall back to defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level server configuration.
type Config struct {
	Docs    DocsConfig    `yaml:"docs"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// DocsConfig controls how the knowledge base is loaded from disk.
type DocsConfig struct {
	Root             string   `yaml:"root"`
	Exclude          []string `yaml:"exclude"`
	MaxFileSizeBytes int64    `yaml:"maxFileSizeBytes"`
}

// WatchConfig controls the filesystem watcher that triggers store rebuilds.
type WatchConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Debounce Duration `yaml:"debounce"`
}

// Duration wraps time.Duration so YAML values like "250ms" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// LoggingConfig controls slog output.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file and no flags are given.
func Default() Config {
	return Config{
		Docs: DocsConfig{
			MaxFileSizeBytes: 1024 * 1024,
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: Duration(100 * time.Millisecond),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file on top of the defaults. A missing path is
// not an error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	if c.Docs.MaxFileSizeBytes < 0 {
		return fmt.Errorf("maxFileSizeBytes must not be negative")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch debounce must not be negative")
	}
	return nil
}
