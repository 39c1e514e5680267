// Package config loads callcheck configuration from YAML.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/mxe-call/schema"
)

// Config is the on-disk configuration.
type Config struct {
	// BuildDir holds compiled interface files.
	BuildDir string `yaml:"buildDir"`
	// CacheSize bounds the definition cache.
	CacheSize int `yaml:"cacheSize"`
	// Watch follows changes to BuildDir.
	Watch bool `yaml:"watch"`

	Log LogConfig `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		BuildDir:  "build",
		CacheSize: schema.DefaultCacheSize,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults. A missing path returns the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, errors.Wrap(err, "read config")
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.CacheSize < 1 {
		return errors.Errorf("cacheSize must be positive, got %d", c.CacheSize)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return errors.Errorf("log format %q: want console or json", c.Log.Format)
	}
	return nil
}

// RegistryOptions returns the schema options implied by the config.
func (c *Config) RegistryOptions() []schema.Option {
	return []schema.Option{schema.WithCacheSize(c.CacheSize)}
}
