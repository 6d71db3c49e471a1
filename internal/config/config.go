// Package config handles the optional TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Defaults, matching the classic fixed machine.
const (
	DefaultCapacity    = 1024
	DefaultMaxOps      = 10000
	DefaultLineLength  = 80
	DefaultDataPadding = 8
)

// Config holds machine and display settings.
type Config struct {
	Capacity int      `toml:"capacity"`
	MaxOps   int      `toml:"max_ops"`
	Debug    bool     `toml:"debug"`
	Snapshot Snapshot `toml:"snapshot"`

	// Path is the file the config was loaded from, if any.
	Path string `toml:"-"`
}

// Snapshot configures the diagnostic state display.
type Snapshot struct {
	LineLength  int `toml:"line_length"`
	DataPadding int `toml:"data_padding"`
}

// Default returns a config with every default applied.
func Default() Config {
	var c Config
	c.applyDefaults()
	return c
}

// Load parses the TOML file at path, applies defaults for unset values, and
// validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	c.Path = path
	return c, nil
}

// Parse decodes TOML data, applies defaults for unset values, and validates
// the result.
func Parse(data []byte) (Config, error) {
	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return Config{}, fmt.Errorf("parse error: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	if c.MaxOps == 0 {
		c.MaxOps = DefaultMaxOps
	}
	if c.Snapshot.LineLength == 0 {
		c.Snapshot.LineLength = DefaultLineLength
	}
	if c.Snapshot.DataPadding == 0 {
		c.Snapshot.DataPadding = DefaultDataPadding
	}
}

// Validate checks that all values are usable.
func (c Config) Validate() error {
	var errs []error
	if c.Capacity < 1 {
		errs = append(errs, fmt.Errorf("capacity must be positive, got %v", c.Capacity))
	}
	if c.MaxOps < 0 {
		errs = append(errs, fmt.Errorf("max_ops must not be negative, got %v", c.MaxOps))
	}
	if c.Snapshot.LineLength < 2 {
		errs = append(errs, fmt.Errorf("snapshot.line_length must be at least 2, got %v", c.Snapshot.LineLength))
	}
	if c.Snapshot.DataPadding < 0 {
		errs = append(errs, fmt.Errorf("snapshot.data_padding must not be negative, got %v", c.Snapshot.DataPadding))
	}
	return errors.Join(errs...)
}
