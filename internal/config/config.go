package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. REQLOG_LENIENT
const EnvPrefix = "REQLOG"

// Config holds application configuration
type Config struct {
	Lenient bool   `mapstructure:"lenient"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`
	Color   string `mapstructure:"color"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Lenient: false,
		Quiet:   false,
		Verbose: false,
		Color:   "auto",
	}
}

// Load builds the configuration from defaults and REQLOG_* environment
// variables. No configuration file is read.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	defaults := Default()
	v.SetDefault("lenient", defaults.Lenient)
	v.SetDefault("quiet", defaults.Quiet)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("color", defaults.Color)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that flags would otherwise reject
func (c *Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
}
