package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the output settings shared by every artwork. Each field can
// be set from the environment with a PEDALS_ prefix, e.g. PEDALS_OUT_DIR.
type Config struct {
	OutDir   string `envconfig:"OUT_DIR" default:"samples"`
	Format   string `envconfig:"FORMAT" default:"png"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Preview  bool   `envconfig:"PREVIEW" default:"false"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("pedals", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Ext returns the file extension for Format.
func (c *Config) Ext() (string, error) {
	switch c.Format {
	case "png", "svg", "pdf":
		return "." + c.Format, nil
	}
	return "", fmt.Errorf("unsupported format %q, want png, svg or pdf", c.Format)
}
