package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/picapacity/core/forecast"
	"github.com/kilianp07/picapacity/core/metrics"
)

// EnvPrefix prefixes environment overrides, e.g. PIC_SIMULATION__TRIALS.
const EnvPrefix = "PIC_"

type Config struct {
	Simulation forecast.Config `json:"simulation"`
	Report     ReportConfig    `json:"report"`
	Metrics    metrics.Config  `json:"metrics"`
}

// Load reads the configuration file at path, if any, then applies
// environment overrides and defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults applies defaults to every section.
func (c *Config) SetDefaults() {
	c.Simulation.SetDefaults()
	c.Report.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Simulation.Validate(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	if err := c.Report.Validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
