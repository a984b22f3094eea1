// Package config loads the service configuration from a yaml or json file
// with optional environment overrides.
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
)

type Config struct {
	Engine  EngineConfig  `json:"engine"`
	Server  ServerConfig  `json:"server"`
	Logging LoggingConfig `json:"logging"`
}

// EngineConfig bounds the search and controls candidate ranking.
type EngineConfig struct {
	// NodeBudget caps the number of explored search nodes; 0 disables the cap.
	NodeBudget uint64 `json:"node_budget"`
	// TimeoutSeconds is the per-solve deadline.
	TimeoutSeconds int `json:"timeout_seconds"`
	// Candidates is how many feasible solutions to collect before ranking
	// them by day preferences.
	Candidates int `json:"candidates"`
}

// SetDefaults applies sane defaults.
func (c *EngineConfig) SetDefaults() {
	if c.NodeBudget == 0 {
		c.NodeBudget = 1_000_000
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 10
	}
	if c.Candidates == 0 {
		c.Candidates = 1
	}
}

// Validate checks mandatory fields.
func (c EngineConfig) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative: %v", c.TimeoutSeconds)
	}
	if c.Candidates < 1 {
		return fmt.Errorf("candidates must be at least 1: %v", c.Candidates)
	}
	return nil
}

// ServerConfig holds the HTTP listeners.
type ServerConfig struct {
	Addr        string `json:"addr"`
	MetricsAddr string `json:"metrics_addr"`
}

func (c *ServerConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.MetricsAddr == "" {
		c.MetricsAddr = ":9090"
	}
}

// LoggingConfig selects the global log level.
type LoggingConfig struct {
	Level string `json:"level"`
}

func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Default returns a configuration with every default applied, used when no
// config file is supplied.
func Default() *Config {
	var cfg Config
	cfg.Engine.SetDefaults()
	cfg.Server.SetDefaults()
	cfg.Logging.SetDefaults()
	return &cfg
}

// Load reads the configuration file at path. The parser is chosen from the
// file extension; TT_-prefixed environment variables override file values,
// with "__" standing for the section separator.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
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
	if err := k.Load(env.Provider("TT_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "tt_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Engine.SetDefaults()
	cfg.Server.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
