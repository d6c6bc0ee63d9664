// Package config loads the API server's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Extract ExtractConfig `yaml:"extract"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	HTTPPort    string `yaml:"http_port"`
	MetricsPort string `yaml:"metrics_port"`
	BodyLimitMB int    `yaml:"body_limit_mb"`
}

type ExtractConfig struct {
	// MaxPages caps how many document pages are extracted and scanned.
	MaxPages int `yaml:"max_pages"`
}

type LoggingConfig struct {
	Env string `yaml:"env"`
}

// Default returns the canonical configuration used when no -config file is
// given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:    "8080",
			MetricsPort: "9090",
			BodyLimitMB: 32,
		},
		Extract: ExtractConfig{MaxPages: 2},
		Logging: LoggingConfig{Env: "production"},
	}
}

// Load reads and parses the YAML file at configPath. Fields the file omits
// fall back to the defaults.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
