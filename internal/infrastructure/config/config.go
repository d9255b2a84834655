// Package config loads server and search settings from an optional YAML
// file, with sensible defaults when fields are absent.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"svw.info/sudokulab/internal/domain"
)

// Server holds the serve command settings.
type Server struct {
	Addr       string `yaml:"addr"`
	PersistDir string `yaml:"persist_dir"`
	Engine     string `yaml:"engine"` // constraint|backtrack
	LogLevel   string `yaml:"log_level"`
}

// Config is the root document.
type Config struct {
	Server Server              `yaml:"server"`
	Search domain.SearchParams `yaml:"search"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: Server{
			Addr:       ":8080",
			PersistDir: "./data",
			Engine:     "constraint",
			LogLevel:   "info",
		},
		Search: domain.SearchParams{
			InitialTemperature: domain.DefaultTemperature,
			CoolingRate:        domain.DefaultCoolingRate,
			MaxIterations:      domain.DefaultAnnealIterations,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
