package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/optiroute/optiroute/geo"
)

// Config is the YAML configuration of the serve command.
type Config struct {
	ListenAddr   string `yaml:"listen_addr"`
	GoogleAPIKey string `yaml:"google_api_key"`
	MaxPoints    int    `yaml:"max_points"`
}

// loadConfig reads the optional YAML file and applies environment
// overrides. GOOGLE_MAPS_API_KEY always wins over the file so the key can
// stay out of committed configs.
func loadConfig(path string) (Config, error) {
	cfg := Config{
		ListenAddr: ":8080",
		MaxPoints:  geo.MaxPoints,
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if key := os.Getenv("GOOGLE_MAPS_API_KEY"); key != "" {
		cfg.GoogleAPIKey = key
	}
	if cfg.MaxPoints <= 0 || cfg.MaxPoints > geo.MaxPoints {
		cfg.MaxPoints = geo.MaxPoints
	}

	return cfg, nil
}
