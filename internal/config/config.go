package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration.
type Config struct {
	Port      string `yaml:"port"`
	DataPath  string `yaml:"data_path"`
	CachePath string `yaml:"cache_path"`
	GinMode   string `yaml:"gin_mode"` // release, debug or test
}

// Load reads configuration from the environment, then overlays an
// optional YAML file named by CONFIG_PATH. File values win over
// environment values; unset fields keep their defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      ":8080",
		DataPath:  "./data/stakeholders.csv",
		CachePath: "./data/geocode_cache.db",
		GinMode:   "release",
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATA_PATH"); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv("CACHE_PATH"); v != "" {
		cfg.CachePath = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.GinMode = v
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if file.Port != "" {
		c.Port = file.Port
	}
	if file.DataPath != "" {
		c.DataPath = file.DataPath
	}
	if file.CachePath != "" {
		c.CachePath = file.CachePath
	}
	if file.GinMode != "" {
		c.GinMode = file.GinMode
	}

	return nil
}
