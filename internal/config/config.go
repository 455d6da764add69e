package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"Reforma/internal/calc/debris"
)

// Config is the optional YAML server configuration. Env vars win over the
// file for the fields both cover.
type Config struct {
	Addr string `yaml:"addr"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	Pricing struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		Secret  string `yaml:"secret"`
	} `yaml:"pricing"`

	// Project-wide overrides for the takeoff physics constants; request
	// settings win, then these, then the built-in defaults.
	Takeoff debris.Settings `yaml:"takeoff"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Addr = ":8443"
	cfg.Log.Level = "info"

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if url := os.Getenv("PRICING_URL"); url != "" {
		cfg.Pricing.BaseURL = url
	}
	return cfg, nil
}
