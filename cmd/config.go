package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = ".stencil.yaml"

// Config carries optional settings read from the YAML config file. Every
// field has a working zero value, so a missing file is fine.
type Config struct {
	Model  string `yaml:"model"`  // model for generated content, empty uses the built-in default
	Output string `yaml:"output"` // default output directory
}

// loadConfig reads the config file at path, or the default path if none was
// given. A missing default file yields an empty config; a missing explicit
// file is an error.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
