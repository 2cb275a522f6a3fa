// Package config loads the dashboard's yaml configuration. A missing file
// is not an error: every field has a usable default.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr      string  `yaml:"addr"`
	DataFile  string  `yaml:"data_file"`
	IndexPath string  `yaml:"index_path"`
	StaticDir string  `yaml:"static_dir"`
	Logging   Logging `yaml:"logging"`
}

type Logging struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		Addr:      ":8080",
		DataFile:  "data/unicorns-pitchbook.csv",
		IndexPath: "unicorn_index.bleve",
		StaticDir: "./static",
	}
}

// Load reads path and overlays it onto the defaults. A missing file yields
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
