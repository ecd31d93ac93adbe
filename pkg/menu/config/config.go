package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meloz85/Yemek/pkg/menu/internalerr"
	"github.com/meloz85/Yemek/pkg/menu/translate"
)

// Config is the optional YAML override file. Every section is optional;
// omitted sections keep the built-in defaults.
type Config struct {
	Keywords *Keywords `yaml:"keywords"`
	English  *English  `yaml:"english"`
}

// Keywords overrides the allergen keyword lists. A non-empty list replaces
// the default list for that category; empty or omitted lists keep it.
type Keywords struct {
	Gluten []string `yaml:"gluten"`
	Milk   []string `yaml:"milk"`
	Egg    []string `yaml:"egg"`
	Fish   []string `yaml:"fish"`
}

// English overrides the ordered literal fixes applied to English names
// before the generic word substitutions.
type English struct {
	Fixes []translate.Rule `yaml:"fixes"`
}

// Load reads a Config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}

	return &cfg, nil
}
