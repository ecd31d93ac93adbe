package config

import (
	"fmt"

	"github.com/meloz85/Yemek/pkg/menu/allergen"
	"github.com/meloz85/Yemek/pkg/menu/translate"
)

// Loader builds the pipeline components, applying overrides from an
// optional config file on top of the built-in defaults.
type Loader struct {
	ConfigPath string
}

// Components holds the constructed pipeline components.
type Components struct {
	Classifier *allergen.Classifier
	Cleaner    *translate.Cleaner
}

// Load constructs the classifier and cleaner. With an empty ConfigPath the
// defaults are used unchanged.
func (l *Loader) Load() (*Components, error) {
	keywords := allergen.DefaultKeywords()
	fixes := translate.DefaultEnglishFixes()

	if l.ConfigPath != "" {
		cfg, err := Load(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}

		if cfg.Keywords != nil {
			if len(cfg.Keywords.Gluten) > 0 {
				keywords.Gluten = cfg.Keywords.Gluten
			}
			if len(cfg.Keywords.Milk) > 0 {
				keywords.Milk = cfg.Keywords.Milk
			}
			if len(cfg.Keywords.Egg) > 0 {
				keywords.Egg = cfg.Keywords.Egg
			}
			if len(cfg.Keywords.Fish) > 0 {
				keywords.Fish = cfg.Keywords.Fish
			}
		}
		if cfg.English != nil && len(cfg.English.Fixes) > 0 {
			fixes = cfg.English.Fixes
		}
	}

	return &Components{
		Classifier: allergen.New(keywords),
		Cleaner:    translate.NewCleaner(fixes),
	}, nil
}
