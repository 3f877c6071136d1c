// Package store provides durable storage for the pipeline's configuration
// and trained artifacts: the category rule table (YAML) and the fallback
// classification model (JSON).
package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"finmate/statements/internal/logging"
	"finmate/statements/internal/models"
)

// CategoryStore loads the category rule table. The table is configuration:
// read once at startup, immutable thereafter.
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a store reading from the given YAML file. An empty
// path means the compiled-in defaults are used.
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &CategoryStore{CategoriesFile: categoriesFile, logger: logger}
}

// LoadRules returns the ordered rule table. A missing or unset file falls
// back to the defaults rather than failing; a present-but-invalid file is an
// error so misconfiguration does not silently change categorization.
func (s *CategoryStore) LoadRules() ([]models.CategoryRule, error) {
	if s.CategoriesFile == "" {
		return models.DefaultRules(), nil
	}

	data, err := os.ReadFile(s.CategoriesFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("Categories file not found, using defaults",
				logging.Field{Key: logging.FieldFile, Value: s.CategoriesFile})
			return models.DefaultRules(), nil
		}
		return nil, fmt.Errorf("reading categories file: %w", err)
	}

	var config models.RulesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing categories file '%s': %w", s.CategoriesFile, err)
	}
	if len(config.Categories) == 0 {
		return nil, fmt.Errorf("categories file '%s' defines no categories", s.CategoriesFile)
	}

	s.logger.Debug("Loaded category rules",
		logging.Field{Key: logging.FieldFile, Value: s.CategoriesFile},
		logging.Field{Key: logging.FieldCount, Value: len(config.Categories)})
	return config.Categories, nil
}
