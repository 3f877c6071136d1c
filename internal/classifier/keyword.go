package classifier

import (
	"context"
	"strings"

	"finmate/statements/internal/logging"
	"finmate/statements/internal/models"
)

// KeywordStrategy is the deterministic rule pass: iterate the category rule
// table in enumeration order and assign the first category whose keyword is a
// substring of the description. No ranking or scoring; first match wins even
// when a later category's keyword would be a longer match.
type KeywordStrategy struct {
	rules  []models.CategoryRule
	logger logging.Logger
}

// NewKeywordStrategy creates the rule pass over an ordered rule table.
func NewKeywordStrategy(rules []models.CategoryRule, logger logging.Logger) *KeywordStrategy {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &KeywordStrategy{rules: rules, logger: logger}
}

// Name returns the strategy name.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Categorize matches the lower-cased description against the rule table.
func (s *KeywordStrategy) Categorize(_ context.Context, description string) (string, bool, error) {
	description = strings.ToLower(strings.TrimSpace(description))
	if description == "" {
		return "", false, nil
	}

	for _, rule := range s.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(description, keyword) {
				s.logger.Debug("Matched category keyword",
					logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
					logging.Field{Key: logging.FieldKeyword, Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: rule.Name})
				return rule.Name, true, nil
			}
		}
	}
	return "", false, nil
}
