// Package classifier assigns ledger categories to transaction records.
// Categorization runs in tiers: an ordered keyword rule pass first, then a
// clustering fallback for whatever the rules missed, with an optional
// AI-backed tier when clustering cannot serve. Records that no tier can
// place are labeled Uncategorized rather than failing the batch.
package classifier

import (
	"context"
	"strings"

	"finmate/statements/internal/logging"
	"finmate/statements/internal/models"
)

// Classifier orchestrates the categorization tiers over a batch of records.
type Classifier struct {
	keyword  *KeywordStrategy
	fallback FallbackLabeler
	ai       *AIStrategy
	logger   logging.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithFallback sets the statistical fallback labeler.
func WithFallback(fallback FallbackLabeler) Option {
	return func(c *Classifier) {
		c.fallback = fallback
	}
}

// WithAIStrategy sets the optional AI tier, consulted only when the
// statistical fallback fails.
func WithAIStrategy(ai *AIStrategy) Option {
	return func(c *Classifier) {
		c.ai = ai
	}
}

// New creates a Classifier with the given keyword rules.
func New(rules []models.CategoryRule, logger logging.Logger, opts ...Option) *Classifier {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	c := &Classifier{
		keyword: NewKeywordStrategy(rules, logger),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns a copy of records with every record carrying a category.
// Records that already have one keep it. Records with a blank description
// cannot match any tier and are labeled Uncategorized directly; they never
// enter the fallback batch. Fallback-tier failures degrade the remaining
// records to Uncategorized rather than failing the batch.
func (c *Classifier) Classify(ctx context.Context, records []models.TransactionRecord) ([]models.TransactionRecord, error) {
	out := make([]models.TransactionRecord, len(records))
	copy(out, records)

	var unmatched []int
	for i, record := range out {
		if record.HasCategory() {
			continue
		}
		if strings.TrimSpace(record.Description) == "" {
			out[i].Category = models.CategoryUncategorized
			continue
		}
		category, found, err := c.keyword.Categorize(ctx, record.Description)
		if err != nil {
			return nil, err
		}
		if found {
			out[i].Category = category
			continue
		}
		unmatched = append(unmatched, i)
	}

	if len(unmatched) == 0 {
		c.logger.WithField(logging.FieldCount, len(out)).Info("All records categorized by rules")
		return out, nil
	}

	c.logger.WithField(logging.FieldCount, len(unmatched)).Info("Labeling unmatched records with fallback")
	c.labelRemainder(ctx, out, unmatched)
	return out, nil
}

// labelRemainder fills categories for the unmatched indexes, degrading to
// Uncategorized when no tier can serve.
func (c *Classifier) labelRemainder(ctx context.Context, records []models.TransactionRecord, unmatched []int) {
	if c.fallback != nil {
		descriptions := make([]string, len(unmatched))
		for i, idx := range unmatched {
			descriptions[i] = records[idx].Description
		}
		labels, err := c.fallback.Label(ctx, descriptions)
		if err == nil {
			for i, idx := range unmatched {
				records[idx].Category = labels[i]
			}
			return
		}
		c.logger.WithError(err).Warn("Fallback labeling failed")
	}

	for _, idx := range unmatched {
		records[idx].Category = c.aiOrUncategorized(ctx, records[idx].Description)
	}
}

func (c *Classifier) aiOrUncategorized(ctx context.Context, description string) string {
	if c.ai != nil {
		category, found, err := c.ai.Categorize(ctx, description)
		if err == nil && found {
			return category
		}
	}
	return models.CategoryUncategorized
}
