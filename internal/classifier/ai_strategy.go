package classifier

import (
	"context"
	"strings"

	"finmate/statements/internal/logging"
)

// AIStrategy categorizes descriptions through an AIClient. It is an optional
// tier: with a nil client it reports not-found and never errors.
type AIStrategy struct {
	aiClient   AIClient
	categories []string
	logger     logging.Logger
}

// NewAIStrategy creates an AIStrategy instance.
func NewAIStrategy(aiClient AIClient, categories []string, logger logging.Logger) *AIStrategy {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &AIStrategy{
		aiClient:   aiClient,
		categories: categories,
		logger:     logger,
	}
}

// Name returns the strategy name for logging and debugging.
func (s *AIStrategy) Name() string {
	return "AI"
}

// Categorize asks the AI client for a category. Service failures are logged
// and reported as not-found so the caller can fall through.
func (s *AIStrategy) Categorize(ctx context.Context, description string) (string, bool, error) {
	if s.aiClient == nil {
		return "", false, nil
	}
	if strings.TrimSpace(description) == "" {
		return "", false, nil
	}

	category, err := s.aiClient.SuggestCategory(ctx, description, s.categories)
	if err != nil {
		s.logger.WithError(err).WithFields(
			logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
			logging.Field{Key: "description", Value: description},
		).Warn("AI categorization failed")
		return "", false, nil
	}

	if strings.TrimSpace(category) == "" {
		return "", false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Debug("Description categorized using AI")
	return category, true, nil
}
