package classifier

import "context"

// Strategy is a per-record categorization method. Strategies are consulted in
// order; found=false means the strategy has no opinion and the next one runs.
type Strategy interface {
	// Categorize attempts to assign a category to a normalized description.
	Categorize(ctx context.Context, description string) (category string, found bool, err error)

	// Name identifies the strategy in logs.
	Name() string
}

// FallbackLabeler labels a whole batch of descriptions the rule pass could
// not match. Unlike Strategy it is batch-level because first-use training
// needs the full batch.
type FallbackLabeler interface {
	// Label returns one category per description, in order.
	Label(ctx context.Context, descriptions []string) ([]string, error)
}
