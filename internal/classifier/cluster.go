package classifier

import (
	"context"
	"fmt"

	"finmate/statements/internal/logging"
	"finmate/statements/internal/store"
	"finmate/statements/internal/textcluster"
)

// ClusterFallback labels unmatched descriptions with the persisted clustering
// model, training one just in time from the first unmatched batch when none
// exists yet.
type ClusterFallback struct {
	modelStore store.ModelStore
	categories []string
	logger     logging.Logger
}

// NewClusterFallback creates the fallback over the given model store.
// categories is the rule table's enumeration order; it fixes K and the
// cluster-index-to-name mapping at training time.
func NewClusterFallback(modelStore store.ModelStore, categories []string, logger logging.Logger) *ClusterFallback {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &ClusterFallback{
		modelStore: modelStore,
		categories: categories,
		logger:     logger,
	}
}

// Label predicts a category for every description. When no trained model is
// available one is trained from this batch and persisted for reuse. A save
// failure does not discard the freshly trained model: predictions still run,
// the next process just retrains.
func (f *ClusterFallback) Label(_ context.Context, descriptions []string) ([]string, error) {
	model, found, err := f.modelStore.Load()
	if err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}

	if !found {
		f.logger.Info("No trained model found, training from batch",
			logging.Field{Key: logging.FieldCount, Value: len(descriptions)})

		model, err = textcluster.Train(descriptions, f.categories)
		if err != nil {
			return nil, fmt.Errorf("training model: %w", err)
		}
		if err := f.modelStore.Save(model); err != nil {
			f.logger.WithError(err).Warn("Failed to persist trained model")
		}
	}

	labels := make([]string, len(descriptions))
	for i, description := range descriptions {
		category, err := model.Predict(description)
		if err != nil {
			return nil, fmt.Errorf("predicting category: %w", err)
		}
		labels[i] = category
	}
	return labels, nil
}

// Train fits and persists a model from the given descriptions, replacing any
// existing artifact. Used by explicit retraining.
func (f *ClusterFallback) Train(descriptions []string) error {
	model, err := textcluster.Train(descriptions, f.categories)
	if err != nil {
		return fmt.Errorf("training model: %w", err)
	}
	return f.modelStore.Save(model)
}
