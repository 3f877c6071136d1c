package textcluster

import "fmt"

// Model is the trained artifact pair: vectorizer plus clustering, with the
// cluster-index-to-category mapping fixed at training time by the rule
// table's enumeration order. The mapping is best-effort: unsupervised
// clusters do not actually correspond to semantic categories.
type Model struct {
	Vectorizer *Vectorizer `json:"vectorizer"`
	Clusters   *KMeans     `json:"clusters"`
	Categories []string    `json:"categories"`
}

// Train fits a model on a batch of descriptions with K = len(categories).
func Train(descriptions, categories []string) (*Model, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("cannot train with zero categories")
	}

	vectorizer, err := FitVectorizer(descriptions, DefaultMaxFeatures)
	if err != nil {
		return nil, fmt.Errorf("fitting vectorizer: %w", err)
	}

	clusters, err := FitKMeans(vectorizer.Transform(descriptions), len(categories))
	if err != nil {
		return nil, fmt.Errorf("fitting clusters: %w", err)
	}

	return &Model{
		Vectorizer: vectorizer,
		Clusters:   clusters,
		Categories: append([]string(nil), categories...),
	}, nil
}

// Predict maps a description to a category name via its nearest cluster.
func (m *Model) Predict(description string) (string, error) {
	if err := m.validate(); err != nil {
		return "", err
	}

	vector := m.Vectorizer.Transform([]string{description})[0]
	cluster := m.Clusters.Predict(vector)
	if cluster < 0 || cluster >= len(m.Categories) {
		return "", fmt.Errorf("cluster index %d out of range for %d categories",
			cluster, len(m.Categories))
	}
	return m.Categories[cluster], nil
}

func (m *Model) validate() error {
	if m.Vectorizer == nil || len(m.Vectorizer.Vocabulary) == 0 {
		return fmt.Errorf("model has no vectorizer vocabulary")
	}
	if m.Clusters == nil || len(m.Clusters.Centroids) == 0 {
		return fmt.Errorf("model has no fitted clusters")
	}
	if len(m.Categories) != m.Clusters.K {
		return fmt.Errorf("model has %d categories for %d clusters",
			len(m.Categories), m.Clusters.K)
	}
	return nil
}
