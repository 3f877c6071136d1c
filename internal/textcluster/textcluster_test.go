package textcluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitVectorizer(t *testing.T) {
	corpus := []string{
		"starbucks coffee run",
		"shell gas station",
		"starbucks downtown",
	}

	vectorizer, err := FitVectorizer(corpus, 0)
	require.NoError(t, err)

	assert.Contains(t, vectorizer.Vocabulary, "starbucks")
	assert.Contains(t, vectorizer.Vocabulary, "coffee")
	// Bigrams are part of the vocabulary too.
	assert.Contains(t, vectorizer.Vocabulary, "starbucks coffee")
}

func TestFitVectorizerStopWordsRemoved(t *testing.T) {
	vectorizer, err := FitVectorizer([]string{"payment to the coffee shop"}, 0)
	require.NoError(t, err)

	assert.NotContains(t, vectorizer.Vocabulary, "to")
	assert.NotContains(t, vectorizer.Vocabulary, "the")
}

func TestFitVectorizerEmptyCorpus(t *testing.T) {
	_, err := FitVectorizer([]string{"", "  ", "a"}, 0)
	assert.Error(t, err)
}

func TestFitVectorizerBoundedVocabulary(t *testing.T) {
	corpus := []string{
		"alpha bravo charlie delta echo",
		"foxtrot golf hotel india juliet",
	}
	vectorizer, err := FitVectorizer(corpus, 5)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(vectorizer.Vocabulary), 5)
}

func TestTransformCountsTerms(t *testing.T) {
	vectorizer, err := FitVectorizer([]string{"coffee coffee shop"}, 0)
	require.NoError(t, err)

	vectors := vectorizer.Transform([]string{"coffee coffee shop", "unknown words only"})
	require.Len(t, vectors, 2)

	coffeeIdx := vectorizer.Vocabulary["coffee"]
	assert.Equal(t, 2.0, vectors[0][coffeeIdx])

	// Out-of-vocabulary text maps to the zero vector.
	for _, value := range vectors[1] {
		assert.Zero(t, value)
	}
}

func TestFitKMeansTooFewSamples(t *testing.T) {
	_, err := FitKMeans([][]float64{{1, 0}}, 3)
	assert.Error(t, err)
}

func TestFitKMeansSeparatesObviousClusters(t *testing.T) {
	vectors := [][]float64{
		{10, 0}, {11, 0}, {10.5, 0},
		{0, 10}, {0, 11}, {0, 10.5},
	}

	model, err := FitKMeans(vectors, 2)
	require.NoError(t, err)

	left := model.Predict([]float64{10.2, 0})
	right := model.Predict([]float64{0, 10.2})
	assert.NotEqual(t, left, right)
	assert.Equal(t, left, model.Predict([]float64{12, 0}))
}

func TestFitKMeansDeterministic(t *testing.T) {
	vectors := [][]float64{
		{1, 0}, {2, 0}, {0, 1}, {0, 2}, {5, 5}, {6, 6},
	}

	first, err := FitKMeans(vectors, 3)
	require.NoError(t, err)
	second, err := FitKMeans(vectors, 3)
	require.NoError(t, err)
	assert.Equal(t, first.Centroids, second.Centroids)
}

func TestTrainAndPredict(t *testing.T) {
	descriptions := []string{
		"starbucks coffee", "peets coffee", "blue bottle coffee",
		"shell gas station", "chevron fuel", "exxon gas",
	}
	categories := []string{"First", "Second"}

	model, err := Train(descriptions, categories)
	require.NoError(t, err)

	category, err := model.Predict("starbucks coffee downtown")
	require.NoError(t, err)
	assert.Contains(t, categories, category)
}

func TestTrainFailsWithMoreCategoriesThanSamples(t *testing.T) {
	_, err := Train([]string{"single description"}, []string{"A", "B", "C"})
	assert.Error(t, err)
}

func TestPredictValidation(t *testing.T) {
	model := &Model{}
	_, err := model.Predict("whatever")
	assert.Error(t, err)
}
