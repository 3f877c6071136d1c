// Package textcluster implements the statistical fallback model: a sparse
// text-frequency vectorizer over transaction descriptions and a fixed-K means
// clustering on top of it. The model is best-effort by design; callers must
// treat its output as approximate.
package textcluster

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// DefaultMaxFeatures bounds the vocabulary size.
const DefaultMaxFeatures = 500

// english stop words removed before vectorization. Subset covering the words
// that actually show up in bank statement descriptions.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "at": true, "by": true, "co": true,
	"for": true, "from": true, "in": true, "inc": true, "llc": true,
	"ltd": true, "of": true, "on": true, "or": true, "the": true,
	"to": true, "with": true,
}

// Vectorizer maps descriptions onto a fixed vocabulary of unigrams and
// bigrams. All fields are exported for JSON persistence.
type Vectorizer struct {
	Vocabulary  map[string]int `json:"vocabulary"`
	MaxFeatures int            `json:"max_features"`
}

// FitVectorizer builds a vocabulary from the corpus, keeping the most
// frequent terms up to maxFeatures. Fails on an effectively empty corpus.
func FitVectorizer(corpus []string, maxFeatures int) (*Vectorizer, error) {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}

	counts := make(map[string]int)
	for _, text := range corpus {
		for _, term := range terms(text) {
			counts[term]++
		}
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("no usable terms in corpus of %d descriptions", len(corpus))
	}

	type termCount struct {
		term  string
		count int
	}
	ranked := make([]termCount, 0, len(counts))
	for term, count := range counts {
		ranked = append(ranked, termCount{term, count})
	}
	// Stable ranking: by count descending, then lexicographic for determinism.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].term < ranked[j].term
	})
	if len(ranked) > maxFeatures {
		ranked = ranked[:maxFeatures]
	}

	vocabulary := make(map[string]int, len(ranked))
	for i, tc := range ranked {
		vocabulary[tc.term] = i
	}
	return &Vectorizer{Vocabulary: vocabulary, MaxFeatures: maxFeatures}, nil
}

// Transform converts texts into term-frequency vectors over the vocabulary.
func (v *Vectorizer) Transform(texts []string) [][]float64 {
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		vector := make([]float64, len(v.Vocabulary))
		for _, term := range terms(text) {
			if index, ok := v.Vocabulary[term]; ok {
				vector[index]++
			}
		}
		vectors[i] = vector
	}
	return vectors
}

// terms tokenizes a description and emits unigrams plus adjacent bigrams,
// with stop words removed.
func terms(text string) []string {
	tokens := tokenize(text)

	result := make([]string, 0, len(tokens)*2)
	result = append(result, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		result = append(result, tokens[i]+" "+tokens[i+1])
	}
	return result
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if stopWords[field] || len(field) < 2 {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}
