package textcluster

import (
	"fmt"
	"math"
	"math/rand"
)

const maxIterations = 50

// KMeans is a fitted fixed-K clustering. Centroids are exported for JSON
// persistence alongside the vectorizer.
type KMeans struct {
	K         int         `json:"k"`
	Centroids [][]float64 `json:"centroids"`
}

// FitKMeans runs Lloyd's algorithm with a deterministic seed so repeated
// training on the same batch produces the same model. Requires at least K
// samples.
func FitKMeans(vectors [][]float64, k int) (*KMeans, error) {
	if k <= 0 {
		return nil, fmt.Errorf("cluster count must be positive, got %d", k)
	}
	if len(vectors) < k {
		return nil, fmt.Errorf("need at least %d samples to fit %d clusters, got %d",
			k, k, len(vectors))
	}

	rng := rand.New(rand.NewSource(1))
	centroids := initCentroids(vectors, k, rng)

	assignments := make([]int, len(vectors))
	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, vector := range vectors {
			nearest := nearestCentroid(vector, centroids)
			if nearest != assignments[i] {
				assignments[i] = nearest
				changed = true
			}
		}

		centroids = recomputeCentroids(vectors, assignments, k, rng)

		if !changed && iter > 0 {
			break
		}
	}

	return &KMeans{K: k, Centroids: centroids}, nil
}

// Predict returns the index of the nearest centroid.
func (m *KMeans) Predict(vector []float64) int {
	return nearestCentroid(vector, m.Centroids)
}

// initCentroids seeds clusters with distinct sample vectors where possible.
func initCentroids(vectors [][]float64, k int, rng *rand.Rand) [][]float64 {
	indices := rng.Perm(len(vectors))[:k]
	centroids := make([][]float64, k)
	for i, index := range indices {
		centroids[i] = append([]float64(nil), vectors[index]...)
	}
	return centroids
}

func recomputeCentroids(vectors [][]float64, assignments []int, k int, rng *rand.Rand) [][]float64 {
	dim := len(vectors[0])
	sums := make([][]float64, k)
	counts := make([]int, k)
	for i := range sums {
		sums[i] = make([]float64, dim)
	}

	for i, vector := range vectors {
		cluster := assignments[i]
		counts[cluster]++
		for j, value := range vector {
			sums[cluster][j] += value
		}
	}

	centroids := make([][]float64, k)
	for i := range sums {
		if counts[i] == 0 {
			// Empty cluster: reseed from a random sample so K stays fixed.
			centroids[i] = append([]float64(nil), vectors[rng.Intn(len(vectors))]...)
			continue
		}
		centroid := make([]float64, dim)
		for j := range sums[i] {
			centroid[j] = sums[i][j] / float64(counts[i])
		}
		centroids[i] = centroid
	}
	return centroids
}

func nearestCentroid(vector []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, centroid := range centroids {
		dist := squaredDistance(vector, centroid)
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}

func squaredDistance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}
