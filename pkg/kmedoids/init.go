package kmedoids

import "math/rand/v2"

// NewRand returns a random source owned by a single run. Two sources built
// from the same seed produce the same sequence.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s))
}

// InitCentroids picks k distinct document indices out of n, uniformly and
// without replacement, using a partial Fisher-Yates shuffle.
func InitCentroids(n, k int, rng *rand.Rand) ([]int, error) {
	if n == 0 {
		return nil, ErrEmptyCorpus
	}
	if k <= 0 {
		return nil, &ConfigError{Field: "k", Value: k, Err: ErrInvalidK}
	}
	if k > n {
		return nil, &ConfigError{Field: "k", Value: k, Err: ErrKExceedsCorpus}
	}

	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	centroids := make([]int, k)
	copy(centroids, pool[:k])
	return centroids, nil
}
