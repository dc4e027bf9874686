package kmedoids

import "math"

const (
	// DefaultMaxIter is the iteration budget when none is configured.
	DefaultMaxIter = 1000
	// DefaultThreshold is the per-centroid distance under which two
	// consecutive centroid lists are considered equal.
	DefaultThreshold = 0.0001
)

// Config configures a single clustering run.
type Config struct {
	// K is the number of clusters.
	K int
	// MaxIter caps the number of assign/update iterations.
	MaxIter int
	// Seed drives centroid initialization.
	Seed int64
	// Threshold is the convergence threshold.
	Threshold float64
}

// DefaultConfig returns a Config for k clusters with default budget, seed 0
// and threshold.
func DefaultConfig(k int) Config {
	return Config{
		K:         k,
		MaxIter:   DefaultMaxIter,
		Seed:      0,
		Threshold: DefaultThreshold,
	}
}

// Validate checks the config against a corpus of n documents.
func (c Config) Validate(n int) error {
	if n == 0 {
		return ErrEmptyCorpus
	}
	if c.K <= 0 {
		return &ConfigError{Field: "k", Value: c.K, Err: ErrInvalidK}
	}
	if c.K > n {
		return &ConfigError{Field: "k", Value: c.K, Err: ErrKExceedsCorpus}
	}
	if c.MaxIter <= 0 {
		return &ConfigError{Field: "max_iter", Value: c.MaxIter, Err: ErrInvalidMaxIter}
	}
	if c.Threshold < 0 || math.IsNaN(c.Threshold) {
		return &ConfigError{Field: "threshold", Value: c.Threshold, Err: ErrInvalidThreshold}
	}
	return nil
}
