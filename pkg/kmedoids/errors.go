package kmedoids

import (
	"errors"
	"fmt"
)

// Errors for k-medoids clustering
var (
	// ErrEmptyCorpus is returned when there are no documents to cluster.
	ErrEmptyCorpus = errors.New("kmedoids: corpus contains no documents")
	// ErrInvalidK is returned when K is not positive.
	ErrInvalidK = errors.New("kmedoids: K must be positive")
	// ErrKExceedsCorpus is returned when K is larger than the corpus.
	ErrKExceedsCorpus = errors.New("kmedoids: K exceeds corpus size")
	// ErrInvalidMaxIter is returned when the iteration budget is not positive.
	ErrInvalidMaxIter = errors.New("kmedoids: max iterations must be positive")
	// ErrInvalidThreshold is returned for a negative or NaN convergence threshold.
	ErrInvalidThreshold = errors.New("kmedoids: threshold must be a non-negative number")
)

// ConfigError reports a configuration value rejected before clustering starts.
type ConfigError struct {
	Err   error
	Field string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err was caused by a bad K, iteration
// budget or threshold. An empty corpus also counts, since no K can be valid.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr) || errors.Is(err, ErrEmptyCorpus)
}

// IsDegenerateInput reports whether err was caused by an empty corpus.
func IsDegenerateInput(err error) bool {
	return errors.Is(err, ErrEmptyCorpus)
}
