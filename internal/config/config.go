// Package config provides configuration management for medoids batch runs.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/thebtf/medoids/internal/report"
	"github.com/thebtf/medoids/pkg/kmedoids"
)

// Environment variables that override file values.
const (
	EnvInput    = "MEDOIDS_INPUT"
	EnvKs       = "MEDOIDS_KS"
	EnvSeed     = "MEDOIDS_SEED"
	EnvMaxIter  = "MEDOIDS_MAX_ITER"
	EnvLogLevel = "MEDOIDS_LOG_LEVEL"
)

// DefaultSeed is the seed shared by every K in a batch unless overridden.
const DefaultSeed = 10

// DefaultKs are the cluster counts tried when none are configured.
var DefaultKs = []int{10, 20, 50, 100, 150}

// Config holds a batch run configuration.
type Config struct {
	Input        string  `yaml:"input"`
	Format       string  `yaml:"format"`
	LogLevel     string  `yaml:"log_level"`
	Ks           []int   `yaml:"ks"`
	Seed         int64   `yaml:"seed"`
	MaxIter      int     `yaml:"max_iter"`
	Threshold    float64 `yaml:"threshold"`
	WriteCleaned bool    `yaml:"write_cleaned"`
}

// Default returns the default configuration.
func Default() *Config {
	ks := make([]int, len(DefaultKs))
	copy(ks, DefaultKs)
	return &Config{
		Format:       string(report.FormatText),
		LogLevel:     zerolog.InfoLevel.String(),
		Ks:           ks,
		Seed:         DefaultSeed,
		MaxIter:      kmedoids.DefaultMaxIter,
		Threshold:    kmedoids.DefaultThreshold,
		WriteCleaned: true,
	}
}

// Load reads a YAML config from path and applies environment overrides.
// If the file does not exist, defaults are used. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Debug().Str("path", path).Msg("Config file not found, using defaults")
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides fields from the environment. Invalid values are logged and ignored.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvInput); v != "" {
		c.Input = v
	}

	if v := os.Getenv(EnvKs); v != "" {
		ks, err := ParseKs(v)
		if err != nil {
			log.Warn().Err(err).Str("env_value", v).Msg("Invalid cluster counts in environment, ignoring")
		} else {
			c.Ks = ks
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Warn().Err(err).Str("env_value", v).Msg("Invalid seed in environment, ignoring")
		} else {
			c.Seed = seed
		}
	}

	if v := os.Getenv(EnvMaxIter); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			log.Warn().Err(err).Str("env_value", v).Msg("Invalid max iterations in environment, ignoring")
		} else {
			c.MaxIter = n
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate checks values that would otherwise fail every run in the batch.
// Per-K problems such as K larger than the corpus are left to the run itself.
func (c *Config) Validate() error {
	if len(c.Ks) == 0 {
		return errors.New("at least one cluster count is required")
	}
	if c.MaxIter < 1 {
		return fmt.Errorf("max_iter must be positive, got %d", c.MaxIter)
	}
	if c.Threshold < 0 || math.IsNaN(c.Threshold) {
		return fmt.Errorf("threshold must be non-negative, got %v", c.Threshold)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// RunConfig returns the clustering config for a single K of the batch.
func (c *Config) RunConfig(k int) kmedoids.Config {
	return kmedoids.Config{
		K:         k,
		MaxIter:   c.MaxIter,
		Seed:      c.Seed,
		Threshold: c.Threshold,
	}
}

// ParseKs parses a comma separated list of cluster counts, e.g. "10, 20,50".
func ParseKs(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	ks := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		k, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid cluster count %q: %w", p, err)
		}
		ks = append(ks, k)
	}
	if len(ks) == 0 {
		return nil, fmt.Errorf("no cluster counts in %q", s)
	}
	return ks, nil
}
