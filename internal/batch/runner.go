// Package batch runs the clustering core once per K over a shared corpus.
package batch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/thebtf/medoids/internal/report"
	"github.com/thebtf/medoids/pkg/kmedoids"
)

// Outcome is the result of one K in a batch. Exactly one of Result and Err is set.
type Outcome struct {
	Result *kmedoids.Result
	Err    error
	K      int
}

// Runner clusters one corpus with several K values. Every K starts from a
// fresh random source built from the same seed, so results do not depend on
// which other K values ran before it.
type Runner struct {
	corpus  *kmedoids.Corpus
	metrics *Metrics
	base    kmedoids.Config
}

// NewRunner creates a runner. base supplies seed, iteration budget and
// threshold; its K is ignored.
func NewRunner(corpus *kmedoids.Corpus, base kmedoids.Config) *Runner {
	return &Runner{
		corpus:  corpus,
		base:    base,
		metrics: NewMetrics(),
	}
}

// Run clusters the corpus once for each k, in order. A failure for one K is
// recorded in its Outcome and does not stop the rest. Cancellation is checked
// between K values; K values not started get the context error.
func (r *Runner) Run(ctx context.Context, ks []int) []Outcome {
	runID := uuid.NewString()
	logger := log.With().Str("run_id", runID).Logger()

	logger.Info().
		Int("documents", r.corpus.Len()).
		Ints("ks", ks).
		Int64("seed", r.base.Seed).
		Msg("Starting clustering batch")

	outcomes := make([]Outcome, 0, len(ks))
	for _, k := range ks {
		if err := ctx.Err(); err != nil {
			outcomes = append(outcomes, Outcome{K: k, Err: err})
			continue
		}

		cfg := r.base
		cfg.K = k

		start := time.Now()
		res, err := r.corpus.Run(cfg)
		o := Outcome{K: k, Result: res}
		if err != nil {
			o.Err = err
			logger.Error().Err(err).Int("k", k).Msg("Clustering run failed")
		} else {
			logger.Info().
				Int("k", k).
				Int("iterations", res.Iterations).
				Bool("converged", res.Converged).
				Float64("sse", res.SSE).
				Dur("elapsed", time.Since(start)).
				Msg("Clustering run finished")
		}

		r.metrics.Record(ctx, o)
		outcomes = append(outcomes, o)
	}

	return outcomes
}

// Rows converts outcomes into report rows, keeping batch order.
func Rows(outcomes []Outcome) []report.Row {
	rows := make([]report.Row, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			rows = append(rows, report.FromError(o.K, o.Err))
			continue
		}
		rows = append(rows, report.FromResult(o.Result))
	}
	return rows
}
