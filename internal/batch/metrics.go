package batch

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/thebtf/medoids/internal/batch"

// Metrics records per-K run statistics. It reports to the global meter
// provider, which is a no-op until the process installs an SDK.
type Metrics struct {
	runs       metric.Int64Counter
	iterations metric.Int64Histogram
	sse        metric.Float64Histogram
}

// NewMetrics creates instruments on the global meter provider.
func NewMetrics() *Metrics {
	m, err := newMetrics(otel.Meter(meterName))
	if err != nil {
		log.Warn().Err(err).Msg("Failed to create metrics instruments, metrics disabled")
		m, _ = newMetrics(noop.NewMeterProvider().Meter(meterName))
	}
	return m
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	runs, err := meter.Int64Counter("medoids.runs",
		metric.WithDescription("Clustering runs by outcome"))
	if err != nil {
		return nil, err
	}
	iterations, err := meter.Int64Histogram("medoids.iterations",
		metric.WithDescription("Iterations until convergence or budget exhaustion"))
	if err != nil {
		return nil, err
	}
	sse, err := meter.Float64Histogram("medoids.sse",
		metric.WithDescription("Sum of squared error of finished runs"))
	if err != nil {
		return nil, err
	}
	return &Metrics{runs: runs, iterations: iterations, sse: sse}, nil
}

// Record adds one finished or failed run.
func (m *Metrics) Record(ctx context.Context, o Outcome) {
	k := attribute.Int("k", o.K)
	if o.Err != nil {
		m.runs.Add(ctx, 1, metric.WithAttributes(k, attribute.String("outcome", "error")))
		return
	}

	stop := attribute.String("stop", o.Result.Stop.String())
	m.runs.Add(ctx, 1, metric.WithAttributes(k, attribute.String("outcome", "ok"), stop))
	m.iterations.Record(ctx, int64(o.Result.Iterations), metric.WithAttributes(k, stop))
	m.sse.Record(ctx, o.Result.SSE, metric.WithAttributes(k))
}
