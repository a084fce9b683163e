// Package metrics is the uniform instrumentation facade every
// application service operation goes through: a fixed set of counters
// and a duration histogram, labeled by service and operation, exposed
// in Prometheus text format.
package metrics

import (
	"context"
	"time"

	"github.com/catalogsvc/catalog/internal/platform/logging"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	successTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_operation_success_total",
			Help: "Count of operations that completed without error.",
		},
		[]string{"service", "operation"},
	)

	errorTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_operation_error_total",
			Help: "Count of operations that returned an error.",
		},
		[]string{"service", "operation"},
	)

	durationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_operation_duration_seconds",
			Help:    "Latency of operations in seconds.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
		[]string{"service", "operation"},
	)
)

// Registry is the Prometheus registry the /metrics handler serves from.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(successTotal, errorTotal, durationSeconds)
}

// RecordSuccess increments the success counter for service/operation.
func RecordSuccess(service, operation string) {
	successTotal.WithLabelValues(service, operation).Inc()
}

// RecordError increments the error counter for service/operation.
func RecordError(service, operation string) {
	errorTotal.WithLabelValues(service, operation).Inc()
}

// RecordDuration observes d against the duration histogram for
// service/operation.
func RecordDuration(service, operation string, d time.Duration) {
	durationSeconds.WithLabelValues(service, operation).Observe(d.Seconds())
}

// Timer starts a scoped timer; calling the returned function records the
// elapsed duration.
func Timer(service, operation string) func() {
	start := time.Now()

	return func() {
		RecordDuration(service, operation, time.Since(start))
	}
}

// WithMetrics wraps fn, recording success/error counts and duration for
// service/operation, regardless of the outcome. Every application service
// method and repository method is expected to be reachable through this
// wrapper exactly once.
func WithMetrics(ctx context.Context, service, operation string, fn func(ctx context.Context) error) error {
	start := time.Now()

	err := fn(ctx)
	d := time.Since(start)
	RecordDuration(service, operation, d)
	logOutcome(ctx, service, operation, d, err)

	if err != nil {
		RecordError(service, operation)
		return err
	}

	RecordSuccess(service, operation)

	return nil
}

// WithMetricsResult is the generic counterpart of WithMetrics for
// operations that return a value alongside an error.
func WithMetricsResult[T any](ctx context.Context, service, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	start := time.Now()

	result, err := fn(ctx)
	d := time.Since(start)
	RecordDuration(service, operation, d)
	logOutcome(ctx, service, operation, d, err)

	if err != nil {
		RecordError(service, operation)
		return result, err
	}

	RecordSuccess(service, operation)

	return result, nil
}

// WithTimer wraps fn, recording duration and a success count for
// service/operation. It is the counterpart of WithMetrics for actions
// that cannot fail, so there is no error count to record.
func WithTimer(ctx context.Context, service, operation string, fn func(ctx context.Context)) {
	start := time.Now()

	fn(ctx)

	d := time.Since(start)
	RecordDuration(service, operation, d)
	RecordSuccess(service, operation)
	logging.FromContext(ctx).Debugf("%s.%s completed in %s", service, operation, d)
}

// logOutcome emits the debug-on-success / warn-on-error structured log
// every with_metrics scope carries, per spec §4.5's tracing requirement.
func logOutcome(ctx context.Context, service, operation string, d time.Duration, err error) {
	logger := logging.FromContext(ctx)

	if err != nil {
		logger.Warnf("%s.%s failed after %s: %v", service, operation, d, err)
		return
	}

	logger.Debugf("%s.%s succeeded in %s", service, operation, d)
}
