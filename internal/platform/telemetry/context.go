package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

const tracerContextKey contextKey = "tracer"

// TracerFromContext returns the tracer carried on ctx, or the default
// global tracer when none was attached.
func TracerFromContext(ctx context.Context) trace.Tracer {
	if tracer, ok := ctx.Value(tracerContextKey).(trace.Tracer); ok && tracer != nil {
		return tracer
	}

	return otel.Tracer("default")
}

// ContextWithTracer returns a derived context carrying tracer.
func ContextWithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return context.WithValue(ctx, tracerContextKey, tracer)
}
