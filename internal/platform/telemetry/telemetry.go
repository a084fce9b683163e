// Package telemetry initializes OpenTelemetry tracing/metrics providers
// and exposes the span helpers every repository, service and handler
// method uses to wrap its work.
package telemetry

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Telemetry holds the library-wide tracer/meter providers and their
// shutdown hook.
type Telemetry struct {
	LibraryName               string
	ServiceName               string
	ServiceVersion            string
	DeploymentEnv             string
	CollectorExporterEndpoint string
	TracerProvider            *sdktrace.TracerProvider
	MeterProvider             *sdkmetric.MeterProvider
	shutdown                  func()
}

func (t *Telemetry) newResource() (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(t.ServiceName),
			semconv.ServiceVersion(t.ServiceVersion),
			semconv.DeploymentEnvironment(t.DeploymentEnv),
		),
	)
}

// Initialize wires the tracer and meter providers and sets them as the
// process-global OTel providers. Call Shutdown on process exit.
func (t *Telemetry) Initialize() *Telemetry {
	ctx := context.Background()

	r, err := t.newResource()
	if err != nil {
		log.Fatalf("telemetry: can't build resource: %v", err)
	}

	tExp, err := otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(t.CollectorExporterEndpoint), otlptracegrpc.WithInsecure())
	if err != nil {
		log.Fatalf("telemetry: can't build trace exporter: %v", err)
	}

	mExp, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithEndpoint(t.CollectorExporterEndpoint), otlpmetricgrpc.WithInsecure())
	if err != nil {
		log.Fatalf("telemetry: can't build metric exporter: %v", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(tExp), sdktrace.WithResource(r))
	otel.SetTracerProvider(tp)
	t.TracerProvider = tp

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithResource(r), sdkmetric.WithReader(sdkmetric.NewPeriodicReader(mExp)))
	otel.SetMeterProvider(mp)
	t.MeterProvider = mp

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	t.shutdown = func() {
		_ = tExp.Shutdown(ctx)
		_ = mExp.Shutdown(ctx)
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
	}

	return t
}

// Shutdown flushes and tears down the tracer and meter providers.
func (t *Telemetry) Shutdown() {
	if t.shutdown != nil {
		t.shutdown()
	}
}

// HandleSpanError records err on span and marks the span as failed. Every
// repository, service and handler method that returns a non-nil error
// calls this before returning.
func HandleSpanError(span *trace.Span, message string, err error) {
	(*span).SetStatus(codes.Error, message+": "+err.Error())
	(*span).RecordError(err)
}
