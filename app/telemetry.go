package app

import (
	"context"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "amm"
	serviceVersion = "1.0.0"
)

// Telemetry owns the tracer provider handed to the keepers.
type Telemetry struct {
	provider trace.TracerProvider
	shutdown func(context.Context) error
}

// InitTelemetry sets up OTLP/HTTP tracing when cfg enables it and a no-op
// provider otherwise.
func InitTelemetry(cfg Config) (*Telemetry, error) {
	if !cfg.TracingEnabled {
		return &Telemetry{provider: noop.NewTracerProvider()}, nil
	}
	if err := validateTraceEndpoint(cfg.TraceEndpoint); err != nil {
		return nil, err
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
			attribute.String("db.backend", cfg.DBBackend),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	// The scheme of the URL selects TLS; http endpoints export in plain text.
	exp, err := otlptracehttp.New(context.Background(),
		otlptracehttp.WithEndpointURL(cfg.TraceEndpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exp),
		tracesdk.WithResource(res),
		tracesdk.WithSampler(tracesdk.ParentBased(
			tracesdk.TraceIDRatioBased(cfg.TraceSampleRate),
		)),
	)
	return &Telemetry{provider: tp, shutdown: tp.Shutdown}, nil
}

// validateTraceEndpoint requires an absolute http or https URL.
func validateTraceEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid trace endpoint: %w", err)
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return fmt.Errorf("invalid trace endpoint %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid trace endpoint %q: missing host", endpoint)
	}
	return nil
}

// Tracer returns a tracer of the configured provider.
func (t *Telemetry) Tracer(name string) trace.Tracer {
	return t.provider.Tracer(name)
}

// Shutdown flushes and stops the provider.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t.shutdown != nil {
		return t.shutdown(ctx)
	}
	return nil
}
