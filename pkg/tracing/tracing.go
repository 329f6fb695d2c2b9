// Package tracing configures OpenTelemetry for placement runs.
package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"k8s.io/klog/v2"

	"github.com/sagin-nfv/sfcplacer/pkg/api/v1alpha1"
)

const (
	// DefaultServiceName is used when the configuration names none
	DefaultServiceName = "sfcplacer"
	// TracerName is the instrumentation scope of every span
	TracerName = "github.com/sagin-nfv/sfcplacer"
)

// ShutdownFunc flushes and stops a tracer provider
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// NewTracerProvider returns a noop provider when no collector endpoint is
// configured, otherwise an SDK provider exporting over OTLP gRPC.
func NewTracerProvider(ctx context.Context, cfg v1alpha1.TracingConfiguration) (trace.TracerProvider, ShutdownFunc, error) {
	if cfg.CollectorEndpoint == "" {
		klog.V(3).InfoS("Tracing disabled, no collector endpoint configured")
		return noop.NewTracerProvider(), noopShutdown, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.CollectorEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	rate := 1.0
	if cfg.SampleRate != nil {
		rate = *cfg.SampleRate
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(rate))),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
	)
	klog.V(2).InfoS("Tracing enabled", "endpoint", cfg.CollectorEndpoint, "serviceName", serviceName, "sampleRate", rate)
	return tp, tp.Shutdown, nil
}

// Setup installs the provider built from cfg as the global one
func Setup(ctx context.Context, cfg v1alpha1.TracingConfiguration) (ShutdownFunc, error) {
	tp, shutdown, err := NewTracerProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return shutdown, nil
}

// Tracer returns the tracer of the global provider
func Tracer() trace.Tracer {
	return otel.GetTracerProvider().Tracer(TracerName)
}
