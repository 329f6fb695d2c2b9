package tracing

import (
	"context"
	"testing"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"k8s.io/utils/ptr"

	"github.com/sagin-nfv/sfcplacer/pkg/api/v1alpha1"
)

func TestNewTracerProviderDisabled(t *testing.T) {
	tp, shutdown, err := NewTracerProvider(context.Background(), v1alpha1.TracingConfiguration{})
	if err != nil {
		t.Fatalf("NewTracerProvider: %v", err)
	}
	if _, ok := tp.(noop.TracerProvider); !ok {
		t.Errorf("Expected a noop provider, got %T", tp)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestNewTracerProviderWithEndpoint(t *testing.T) {
	cfg := v1alpha1.TracingConfiguration{
		CollectorEndpoint: "localhost:4317",
		ServiceName:       "sfcplacer-test",
		SampleRate:        ptr.To(0.5),
	}
	tp, shutdown, err := NewTracerProvider(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewTracerProvider: %v", err)
	}
	if _, ok := tp.(*sdktrace.TracerProvider); !ok {
		t.Errorf("Expected an SDK provider, got %T", tp)
	}
	// no span was recorded, so shutdown has nothing to export
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = shutdown(ctx)
}
