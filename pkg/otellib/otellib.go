package otellib

import (
	"context"

	"github.com/campushub/eventcore/config"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
)

// InitOtel configures the global tracer provider with a Jaeger exporter.
// Returns a no-op provider when tracing is disabled.
func InitOtel(serviceName string, env string, conf config.JaegerConfig) (trace.TracerProvider, func()) {
	if !conf.Enabled {
		return trace.NewNoopTracerProvider(), func() {}
	}

	exporter, err := jaeger.New(
		jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(conf.Endpoint)),
	)
	if err != nil {
		panic(err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			attribute.String("environment", env),
		)),
	)

	shutdown := func() {
		_ = provider.Shutdown(context.Background())
	}
	return provider, shutdown
}
