// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "sdkgen"

type Options struct {
	// Endpoint адрес OTLP/gRPC коллектора; пустой адрес отключает экспорт.
	Endpoint string
	Insecure bool
	Version  string
}

// Setup настраивает глобальный TracerProvider. Возвращаемую функцию нужно вызвать при завершении.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {

	if opts.Endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	exporterOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(opts.Endpoint)}
	if opts.Insecure {
		exporterOpts = append(exporterOpts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptracegrpc.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", instrumentationName),
			attribute.String("service.version", opts.Version),
		)),
	)
	otel.SetTracerProvider(provider)
	slog.Debug("tracing enabled", slog.String("endpoint", opts.Endpoint))
	return provider.Shutdown, nil
}

// Tracer трассировщик генератора из глобального провайдера.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// Meter счётчики генератора из глобального провайдера.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
