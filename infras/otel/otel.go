package otel

import (
	"context"
	"ohanna/config"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"google.golang.org/grpc/credentials/insecure"
)

type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
	Shutdown(ctx context.Context) error
}

type otelImpl struct {
	TracerProvider *trace.TracerProvider
}

func (o *otelImpl) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := o.TracerProvider.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

func (o *otelImpl) Shutdown(ctx context.Context) error {
	return o.TracerProvider.Shutdown(ctx)
}

// NewWithProvider wraps an already configured tracer provider.
func NewWithProvider(provider *trace.TracerProvider) Otel {
	return &otelImpl{
		TracerProvider: provider,
	}
}

// New builds the tracer provider. Without a collector endpoint spans are
// still created, so request ids propagate, but nothing is exported.
func New(config *config.Config) Otel {
	ctx := context.Background()

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(config.App.Name),
	)

	endpoint := config.External.Otel.Endpoint
	if endpoint == "" {
		log.Info().Msg("Otel endpoint not configured, spans will not be exported")

		return NewWithProvider(trace.NewTracerProvider(trace.WithResource(res)))
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create OTLP exporter")
	}

	traceProvider := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
	)

	// Set tracer provider global
	otel.SetTracerProvider(traceProvider)

	return NewWithProvider(traceProvider)
}
