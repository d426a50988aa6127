package otel

import (
	"context"
	"hotelsphere/config"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	flushTimeout    = 5 * time.Second
	attributeClient = "hotelsphere.client_id"
	defaultService  = "hotelsphere"
)

type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
}

type otelImpl struct {
	TracerProvider *trace.TracerProvider
}

func (o *otelImpl) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := o.TracerProvider.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

// New builds the tracer provider. Spans are exported over OTLP gRPC when an
// endpoint is configured and only recorded in-process otherwise. The returned
// func flushes pending spans.
func New(config *config.Config) (Otel, func()) {
	options := []trace.TracerProviderOption{
		trace.WithResource(newResource(config)),
	}

	if endpoint := config.External.Otel.Endpoint; endpoint != "" {
		exporter, err := otlptracegrpc.New(context.Background(),
			otlptracegrpc.WithEndpoint(endpoint),
			otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create OTLP exporter")
		}

		options = append(options, trace.WithBatcher(exporter))

		log.Info().Str("endpoint", endpoint).Msg("Exporting traces")
	} else {
		log.Info().Msg("No OTLP endpoint configured, traces stay in-process")
	}

	traceProvider := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(traceProvider)

	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()

		if err := traceProvider.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to flush traces")
		}
	}

	return &otelImpl{TracerProvider: traceProvider}, shutdown
}

func newResource(config *config.Config) *resource.Resource {
	name := config.App.Name
	if name == "" {
		name = defaultService
	}

	attributes := []attribute.KeyValue{
		semconv.ServiceNameKey.String(name),
	}

	if config.Server.Env != "" {
		attributes = append(attributes, semconv.DeploymentEnvironmentKey.String(config.Server.Env))
	}

	if config.App.ClientID != "" {
		attributes = append(attributes, attribute.String(attributeClient, config.App.ClientID))
	}

	return resource.NewWithAttributes(semconv.SchemaURL, attributes...)
}
