package tracing

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

type closer struct {
	tp *sdktrace.TracerProvider
}

func (c closer) Close() error {
	return c.tp.Shutdown(context.Background())
}

func InitTracer(l logrus.FieldLogger) func(serviceName string) (io.Closer, error) {
	return func(serviceName string) (io.Closer, error) {
		ctx := context.Background()

		exporter, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(getCollectorEndpoint()),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, err
		}

		res, err := resource.New(ctx,
			resource.WithAttributes(semconv.ServiceName(serviceName)),
		)
		if err != nil {
			return nil, err
		}

		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

		l.Debugf("Tracing initialized for service [%s].", serviceName)
		return closer{tp: tp}, nil
	}
}

func Teardown(l logrus.FieldLogger) func(c io.Closer) func() {
	return func(c io.Closer) func() {
		return func() {
			if err := c.Close(); err != nil {
				l.WithError(err).Errorf("Error shutting down tracer.")
			}
		}
	}
}

func getCollectorEndpoint() string {
	if val, ok := os.LookupEnv("OTEL_EXPORTER_OTLP_ENDPOINT"); ok {
		return val
	}
	return "localhost:4317"
}
