package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInitWithoutEndpointIsNoop(t *testing.T) {
	is := is.New(t)
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	cleanup, err := Init(context.Background(), zerolog.Nop(), "auction-map", "test")
	is.NoErr(err)
	cleanup()
}

func TestRecordAnyErrorAndEndSpan(t *testing.T) {
	is := is.New(t)

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := provider.Tracer("test")

	_, ok := tracer.Start(context.Background(), "ok")
	RecordAnyErrorAndEndSpan(nil, ok)

	_, failed := tracer.Start(context.Background(), "failed")
	RecordAnyErrorAndEndSpan(errors.New("boom"), failed)

	spans := recorder.Ended()
	is.Equal(len(spans), 2)
	is.Equal(spans[0].Status().Code, codes.Unset)
	is.Equal(spans[1].Status().Code, codes.Error)
	is.Equal(spans[1].Status().Description, "boom")
}
