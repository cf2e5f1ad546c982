package otel_test

import (
	"context"
	"errors"
	"ohanna/infras/otel"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	o := otel.NewWithProvider(provider)

	_, scope := o.NewScope(context.Background(), "service", "service.Save")
	scope.SetAttributes(map[string]any{
		"booking.id": "b-1",
		"people":     4,
		"holiday":    true,
	})
	scope.AddEvent("saved")
	scope.TraceIfError(nil)
	scope.End()

	_, failing := o.NewScope(context.Background(), "service", "service.Delete")
	failing.TraceIfError(errors.New("boom"))
	failing.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "service.Save", spans[0].Name())
	assert.Len(t, spans[0].Attributes(), 3)
	assert.Len(t, spans[0].Events(), 1)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	assert.Equal(t, "service.Delete", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "boom", spans[1].Status().Description)

	require.NoError(t, o.Shutdown(context.Background()))
}

func TestScope_AttributeTypes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	o := otel.NewWithProvider(provider)

	_, scope := o.NewScope(context.Background(), "calendar", "calendar.Month")
	scope.SetAttribute("calendar.start", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	scope.SetAttribute("collections.share", 66.7)
	scope.SetAttribute("collections.total", int64(300000))
	scope.SetAttribute("calendar.month", time.March)
	scope.TraceError(nil)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	got := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		got[string(kv.Key)] = kv.Value.Emit()
	}

	assert.Equal(t, map[string]string{
		"calendar.start":    "2025-03-01",
		"collections.share": "66.7",
		"collections.total": "300000",
		"calendar.month":    "March",
	}, got)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}
