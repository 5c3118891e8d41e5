package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/prj/internal/adapters/telemetry"
)

func newRecordingTracer(t *testing.T) (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return telemetry.NewOTelTracer(tp, "prj-test"), sr
}

type rootLabel string

func (r rootLabel) String() string { return "root:" + string(r) }

func TestOTelTracer_StartNestsSpans(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	ctx, parent := tracer.Start(context.Background(), "list")
	_, child := tracer.Start(ctx, "catalog.load")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "catalog.load", spans[0].Name())
	assert.Equal(t, "list", spans[1].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
	assert.Equal(t, "prj-test", spans[1].InstrumentationScope().Name)
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	_, span := tracer.Start(context.Background(), "reload")
	span.SetAttribute("project", "api")
	span.SetAttribute("count", 3)
	span.SetAttribute("bytes", int64(456))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("forced", true)
	span.SetAttribute("roots", []string{"/src", "/work"})
	span.SetAttribute("counts", []int{1, 2})
	span.SetAttribute("elapsed", 1500*time.Millisecond)
	span.SetAttribute("cause", errors.New("disk full"))
	span.SetAttribute("root", rootLabel("/src"))
	span.SetAttribute("other", struct{}{})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "api", attrs["project"].AsString())
	assert.Equal(t, int64(3), attrs["count"].AsInt64())
	assert.Equal(t, int64(456), attrs["bytes"].AsInt64())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0.0001)
	assert.True(t, attrs["forced"].AsBool())
	assert.Equal(t, []string{"/src", "/work"}, attrs["roots"].AsStringSlice())
	assert.Equal(t, []int64{1, 2}, attrs["counts"].AsInt64Slice())
	assert.Equal(t, "1.5s", attrs["elapsed"].AsString())
	assert.Equal(t, "disk full", attrs["cause"].AsString())
	assert.Equal(t, "root:/src", attrs["root"].AsString())
	assert.Equal(t, "{}", attrs["other"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	_, span := tracer.Start(context.Background(), "create")
	span.RecordError(errors.New("disk full"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "disk full", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestOTelSpan_RecordNilError(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	_, span := tracer.Start(context.Background(), "create")
	span.RecordError(nil)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Empty(t, spans[0].Events())
}
