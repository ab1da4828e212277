package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/rollout/internal/adapters/linear"
	"go.trai.ch/rollout/internal/adapters/telemetry"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/rollout/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_StreamsOutputToRenderer(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var stdout, stderr bytes.Buffer
	renderer := linear.NewRenderer(&stdout, &stderr)
	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(renderer), renderer)

	ctx := context.Background()
	tracer.EmitPlan(ctx, []string{"rpmbuild"})

	_, span := tracer.Start(ctx, "rpmbuild")
	n, err := span.Write([]byte("Wrote: counter.rpm\n"))
	require.NoError(t, err)
	assert.Equal(t, 19, n)
	span.End()

	require.NoError(t, renderer.Stop())

	assert.Equal(t, "[rpmbuild] Wrote: counter.rpm\n", stdout.String())
	assert.Contains(t, stderr.String(), "Running 1 step(s): rpmbuild")
	assert.Contains(t, stderr.String(), "[rpmbuild] Starting...")
	assert.Contains(t, stderr.String(), "[rpmbuild] ✓ Completed")
}

func TestOTelTracer_RecordError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var stdout, stderr bytes.Buffer
	renderer := linear.NewRenderer(&stdout, &stderr)
	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(renderer), renderer)

	_, span := tracer.Start(context.Background(), "publish")
	span.RecordError(nil)
	span.RecordError(errors.New("failed to publish rpm"))
	span.End()

	assert.Contains(t, stderr.String(), "[publish] ✗ Failed after")
	assert.Contains(t, stderr.String(), "failed to publish rpm")
}

func TestOTelTracer_QuietSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	// No renderer calls are expected for quiet spans.
	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(mockRenderer), mockRenderer)

	_, span := tracer.Start(context.Background(), "hostname", ports.WithQuiet())
	_, err := span.Write([]byte("web01\n"))
	require.NoError(t, err)
	span.End()
}

func TestOTelSpan_Attributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracer(tp, nil)

	ctx, span := tracer.Start(context.Background(), "deploy")
	tracer.EmitPlan(ctx, []string{"web01", "web02"})
	span.SetAttribute("mode", "full")
	span.SetAttribute("hosts", 2)
	span.SetAttribute("concurrency", int64(8))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("dry_run", false)
	span.SetAttribute("targets", []string{"web01", "web02"})
	span.SetAttribute("record", struct{ Name string }{"counter"})
	span.RecordError(errors.New("boom"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	got := map[string]string{}
	for _, kv := range ended[0].Attributes() {
		got[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "full", got["mode"])
	assert.Equal(t, "2", got["hosts"])
	assert.Equal(t, "8", got["concurrency"])
	assert.Equal(t, "0.5", got["ratio"])
	assert.Equal(t, "false", got["dry_run"])
	assert.Equal(t, `["web01","web02"]`, got["targets"])
	assert.Equal(t, "{counter}", got["record"])

	assert.Equal(t, codes.Error, ended[0].Status().Code)

	var events []string
	for _, e := range ended[0].Events() {
		events = append(events, e.Name)
	}
	assert.Contains(t, events, "plan_emitted")
	assert.Contains(t, events, "exception")
}
