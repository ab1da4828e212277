package linear_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rollout/internal/adapters/linear"
	"go.trai.ch/zerr"
)

func newRenderer(t *testing.T) (*linear.Renderer, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var stdout, stderr bytes.Buffer
	return linear.NewRenderer(&stdout, &stderr), &stdout, &stderr
}

func TestRenderer_StepLifecycle(t *testing.T) {
	r, stdout, stderr := newRenderer(t)

	r.OnPlanEmit([]string{"verify", "stage", "rpmbuild"})
	assert.Equal(t, "Running 3 step(s): verify → stage → rpmbuild\n", stderr.String())

	start := time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)
	r.OnStepStart("span1", "", "rpmbuild", start)
	assert.Contains(t, stderr.String(), "[rpmbuild] Starting...")

	r.OnStepLog("span1", []byte("Processing files: counter\n"))
	r.OnStepLog("span1", []byte("Wrote: counter.rpm\n"))
	assert.Equal(t, "[rpmbuild] Processing files: counter\n[rpmbuild] Wrote: counter.rpm\n", stdout.String())

	r.OnStepComplete("span1", start.Add(1500*time.Millisecond), nil)
	assert.Contains(t, stderr.String(), "[rpmbuild] ✓ Completed in 1.5s")

	require.NoError(t, r.Stop())
}

func TestRenderer_EmptyPlan(t *testing.T) {
	r, _, stderr := newRenderer(t)

	r.OnPlanEmit(nil)
	assert.Empty(t, stderr.String())
}

func TestRenderer_PartialLines(t *testing.T) {
	r, stdout, _ := newRenderer(t)

	start := time.Now()
	r.OnStepStart("span1", "", "build", start)

	r.OnStepLog("span1", []byte("partial"))
	assert.NotContains(t, stdout.String(), "partial")

	r.OnStepLog("span1", []byte(" line\r\n"))
	assert.Equal(t, "[build] partial line\n", stdout.String())

	r.OnStepLog("span1", []byte("unflushed"))
	r.OnStepComplete("span1", start.Add(time.Second), nil)
	assert.Contains(t, stdout.String(), "[build] unflushed\n")
}

func TestRenderer_StepError(t *testing.T) {
	r, _, stderr := newRenderer(t)

	start := time.Now()
	r.OnStepStart("span1", "", "publish", start)
	r.OnStepComplete("span1", start.Add(50*time.Millisecond), zerr.New("failed to publish rpm"))

	assert.Contains(t, stderr.String(), "[publish] ✗ Failed after 50ms: failed to publish rpm")
}

func TestRenderer_ConcurrentSteps(t *testing.T) {
	r, stdout, _ := newRenderer(t)

	start := time.Now()
	r.OnStepStart("span1", "", "web01", start)
	r.OnStepStart("span2", "", "web02", start)

	r.OnStepLog("span1", []byte("web01 line 1\n"))
	r.OnStepLog("span2", []byte("web02 line 1\n"))
	r.OnStepLog("span1", []byte("web01 line 2\n"))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Equal(t, []string{
		"[web01] web01 line 1",
		"[web02] web02 line 1",
		"[web01] web01 line 2",
	}, lines)
}

func TestRenderer_UnknownSpan(t *testing.T) {
	r, stdout, stderr := newRenderer(t)

	r.OnStepLog("missing", []byte("ignored\n"))
	r.OnStepComplete("missing", time.Now(), nil)

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRenderer_StopFlushes(t *testing.T) {
	r, stdout, _ := newRenderer(t)

	r.OnStepStart("span1", "", "deploy", time.Now())
	r.OnStepLog("span1", []byte("no newline"))
	require.NoError(t, r.Stop())

	assert.Equal(t, "[deploy] no newline\n", stdout.String())
}
