package tui_test

import (
	"bytes"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rollout/internal/adapters/tui"
	"go.trai.ch/zerr"
)

func newTestRenderer(model *tui.Model, fallback io.Writer) *tui.Renderer {
	return tui.NewRenderer(
		model,
		fallback,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
}

func TestRenderer_StopBeforeStart(t *testing.T) {
	r := newTestRenderer(tui.NewModel(), nil)

	require.NoError(t, r.Stop())
	assert.False(t, r.Started())

	// Events after Stop are dropped without starting the program.
	r.OnPlanEmit([]string{"build"})
	assert.False(t, r.Started())
}

func TestRenderer_StartsOnFirstEvent(t *testing.T) {
	model := tui.NewModel()
	r := newTestRenderer(model, nil)
	assert.False(t, r.Started())

	start := time.Now()
	r.OnPlanEmit([]string{"verify", "rpmbuild"})
	assert.True(t, r.Started())

	r.OnStepStart("s1", "", "verify", start)
	r.OnStepLog("s1", []byte("release binary version 1.2.3\n"))
	r.OnStepComplete("s1", start.Add(time.Second), nil)
	r.OnStepStart("s2", "", "rpmbuild", start)
	r.OnStepComplete("s2", start.Add(time.Second), zerr.New("rpmbuild failed"))

	require.NoError(t, r.Stop())

	require.Len(t, model.Steps, 2)
	assert.Equal(t, tui.StatusDone, model.Steps[0].Status)
	assert.Equal(t, tui.StatusError, model.Steps[1].Status)
	assert.Contains(t, stripANSI(model.Steps[0].Term.View()), "release binary version 1.2.3")
}

func TestRenderer_StopIsIdempotent(t *testing.T) {
	r := newTestRenderer(tui.NewModel(), nil)
	r.OnPlanEmit([]string{"build"})

	require.NoError(t, r.Stop())
	require.NoError(t, r.Stop())
}

func TestRenderer_LogWriter(t *testing.T) {
	var fallback bytes.Buffer
	r := newTestRenderer(tui.NewModel(), &fallback)
	w := r.LogWriter()

	_, err := w.Write([]byte("before\n"))
	require.NoError(t, err)
	assert.Equal(t, "before\n", fallback.String())

	r.OnPlanEmit([]string{"build"})
	n, err := w.Write([]byte("during\n"))
	require.NoError(t, err)
	assert.Equal(t, len("during\n"), n)
	assert.NotContains(t, fallback.String(), "during")

	require.NoError(t, r.Stop())

	_, _ = w.Write([]byte("after\n"))
	assert.Contains(t, fallback.String(), "after")
}
