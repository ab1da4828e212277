package tui_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rollout/internal/adapters/tui"
	"go.trai.ch/zerr"
)

func names(m *tui.Model) []string {
	out := make([]string, 0, len(m.Steps))
	for _, s := range m.Steps {
		out = append(out, s.Name)
	}
	return out
}

func TestModel_PlanAndStart(t *testing.T) {
	m := tui.NewModel()
	m.Update(tui.MsgPlan{Steps: []string{"verify", "stage", "rpmbuild"}})

	require.Len(t, m.Steps, 3)
	for _, s := range m.Steps {
		assert.Equal(t, tui.StatusPending, s.Status)
	}

	start := time.Unix(100, 0)
	m.Update(tui.MsgStepStart{SpanID: "s1", Name: "verify", StartTime: start})

	assert.Equal(t, []string{"verify", "stage", "rpmbuild"}, names(m))
	assert.Equal(t, tui.StatusRunning, m.Steps[0].Status)
	assert.Same(t, m.Steps[0], m.Selected)

	m.Update(tui.MsgStepComplete{SpanID: "s1", EndTime: start.Add(time.Second)})
	assert.Equal(t, tui.StatusDone, m.Steps[0].Status)
	assert.Equal(t, time.Second, m.Steps[0].Duration())
}

func TestModel_PlanIgnoresDuplicates(t *testing.T) {
	m := tui.NewModel()
	m.Update(tui.MsgPlan{Steps: []string{"build"}})
	m.Update(tui.MsgPlan{Steps: []string{"build", "test"}})

	assert.Equal(t, []string{"build", "test"}, names(m))
}

func TestModel_UnplannedStepsAreAppended(t *testing.T) {
	m := tui.NewModel()
	m.Update(tui.MsgPlan{Steps: []string{"web01"}})
	m.Update(tui.MsgStepStart{SpanID: "c1", Name: "check web01"})

	assert.Equal(t, []string{"web01", "check web01"}, names(m))
	assert.Equal(t, 0, m.Steps[1].Depth)
}

func TestModel_NestedSteps(t *testing.T) {
	m := tui.NewModel()
	m.Update(tui.MsgPlan{Steps: []string{"web01", "web02"}})
	m.Update(tui.MsgStepStart{SpanID: "h1", Name: "web01"})
	m.Update(tui.MsgStepStart{SpanID: "y1", ParentID: "h1", Name: "yum"})
	m.Update(tui.MsgStepStart{SpanID: "r1", ParentID: "h1", Name: "restart"})

	assert.Equal(t, []string{"web01", "yum", "restart", "web02"}, names(m))
	assert.Equal(t, 1, m.Steps[1].Depth)
	assert.Equal(t, 1, m.Steps[2].Depth)
	assert.Equal(t, tui.StatusPending, m.Steps[3].Status)
}

func TestModel_LogsGoToTheirStep(t *testing.T) {
	m := tui.NewModel()
	m.Update(tui.MsgStepStart{SpanID: "s1", Name: "build"})
	m.Update(tui.MsgStepLog{SpanID: "s1", Data: []byte("Compiling counter\n")})
	m.Update(tui.MsgStepLog{SpanID: "unknown", Data: []byte("dropped\n")})

	assert.Contains(t, stripANSI(m.Steps[0].Term.View()), "Compiling counter")
}

func TestModel_FailedStepStaysSelected(t *testing.T) {
	m := tui.NewModel()
	m.Update(tui.MsgStepStart{SpanID: "s1", Name: "rpmbuild"})
	m.Update(tui.MsgStepComplete{SpanID: "s1", Err: zerr.New("exit status 1")})
	m.Update(tui.MsgStepStart{SpanID: "s2", Name: "record"})

	assert.Equal(t, tui.StatusError, m.Steps[0].Status)
	assert.True(t, m.Pinned)
	assert.Same(t, m.Steps[0], m.Selected)
}

func TestModel_CompleteUnknownSpan(t *testing.T) {
	m := tui.NewModel()
	_, cmd := m.Update(tui.MsgStepComplete{SpanID: "missing"})

	assert.Nil(t, cmd)
	assert.Empty(t, m.Steps)
}

func TestModel_WindowSize(t *testing.T) {
	m := tui.NewModel()
	m.Update(tui.MsgStepStart{SpanID: "s1", Name: "build"})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})

	assert.Equal(t, 60, m.Width)
	assert.Equal(t, 4, m.LogHeight)
	assert.Equal(t, 4, m.Steps[0].Term.Height)
	assert.Equal(t, 56, m.Steps[0].Term.Width)
}

func TestModel_Init(t *testing.T) {
	assert.Nil(t, tui.NewModel().Init())
}
