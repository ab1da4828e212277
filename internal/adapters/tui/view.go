package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/rollout/internal/ui/style"
)

const (
	logIndent      = "  │ "
	logIndentWidth = 4
)

// View renders the step list followed by the tail of the selected step's output.
func (m *Model) View() string {
	if len(m.Steps) == 0 {
		return ""
	}

	var s strings.Builder
	for _, step := range m.Steps {
		s.WriteString(m.renderStepRow(step))
		s.WriteByte('\n')
	}

	if pane := m.logPane(); pane != "" {
		s.WriteString(pane)
		s.WriteByte('\n')
	}
	return s.String()
}

func (m *Model) renderStepRow(step *StepNode) string {
	row := strings.Repeat("  ", step.Depth) + stepIcon(step) + " " + step.Name
	row = stepStyle(step).Render(row)

	if d := step.Duration(); d > 0 {
		row += " " + durationStyle.Render(formatDuration(d))
	}
	return row
}

func (m *Model) logPane() string {
	step := m.Selected
	if step == nil || step.Term.UsedHeight() == 0 {
		return ""
	}

	title := titleStyle
	if step.Status == StatusError {
		title = failureTitleStyle
	}

	lines := strings.Split(step.Term.View(), "\n")
	indent := logIndentStyle.Render(logIndent)
	for i, line := range lines {
		lines[i] = indent + line
	}

	return lipgloss.JoinVertical(lipgloss.Left, title.Render(step.Name), strings.Join(lines, "\n"))
}

func stepIcon(step *StepNode) string {
	switch step.Status {
	case StatusRunning:
		return "●"
	case StatusDone:
		return style.Check
	case StatusError:
		return style.Cross
	default:
		return "○"
	}
}

func stepStyle(step *StepNode) lipgloss.Style {
	switch step.Status {
	case StatusRunning:
		return stepRunningStyle
	case StatusDone:
		return stepDoneStyle
	case StatusError:
		return stepErrorStyle
	default:
		return stepPendingStyle
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
