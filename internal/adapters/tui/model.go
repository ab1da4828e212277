// Package tui provides an interactive step renderer for terminals.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth     = 100
	defaultLogHeight = 10
)

// StepStatus represents the current state of a step.
type StepStatus string

const (
	// StatusPending indicates the step is planned but has not started.
	StatusPending StepStatus = "Pending"
	// StatusRunning indicates the step is executing.
	StatusRunning StepStatus = "Running"
	// StatusDone indicates the step succeeded.
	StatusDone StepStatus = "Done"
	// StatusError indicates the step failed.
	StatusError StepStatus = "Error"
)

// StepNode is one row of the step list.
type StepNode struct {
	Name   string
	Depth  int
	Status StepStatus
	Term   *Vterm
	Start  time.Time
	End    time.Time
}

// Duration returns how long a finished step ran.
func (s *StepNode) Duration() time.Duration {
	if s.Start.IsZero() || s.End.IsZero() {
		return 0
	}
	return s.End.Sub(s.Start)
}

// Model holds the step list and the output of the selected step.
type Model struct {
	Steps   []*StepNode
	SpanMap map[string]*StepNode
	// Selected is the step whose output tail is shown.
	Selected *StepNode
	// Pinned keeps a failed step selected.
	Pinned    bool
	Width     int
	LogHeight int
}

// NewModel creates an empty model sized for a typical terminal.
func NewModel() *Model {
	return &Model{
		SpanMap:   make(map[string]*StepNode),
		Width:     defaultWidth,
		LogHeight: defaultLogHeight,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update applies a message to the model.
//
//nolint:cyclop // one case per message type
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		if msg.Height > 0 {
			m.LogHeight = min(defaultLogHeight, max(1, msg.Height/3))
		}
		for _, s := range m.Steps {
			m.size(s.Term)
		}

	case MsgPlan:
		for _, name := range msg.Steps {
			if m.pending(name) == nil {
				m.Steps = append(m.Steps, m.newStep(name, 0))
			}
		}

	case MsgStepStart:
		node := m.pending(msg.Name)
		if parent, ok := m.SpanMap[msg.ParentID]; ok && (node == nil || node.Depth <= parent.Depth) {
			node = m.newStep(msg.Name, parent.Depth+1)
			m.insertAfter(parent, node)
		} else if node == nil {
			node = m.newStep(msg.Name, 0)
			m.Steps = append(m.Steps, node)
		}
		node.Status = StatusRunning
		node.Start = msg.StartTime
		m.SpanMap[msg.SpanID] = node
		if !m.Pinned {
			m.Selected = node
		}

	case MsgStepLog:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			_, _ = node.Term.Write(msg.Data)
		}

	case MsgStepComplete:
		node, ok := m.SpanMap[msg.SpanID]
		if !ok {
			break
		}
		node.End = msg.EndTime
		if msg.Err != nil {
			node.Status = StatusError
			if !m.Pinned {
				m.Selected = node
				m.Pinned = true
			}
		} else {
			node.Status = StatusDone
		}
	}

	return m, nil
}

func (m *Model) newStep(name string, depth int) *StepNode {
	term := NewVterm()
	m.size(term)
	return &StepNode{Name: name, Depth: depth, Status: StatusPending, Term: term}
}

func (m *Model) size(term *Vterm) {
	term.SetWidth(m.Width - logIndentWidth)
	term.SetHeight(m.LogHeight)
}

// pending returns the first planned step called name that has not started.
func (m *Model) pending(name string) *StepNode {
	for _, s := range m.Steps {
		if s.Name == name && s.Status == StatusPending {
			return s
		}
	}
	return nil
}

// insertAfter places node below the last descendant of parent.
func (m *Model) insertAfter(parent, node *StepNode) {
	idx := len(m.Steps)
	for i, s := range m.Steps {
		if s != parent {
			continue
		}
		idx = i + 1
		for idx < len(m.Steps) && m.Steps[idx].Depth > parent.Depth {
			idx++
		}
		break
	}
	m.Steps = append(m.Steps, nil)
	copy(m.Steps[idx+1:], m.Steps[idx:])
	m.Steps[idx] = node
}
