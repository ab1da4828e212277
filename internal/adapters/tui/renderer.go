package tui

import (
	"io"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/rollout/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer drives the Model with a Bubble Tea program.
// The program starts on the first step event so prompts that run before any
// step keep the terminal to themselves.
type Renderer struct {
	model    *Model
	opts     []tea.ProgramOption
	fallback io.Writer

	mu      sync.Mutex
	program *tea.Program
	stopped bool
	done    chan struct{}
	err     error
}

// NewRenderer creates a TUI renderer. Log lines written before the program
// starts or after it stops go to fallback.
func NewRenderer(model *Model, fallback io.Writer, opts ...tea.ProgramOption) *Renderer {
	if fallback == nil {
		fallback = io.Discard
	}
	return &Renderer{
		model:    model,
		opts:     opts,
		fallback: fallback,
	}
}

// OnPlanEmit forwards the planned steps to the TUI.
func (r *Renderer) OnPlanEmit(steps []string) {
	r.send(MsgPlan{Steps: steps})
}

// OnStepStart forwards step start events to the TUI.
func (r *Renderer) OnStepStart(spanID, parentID, name string, startTime time.Time) {
	r.send(MsgStepStart{
		SpanID:    spanID,
		ParentID:  parentID,
		Name:      name,
		StartTime: startTime,
	})
}

// OnStepLog forwards step output to the TUI.
func (r *Renderer) OnStepLog(spanID string, data []byte) {
	// Callers may reuse data once this returns.
	buf := make([]byte, len(data))
	copy(buf, data)
	r.send(MsgStepLog{SpanID: spanID, Data: buf})
}

// OnStepComplete forwards step completion events to the TUI.
func (r *Renderer) OnStepComplete(spanID string, endTime time.Time, err error) {
	r.send(MsgStepComplete{SpanID: spanID, EndTime: endTime, Err: err})
}

// Stop quits the program after it has drained pending events and returns
// its exit error. It is safe to call more than once.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return nil
	}
	r.stopped = true
	program, done := r.program, r.done
	r.mu.Unlock()

	if program == nil {
		return nil
	}
	program.Quit()
	<-done
	return r.err
}

// LogWriter returns a writer that prints whole log records above the step list.
func (r *Renderer) LogWriter() io.Writer {
	return logWriter{r: r}
}

// Started reports whether the program has been launched.
func (r *Renderer) Started() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.program != nil
}

func (r *Renderer) send(msg tea.Msg) {
	if program := r.start(); program != nil {
		program.Send(msg)
	}
}

// start launches the program once and returns it, or nil after Stop.
func (r *Renderer) start() *tea.Program {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return nil
	}
	if r.program == nil {
		r.program = tea.NewProgram(r.model, r.opts...)
		r.done = make(chan struct{})
		go func(p *tea.Program, done chan struct{}) {
			defer close(done)
			_, r.err = p.Run()
		}(r.program, r.done)
	}
	return r.program
}

type logWriter struct {
	r *Renderer
}

func (w logWriter) Write(p []byte) (int, error) {
	r := w.r
	r.mu.Lock()
	program, done := r.program, r.done
	if r.stopped {
		program = nil
	}
	r.mu.Unlock()

	if program == nil {
		return r.fallback.Write(p)
	}

	// Println blocks until the event loop takes the line, which never
	// happens once the program has exited.
	sent := make(chan struct{})
	go func() {
		defer close(sent)
		program.Println(strings.TrimSuffix(string(p), "\n"))
	}()
	select {
	case <-sent:
		return len(p), nil
	case <-done:
		return r.fallback.Write(p)
	}
}
