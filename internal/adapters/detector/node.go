package detector

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grindlemire/graft"
	"go.trai.ch/rollout/internal/adapters/linear"
	"go.trai.ch/rollout/internal/adapters/logger"
	"go.trai.ch/rollout/internal/adapters/tui"
	"go.trai.ch/rollout/internal/core/ports"
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Renderer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			mode := ResolveMode(DetectEnvironment(os.Stderr), os.Getenv(EnvOutput))
			return NewRenderer(mode, log), nil
		},
	})
}

// NewRenderer builds the renderer for mode. The TUI takes over the logger
// output so log records print above the step list.
func NewRenderer(mode OutputMode, log ports.Logger) ports.Renderer {
	if mode != ModeTUI {
		return linear.NewRenderer(nil, nil)
	}

	r := tui.NewRenderer(
		tui.NewModel(),
		os.Stderr,
		tea.WithInput(nil),
		tea.WithOutput(os.Stderr),
		tea.WithoutSignalHandler(),
	)
	if out, ok := log.(interface{ SetOutput(w io.Writer) }); ok {
		out.SetOutput(r.LogWriter())
	}
	return r
}
