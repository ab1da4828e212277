package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rollout/internal/core/ports"
)

// NodeID is the unique identifier for the repository opener Graft node.
const NodeID graft.ID = "adapter.git"

func init() {
	graft.Register(graft.Node[ports.RepositoryOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RepositoryOpener, error) {
			return NewOpener(), nil
		},
	})
}
