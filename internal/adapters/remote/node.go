package remote

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rollout/internal/adapters/logger"
	"go.trai.ch/rollout/internal/core/ports"
)

// NodeID is the unique identifier for the remote dialer Graft node.
const NodeID graft.ID = "adapter.remote"

func init() {
	graft.Register(graft.Node[ports.RemoteDialer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RemoteDialer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDialer(log), nil
		},
	})
}
