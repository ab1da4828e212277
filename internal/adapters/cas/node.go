package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rollout/internal/core/ports"
)

// NodeID is the unique identifier for the package store Graft node.
const NodeID graft.ID = "adapter.package_store"

func init() {
	graft.Register(graft.Node[ports.PackageStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageStore, error) {
			return NewStore(), nil
		},
	})
}
