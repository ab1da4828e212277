package version

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rollout/internal/core/ports"
)

// NodeID is the unique identifier for the version manifest Graft node.
const NodeID graft.ID = "adapter.version_manifest"

func init() {
	graft.Register(graft.Node[ports.VersionManifest]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VersionManifest, error) {
			return NewManifest(), nil
		},
	})
}
