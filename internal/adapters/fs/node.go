package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rollout/internal/core/ports"
)

const (
	// WalkerNodeID is the Graft node for the tree walker.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// StagerNodeID is the Graft node for the stager.
	StagerNodeID graft.ID = "adapter.fs.stager"
	// HasherNodeID is the Graft node for the file hasher.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.TreeWalker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TreeWalker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Stager]{
		ID:        StagerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Stager, error) {
			return NewStager(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
