package store

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/voltlab/strata/internal/core/ports"
)

const NodeID graft.ID = "adapter.checkpoint_factory"

func init() {
	graft.Register(graft.Node[ports.CheckpointFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CheckpointFactory, error) {
			return &Factory{}, nil
		},
	})
}
