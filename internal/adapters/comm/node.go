package comm

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/voltlab/strata/internal/adapters/logger"
	"github.com/voltlab/strata/internal/core/ports"
)

const NodeID graft.ID = "adapter.comm"

func init() {
	graft.Register(graft.Node[ports.Comm]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Comm, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocal(log), nil
		},
	})
}
