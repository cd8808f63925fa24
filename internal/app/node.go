package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/voltlab/strata/internal/adapters/comm"
	"github.com/voltlab/strata/internal/adapters/config"
	"github.com/voltlab/strata/internal/adapters/logger"
	"github.com/voltlab/strata/internal/adapters/store"
	"github.com/voltlab/strata/internal/adapters/telemetry"
	"github.com/voltlab/strata/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			telemetry.MetricsNodeID,
			comm.NodeID,
			store.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	metrics, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}
	c, err := graft.Dep[ports.Comm](ctx)
	if err != nil {
		return nil, err
	}
	checkpoints, err := graft.Dep[ports.CheckpointFactory](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, log, tracer, metrics, c, checkpoints), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
