package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/voltlab/strata/internal/core/ports"
)

// TracerNodeID is the unique identifier for the tracer adapter Graft node.
const TracerNodeID graft.ID = "adapter.tracer"

// MetricsNodeID is the unique identifier for the metrics adapter Graft node.
const MetricsNodeID graft.ID = "adapter.metrics"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewOTelTracer("strata"), nil
		},
	})

	graft.Register(graft.Node[ports.Metrics]{
		ID:        MetricsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Metrics, error) {
			return NewPromMetrics(), nil
		},
	})
}
