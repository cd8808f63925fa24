package driver_test

import (
	"context"
	"testing"

	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
	"github.com/voltlab/strata/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// driverMocks bundles the full collaborator set so individual tests only
// spell out the expectations they actually care about.
type driverMocks struct {
	ctrl        *gomock.Controller
	stepper     *mocks.MockTimeStepper
	tagger      *mocks.MockCellTagger
	mesh        *mocks.MockMeshHierarchy
	comm        *mocks.MockComm
	geometry    *mocks.MockGeometrySource
	checkpoints *mocks.MockCheckpointFactory
	log         *mocks.MockLogger
	tracer      *mocks.MockTracer
	metrics     *mocks.MockMetrics
}

func newDriverMocks(t *testing.T) *driverMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &driverMocks{
		ctrl:        ctrl,
		stepper:     mocks.NewMockTimeStepper(ctrl),
		tagger:      mocks.NewMockCellTagger(ctrl),
		mesh:        mocks.NewMockMeshHierarchy(ctrl),
		comm:        mocks.NewMockComm(ctrl),
		geometry:    mocks.NewMockGeometrySource(ctrl),
		checkpoints: mocks.NewMockCheckpointFactory(ctrl),
		log:         mocks.NewMockLogger(ctrl),
		tracer:      mocks.NewMockTracer(ctrl),
		metrics:     mocks.NewMockMetrics(ctrl),
	}

	// Logging, tracing and metrics are noise in behavioral tests.
	m.log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	m.log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	m.log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	m.log.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()

	m.metrics.EXPECT().StepAdvanced(gomock.Any()).AnyTimes()
	m.metrics.EXPECT().RegridDone(gomock.Any()).AnyTimes()
	m.metrics.EXPECT().CheckpointWritten(gomock.Any()).AnyTimes()
	m.metrics.EXPECT().PlotWritten(gomock.Any()).AnyTimes()

	m.comm.EXPECT().Rank().Return(0).AnyTimes()
	m.comm.EXPECT().Size().Return(1).AnyTimes()
	m.comm.EXPECT().Barrier(gomock.Any()).Return(nil).AnyTimes()

	return m
}

// expectGatherEcho wires the single-rank gather: the local contribution is
// already the global one. Opt-in because some tests assert gathers explicitly.
func (m *driverMocks) expectGatherEcho() {
	m.comm.EXPECT().AllGatherCells(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cells []domain.IntVect) ([]domain.IntVect, error) {
			return cells, nil
		},
	).AnyTimes()
}

// singleBoxGrids builds levels of one box each, every box owned by rank 0
// and spanning [0, n-1] on the active axes.
func singleBoxGrids(sizes ...int) []domain.Layout {
	grids := make([]domain.Layout, len(sizes))
	for lvl, n := range sizes {
		grids[lvl] = domain.Layout{
			Boxes:  []domain.Box{domain.NewBox(domain.IntVect{}, domain.IntVect{n - 1, n - 1, 0})},
			Owners: []int{0},
		}
	}
	return grids
}

// levelDomains returns the domain box of each level in singleBoxGrids form.
func levelDomains(sizes ...int) []domain.Box {
	boxes := make([]domain.Box, len(sizes))
	for lvl, n := range sizes {
		boxes[lvl] = domain.NewBox(domain.IntVect{}, domain.IntVect{n - 1, n - 1, 0})
	}
	return boxes
}
