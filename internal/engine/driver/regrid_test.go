package driver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/engine/driver"
	"go.uber.org/mock/gomock"
)

// pipelineFixture wires a coordinator whose aggregator reports one changed
// tag on level 0 of a single-level hierarchy.
func pipelineFixture(t *testing.T, m *driverMocks) (*driver.Coordinator, *driver.Internals) {
	t.Helper()

	in := driver.NewInternals(0)
	in.Allocate(singleBoxGrids(16))

	m.tagger.EXPECT().TagCells(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tags *domain.TagMap) (bool, error) {
			tags.AddCells(0, domain.NewCellSet(domain.IntVect{8, 8, 0}))
			return true, nil
		},
	)
	m.tagger.EXPECT().Buffer().Return(0)

	m.mesh.EXPECT().FinestLevel().Return(0).AnyTimes()
	m.mesh.EXPECT().Domains().Return(levelDomains(16, 32)).AnyTimes()
	m.mesh.EXPECT().MaxDepth().Return(1).AnyTimes()

	m.comm.EXPECT().AllReduceMaxInt(gomock.Any(), 1).Return(1, nil)
	m.comm.EXPECT().AllReduceMaxInt(gomock.Any(), 0).Return(0, nil)

	cfg := domain.Config{}
	cfg.Mesh.Dim = 2
	agg := driver.NewAggregator(m.tagger, m.mesh, m.comm, m.log, domain.NewGeoTags(1), nil, cfg)

	coord := driver.NewCoordinator(agg, in, m.stepper, m.tagger, m.mesh, m.comm, m.log, m.tracer, m.metrics)
	return coord, in
}

func TestCoordinator_StageOrder(t *testing.T) {
	t.Parallel()
	m := newDriverMocks(t)
	coord, in := pipelineFixture(t, m)

	m.stepper.EXPECT().RedistributionRegionSize().Return(2)
	m.mesh.EXPECT().Grids().Return(singleBoxGrids(16))
	m.comm.EXPECT().AllGatherCells(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cells []domain.IntVect) ([]domain.IntVect, error) {
			return cells, nil
		})

	// Solver state must be cached and freed before the mesh rebuild so two
	// full hierarchies never coexist, and the stepper only reattaches after
	// the new layouts exist.
	gomock.InOrder(
		m.stepper.EXPECT().Cache(gomock.Any()).Return(nil),
		m.stepper.EXPECT().Deallocate(),
		m.mesh.EXPECT().Regrid(gomock.Any(), gomock.Any(), 1, 0, 2, 1).
			DoAndReturn(func(_ context.Context, tags []domain.CellSet, _, _, _, _ int) error {
				require.Len(t, tags, 1)
				assert.True(t, tags[0].Has(domain.IntVect{8, 8, 0}))
				return nil
			}),
		m.stepper.EXPECT().Regrid(gomock.Any(), 1, 0, 0).Return(nil),
		m.tagger.EXPECT().Regrid(gomock.Any()).Return(nil),
	)

	require.NoError(t, coord.Regrid(context.Background(), 1, 0, false))
	assert.False(t, in.HasCache(), "snapshot must be consumed by the restore")
}

func TestCoordinator_UnchangedIsNoOp(t *testing.T) {
	t.Parallel()
	m := newDriverMocks(t)

	in := driver.NewInternals(0)
	in.Allocate(singleBoxGrids(16))

	m.tagger.EXPECT().TagCells(gomock.Any(), gomock.Any()).Return(false, nil)
	m.comm.EXPECT().AllReduceMaxInt(gomock.Any(), 0).Return(0, nil)

	// The initial-data reseed is the only collaborator call allowed on the
	// no-op path.
	m.stepper.EXPECT().SeedInitialData(gomock.Any()).Return(nil)

	agg := driver.NewAggregator(m.tagger, m.mesh, m.comm, m.log, nil, nil, domain.Config{})
	coord := driver.NewCoordinator(agg, in, m.stepper, m.tagger, m.mesh, m.comm, m.log, m.tracer, m.metrics)

	require.NoError(t, coord.Regrid(context.Background(), 1, 0, true))
}

func TestCoordinator_MeshFailurePropagates(t *testing.T) {
	t.Parallel()
	m := newDriverMocks(t)
	coord, _ := pipelineFixture(t, m)

	m.stepper.EXPECT().Cache(gomock.Any()).Return(nil)
	m.stepper.EXPECT().Deallocate()
	m.stepper.EXPECT().RedistributionRegionSize().Return(0)

	boom := errors.New("partitioner exploded")
	m.mesh.EXPECT().Regrid(gomock.Any(), gomock.Any(), 1, 0, 0, 1).Return(boom)

	err := coord.Regrid(context.Background(), 1, 0, false)
	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "mesh regrid failed")
}
