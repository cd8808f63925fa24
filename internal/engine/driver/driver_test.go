package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports/mocks"
	"github.com/voltlab/strata/internal/engine/driver"
	"go.uber.org/mock/gomock"
)

func setupConfig(t *testing.T) domain.Config {
	t.Helper()
	cfg := domain.Config{}
	cfg.Mesh.Dim = 2
	cfg.Geometry.RefineDepth = -1
	cfg.Geometry.Growth = 1
	cfg.Driver.OutputDirectory = t.TempDir()
	cfg.Driver.OutputNames = "sim"
	cfg.Driver.MaxPlotDepth = -1
	cfg.Driver.MaxChkDepth = -1
	return cfg
}

func (m *driverMocks) deps() driver.Deps {
	return driver.Deps{
		Log:         m.log,
		Tracer:      m.tracer,
		Metrics:     m.metrics,
		Comm:        m.comm,
		Mesh:        m.mesh,
		Stepper:     m.stepper,
		Tagger:      m.tagger,
		Geometry:    m.geometry,
		Checkpoints: m.checkpoints,
	}
}

func TestDriver_SanityCheckMissingCollaborator(t *testing.T) {
	t.Parallel()
	m := newDriverMocks(t)

	deps := m.deps()
	deps.Stepper = nil
	m.comm.EXPECT().Abort(gomock.Any())

	d := driver.New(setupConfig(t), deps)
	err := d.Setup(context.Background())
	require.ErrorIs(t, err, domain.ErrSanityCheck)
}

func TestDriver_GeometryOnlySetup(t *testing.T) {
	t.Parallel()
	m := newDriverMocks(t)

	cfg := setupConfig(t)
	cfg.Driver.GeometryOnly = true

	deps := m.deps()
	deps.Stepper = nil
	deps.Tagger = nil

	m.mesh.EXPECT().SanityCheck().Return(nil)
	m.mesh.EXPECT().MaxDepth().Return(2).AnyTimes()
	m.mesh.EXPECT().Domains().Return(levelDomains(16, 32, 64)).AnyTimes()

	m.geometry.EXPECT().IrregularCells(gomock.Any(), 0).
		Return(domain.NewCellSet(domain.IntVect{5, 5, 0}), nil)
	m.geometry.EXPECT().IrregularCells(gomock.Any(), 1).
		Return(domain.NewCellSet(), nil)

	m.mesh.EXPECT().Regrid(gomock.Any(), gomock.Any(), 0, 2, 0, 2).DoAndReturn(
		func(_ context.Context, tags []domain.CellSet, _, _, _, _ int) error {
			require.Len(t, tags, 3)
			// The interface cell grown by one in every direction.
			assert.Equal(t, 9, tags[0].Len())
			assert.True(t, tags[0].Has(domain.IntVect{4, 4, 0}))
			assert.True(t, tags[1].IsEmpty())
			return nil
		},
	)
	m.mesh.EXPECT().Grids().Return(singleBoxGrids(16)).AnyTimes()

	d := driver.New(cfg, deps)
	require.NoError(t, d.Setup(context.Background()))
	require.NotNil(t, d.Internals().Tags())

	// The grown geometric tags were dumped for inspection.
	_, statErr := os.Stat(filepath.Join(cfg.Driver.OutputDirectory, "geo", "sim.geotags.2d"))
	assert.NoError(t, statErr)

	// Geometry-only runs stop after setup.
	require.NoError(t, d.Run(context.Background()))
}

func TestDriver_FreshSetup(t *testing.T) {
	t.Parallel()
	m := newDriverMocks(t)

	cfg := setupConfig(t)
	cfg.Driver.StartTime = 0.5

	m.mesh.EXPECT().SanityCheck().Return(nil)
	m.mesh.EXPECT().MaxDepth().Return(1).AnyTimes()
	m.mesh.EXPECT().Domains().Return(levelDomains(16, 32)).AnyTimes()
	m.mesh.EXPECT().Grids().Return(singleBoxGrids(16)).AnyTimes()

	m.geometry.EXPECT().IrregularCells(gomock.Any(), 0).Return(domain.NewCellSet(), nil)

	m.stepper.EXPECT().RedistributionRegionSize().Return(2)
	m.mesh.EXPECT().Regrid(gomock.Any(), gomock.Any(), 0, 1, 2, 1).Return(nil)

	gomock.InOrder(
		m.stepper.EXPECT().SetupSolvers(gomock.Any()).Return(nil),
		m.stepper.EXPECT().SynchronizeTimes(0, 0.5, 0.0),
		m.stepper.EXPECT().SeedInitialData(gomock.Any()).Return(nil),
		m.tagger.EXPECT().Regrid(gomock.Any()).Return(nil),
	)

	d := driver.New(cfg, m.deps())
	require.NoError(t, d.Setup(context.Background()))
	assert.InDelta(t, 0.5, d.Clock().Time, 1e-15)
	assert.Equal(t, 0, d.Clock().Step)
}

func TestDriver_RestartSetup(t *testing.T) {
	t.Parallel()
	m := newDriverMocks(t)

	cfg := setupConfig(t)
	cfg.Driver.RestartStep = 40
	grids := singleBoxGrids(16)

	m.mesh.EXPECT().SanityCheck().Return(nil)
	m.mesh.EXPECT().MaxDepth().Return(1).AnyTimes()
	m.mesh.EXPECT().Domains().Return(levelDomains(16, 32)).AnyTimes()
	m.mesh.EXPECT().CoarsestDx().Return(0.125).AnyTimes()
	m.mesh.EXPECT().Grids().Return(grids).AnyTimes()

	m.geometry.EXPECT().IrregularCells(gomock.Any(), 0).Return(domain.NewCellSet(), nil)

	// Pre-render the stored tag mask from a donor tag map.
	donor := domain.NewTagMap(grids, 0)
	donor.AddCells(0, domain.NewCellSet(domain.IntVect{7, 7, 0}))

	chk := mocks.NewMockCheckpointStore(m.ctrl)
	chk.EXPECT().Header().Return(domain.CheckpointHeader{
		CoarsestDx:  0.125,
		Time:        1.5,
		Dt:          0.1,
		Step:        40,
		FinestLevel: 0,
		RunID:       "older-run",
	}, nil)
	chk.EXPECT().Boxes(0).Return(grids[0].Boxes, nil)
	chk.EXPECT().TagMask(0).Return(donor.Mask(0), nil)
	chk.EXPECT().Close().Return(nil).AnyTimes()

	wantPath := filepath.Join(cfg.Driver.OutputDirectory, "chk", "sim.check0000040.2d")
	m.checkpoints.EXPECT().Open(wantPath).Return(chk, nil)

	m.stepper.EXPECT().RedistributionRegionSize().Return(0)
	m.mesh.EXPECT().AdoptGrids(gomock.Any(), gomock.Any(), 0).Return(nil)
	m.stepper.EXPECT().SetupSolvers(gomock.Any()).Return(nil)
	m.stepper.EXPECT().ReadCheckpointLevel(gomock.Any(), chk, 0).Return(nil)
	m.stepper.EXPECT().PostCheckpointSetup(gomock.Any()).Return(nil)
	m.tagger.EXPECT().Regrid(gomock.Any()).Return(nil)

	d := driver.New(cfg, m.deps())
	require.NoError(t, d.Setup(context.Background()))

	clock := d.Clock()
	assert.Equal(t, 40, clock.Step)
	assert.Equal(t, 1.5, clock.Time)
	assert.Equal(t, 0.1, clock.Dt)

	assert.True(t, d.Internals().Tags().LocalCells(0).Has(domain.IntVect{7, 7, 0}))
}
