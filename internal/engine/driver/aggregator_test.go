package driver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/engine/driver"
	"go.uber.org/mock/gomock"
)

func TestAggregator_NilStorage(t *testing.T) {
	t.Parallel()
	m := newDriverMocks(t)

	agg := driver.NewAggregator(m.tagger, m.mesh, m.comm, m.log, nil, nil, domain.Config{})
	_, _, err := agg.ComputeTags(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrSanityCheck)
}

func TestAggregator_UnchangedStillReduces(t *testing.T) {
	t.Parallel()
	m := newDriverMocks(t)
	live := domain.NewTagMap(singleBoxGrids(16), 0)

	m.tagger.EXPECT().TagCells(gomock.Any(), live).Return(false, nil)

	// The no-change verdict is still settled collectively; skipping the
	// reduction on a quiet rank would deadlock the others.
	m.comm.EXPECT().AllReduceMaxInt(gomock.Any(), 0).Return(0, nil).Times(1)

	agg := driver.NewAggregator(m.tagger, m.mesh, m.comm, m.log, nil, nil, domain.Config{})
	changed, tags, err := agg.ComputeTags(context.Background(), live)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Nil(t, tags)
}

func TestAggregator_DilatesAndFusesGeoTags(t *testing.T) {
	t.Parallel()
	m := newDriverMocks(t)
	live := domain.NewTagMap(singleBoxGrids(16), 0)

	m.tagger.EXPECT().TagCells(gomock.Any(), live).DoAndReturn(
		func(_ context.Context, tags *domain.TagMap) (bool, error) {
			tags.AddCells(0, domain.NewCellSet(domain.IntVect{8, 8, 0}))
			return true, nil
		},
	)
	m.tagger.EXPECT().Buffer().Return(1)

	m.mesh.EXPECT().FinestLevel().Return(0)
	m.mesh.EXPECT().Domains().Return(levelDomains(16, 32, 64))
	m.mesh.EXPECT().MaxDepth().Return(2)

	m.comm.EXPECT().AllReduceMaxInt(gomock.Any(), 1).Return(1, nil)
	m.comm.EXPECT().AllReduceMaxInt(gomock.Any(), 0).Return(0, nil)

	geo := domain.NewGeoTags(2)
	geo[0].Add(domain.IntVect{0, 0, 0})

	cfg := domain.Config{}
	cfg.Driver.GrowTags = 1
	cfg.Mesh.Dim = 2

	agg := driver.NewAggregator(m.tagger, m.mesh, m.comm, m.log, geo, nil, cfg)
	changed, tags, err := agg.ComputeTags(context.Background(), live)
	require.NoError(t, err)
	require.True(t, changed)
	require.Len(t, tags, 1)

	// Buffer 1 plus grow_tags 1 dilates the single tag into a 5x5 block,
	// and the geometric tag at the origin rides along.
	assert.Equal(t, 26, tags[0].Len())
	assert.True(t, tags[0].Has(domain.IntVect{6, 6, 0}))
	assert.True(t, tags[0].Has(domain.IntVect{10, 10, 0}))
	assert.True(t, tags[0].Has(domain.IntVect{0, 0, 0}))
	assert.False(t, tags[0].Has(domain.IntVect{11, 8, 0}))
}

func TestAggregator_CoarseningStarvesGeoTagsAboveFinestTagged(t *testing.T) {
	t.Parallel()
	m := newDriverMocks(t)
	live := domain.NewTagMap(singleBoxGrids(16, 32), 0)

	m.tagger.EXPECT().TagCells(gomock.Any(), live).DoAndReturn(
		func(_ context.Context, tags *domain.TagMap) (bool, error) {
			tags.AddCells(0, domain.NewCellSet(domain.IntVect{4, 4, 0}))
			return true, nil
		},
	)
	m.tagger.EXPECT().Buffer().Return(0)

	m.mesh.EXPECT().FinestLevel().Return(1)
	m.mesh.EXPECT().Domains().Return(levelDomains(16, 32, 64))
	m.mesh.EXPECT().MaxDepth().Return(2).AnyTimes()

	m.comm.EXPECT().AllReduceMaxInt(gomock.Any(), 1).Return(1, nil)
	m.comm.EXPECT().AllReduceMaxInt(gomock.Any(), 0).Return(0, nil)

	geo := domain.NewGeoTags(2)
	geo[0].Add(domain.IntVect{1, 1, 0})
	geo[1].Add(domain.IntVect{2, 2, 0})

	cfg := domain.Config{}
	cfg.Driver.AllowCoarsening = true
	cfg.Mesh.Dim = 2

	agg := driver.NewAggregator(m.tagger, m.mesh, m.comm, m.log, geo, nil, cfg)
	changed, tags, err := agg.ComputeTags(context.Background(), live)
	require.NoError(t, err)
	require.True(t, changed)
	require.Len(t, tags, 2)

	// With coarsening allowed, geometric tags only persist up to the finest
	// dynamically tagged level; level 1 may shrink away.
	assert.True(t, tags[0].Has(domain.IntVect{1, 1, 0}))
	assert.True(t, tags[1].IsEmpty())
}

func TestAggregator_OverridesCapRefinement(t *testing.T) {
	t.Parallel()
	m := newDriverMocks(t)
	live := domain.NewTagMap(singleBoxGrids(16, 32), 0)

	m.tagger.EXPECT().TagCells(gomock.Any(), live).DoAndReturn(
		func(_ context.Context, tags *domain.TagMap) (bool, error) {
			tags.AddCells(0, domain.NewCellSet(domain.IntVect{4, 4, 0}))
			tags.AddCells(1, domain.NewCellSet(domain.IntVect{8, 8, 0}))
			return true, nil
		},
	)
	m.tagger.EXPECT().Buffer().Return(0)

	m.mesh.EXPECT().FinestLevel().Return(1)
	m.mesh.EXPECT().Domains().Return(levelDomains(16, 32, 64))
	m.mesh.EXPECT().MaxDepth().Return(2).AnyTimes()
	m.mesh.EXPECT().Dx(0).Return(1.0 / 16).AnyTimes()
	m.mesh.EXPECT().Dx(1).Return(1.0 / 32).AnyTimes()

	m.comm.EXPECT().AllReduceMaxInt(gomock.Any(), 1).Return(1, nil).Times(2)

	overrides := []domain.CoarsenOverride{{
		Box: domain.RealBox{
			Lo: domain.RealVect{0, 0, 0},
			Hi: domain.RealVect{1, 1, 0},
		},
		MaxLevel: 0,
	}}

	cfg := domain.Config{}
	cfg.Mesh.Dim = 2

	agg := driver.NewAggregator(m.tagger, m.mesh, m.comm, m.log, domain.NewGeoTags(2), overrides, cfg)
	changed, tags, err := agg.ComputeTags(context.Background(), live)
	require.NoError(t, err)
	require.True(t, changed)

	assert.True(t, tags[0].Has(domain.IntVect{4, 4, 0}))
	assert.True(t, tags[1].IsEmpty(), "the whole-domain override caps refinement at level 0")
}
