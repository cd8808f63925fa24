package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlab/strata/internal/core/domain"
)

// twoRankGrids builds a single level split into two boxes, one per rank.
func twoRankGrids() []domain.Layout {
	return []domain.Layout{{
		Boxes: []domain.Box{
			domain.NewBox(domain.IntVect{0, 0, 0}, domain.IntVect{3, 7, 0}),
			domain.NewBox(domain.IntVect{4, 0, 0}, domain.IntVect{7, 7, 0}),
		},
		Owners: []int{0, 1},
	}}
}

func TestTagMap_AddCellsRespectsOwnership(t *testing.T) {
	t.Parallel()

	tags := domain.NewTagMap(twoRankGrids(), 0)

	tags.AddCells(0, domain.NewCellSet(
		domain.IntVect{1, 1, 0}, // owned by rank 0
		domain.IntVect{5, 1, 0}, // owned by rank 1, must be dropped
	))

	local := tags.LocalCells(0)
	assert.Equal(t, 1, local.Len())
	assert.True(t, local.Has(domain.IntVect{1, 1, 0}))

	other := domain.NewTagMap(twoRankGrids(), 1)
	other.AddCells(0, domain.NewCellSet(domain.IntVect{5, 1, 0}))
	assert.True(t, other.LocalCells(0).Has(domain.IntVect{5, 1, 0}))
}

func TestTagMap_FinestTaggedLocal(t *testing.T) {
	t.Parallel()

	grids := []domain.Layout{
		{
			Boxes:  []domain.Box{domain.NewBox(domain.IntVect{0, 0, 0}, domain.IntVect{7, 7, 0})},
			Owners: []int{0},
		},
		{
			Boxes:  []domain.Box{domain.NewBox(domain.IntVect{0, 0, 0}, domain.IntVect{15, 15, 0})},
			Owners: []int{0},
		},
	}
	tags := domain.NewTagMap(grids, 0)
	assert.Equal(t, -1, tags.FinestTaggedLocal())
	assert.Equal(t, 1, tags.FinestLevel())

	tags.AddCells(0, domain.NewCellSet(domain.IntVect{1, 1, 0}))
	assert.Equal(t, 0, tags.FinestTaggedLocal())

	tags.AddCells(1, domain.NewCellSet(domain.IntVect{2, 2, 0}))
	assert.Equal(t, 1, tags.FinestTaggedLocal())

	tags.Clear()
	assert.Equal(t, -1, tags.FinestTaggedLocal())
}

func TestTagMap_SnapshotSurvivesMutation(t *testing.T) {
	t.Parallel()

	tags := domain.NewTagMap(twoRankGrids(), 0)
	tags.AddCells(0, domain.NewCellSet(domain.IntVect{2, 2, 0}))

	snap := tags.Snapshot()
	tags.Clear()
	tags.AddCells(0, domain.NewCellSet(domain.IntVect{3, 3, 0}))

	assert.True(t, snap.LocalCells(0).Has(domain.IntVect{2, 2, 0}))
	assert.False(t, snap.LocalCells(0).Has(domain.IntVect{3, 3, 0}))
}

func TestTagMap_MaskRoundTrip(t *testing.T) {
	t.Parallel()

	tags := domain.NewTagMap(twoRankGrids(), 0)
	marked := domain.NewCellSet(
		domain.IntVect{0, 0, 0},
		domain.IntVect{3, 7, 0},
		domain.IntVect{2, 4, 0},
	)
	tags.AddCells(0, marked)

	masks := tags.Mask(0)
	require.Len(t, masks, 1)
	assert.Equal(t, int64(32), int64(len(masks[0].Data)))

	restored := domain.NewTagMap(twoRankGrids(), 0)
	restored.SetFromMask(0, masks)
	assert.Equal(t, marked.Fingerprint(), restored.LocalCells(0).Fingerprint())
}

func TestTagMap_SetFromMaskForeignPartition(t *testing.T) {
	t.Parallel()

	// Masks written by a rank-1 process land on the right cells even when
	// the reading layout carries them on a different patch partition.
	writer := domain.NewTagMap(twoRankGrids(), 1)
	writer.AddCells(0, domain.NewCellSet(domain.IntVect{5, 5, 0}))
	masks := writer.Mask(0)

	single := []domain.Layout{{
		Boxes:  []domain.Box{domain.NewBox(domain.IntVect{0, 0, 0}, domain.IntVect{7, 7, 0})},
		Owners: []int{0},
	}}
	reader := domain.NewTagMap(single, 0)
	reader.SetFromMask(0, masks)

	local := reader.LocalCells(0)
	assert.Equal(t, 1, local.Len())
	assert.True(t, local.Has(domain.IntVect{5, 5, 0}))
}

func TestTagMap_Fingerprint(t *testing.T) {
	t.Parallel()

	a := domain.NewTagMap(twoRankGrids(), 0)
	b := domain.NewTagMap(twoRankGrids(), 0)
	assert.Equal(t, a.Fingerprint(0), b.Fingerprint(0))

	a.AddCells(0, domain.NewCellSet(domain.IntVect{1, 1, 0}))
	assert.NotEqual(t, a.Fingerprint(0), b.Fingerprint(0))
}
