package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlab/strata/internal/core/domain"
)

func TestBox_Basics(t *testing.T) {
	t.Parallel()

	b := domain.NewBox(domain.IntVect{0, 0, 0}, domain.IntVect{7, 3, 0})

	assert.False(t, b.IsEmpty())
	assert.Equal(t, 8, b.Size(0))
	assert.Equal(t, 4, b.Size(1))
	assert.Equal(t, int64(32), b.NumCells())

	assert.True(t, b.Contains(domain.IntVect{0, 0, 0}))
	assert.True(t, b.Contains(domain.IntVect{7, 3, 0}))
	assert.False(t, b.Contains(domain.IntVect{8, 0, 0}))
	assert.False(t, b.Contains(domain.IntVect{0, -1, 0}))
}

func TestBox_Empty(t *testing.T) {
	t.Parallel()

	empty := domain.NewBox(domain.IntVect{2, 0, 0}, domain.IntVect{1, 5, 0})
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, int64(0), empty.NumCells())
}

func TestBox_Intersect(t *testing.T) {
	t.Parallel()

	a := domain.NewBox(domain.IntVect{0, 0, 0}, domain.IntVect{7, 7, 0})
	b := domain.NewBox(domain.IntVect{4, 4, 0}, domain.IntVect{11, 11, 0})

	overlap, ok := a.Intersect(b)
	require.True(t, ok)
	assert.Equal(t, domain.NewBox(domain.IntVect{4, 4, 0}, domain.IntVect{7, 7, 0}), overlap)

	far := domain.NewBox(domain.IntVect{20, 20, 0}, domain.IntVect{25, 25, 0})
	_, ok = a.Intersect(far)
	assert.False(t, ok)
}

func TestBox_Grow(t *testing.T) {
	t.Parallel()

	b := domain.NewBox(domain.IntVect{2, 2, 2}, domain.IntVect{5, 5, 5})
	g := b.Grow(2)
	assert.Equal(t, domain.NewBox(domain.IntVect{0, 0, 0}, domain.IntVect{7, 7, 7}), g)
}

func TestBox_RefineCoarsenRoundTrip(t *testing.T) {
	t.Parallel()

	b := domain.NewBox(domain.IntVect{1, 2, 0}, domain.IntVect{3, 5, 0})

	fine := b.Refine(2)
	assert.Equal(t, domain.IntVect{2, 4, 0}, fine.Lo)
	assert.Equal(t, domain.IntVect{7, 11, 1}, fine.Hi)

	// Coarsening the refined box recovers the original interior extent.
	back := fine.Coarsen(2)
	assert.Equal(t, b.Lo, back.Lo)
	assert.Equal(t, domain.IntVect{3, 5, 0}, back.Hi)
}

func TestBox_CoarsenRoundsOutward(t *testing.T) {
	t.Parallel()

	b := domain.NewBox(domain.IntVect{-3, 1, 0}, domain.IntVect{5, 3, 0})
	c := b.Coarsen(2)
	assert.Equal(t, domain.IntVect{-2, 0, 0}, c.Lo)
	assert.Equal(t, domain.IntVect{2, 1, 0}, c.Hi)
}

func TestRealBox_ContainsPoint(t *testing.T) {
	t.Parallel()

	rb := domain.RealBox{
		Lo: domain.RealVect{0, 0, 0},
		Hi: domain.RealVect{1, 1, 0},
	}

	assert.True(t, rb.ContainsPoint(domain.RealVect{0.5, 0.5, 0}, 2))
	assert.False(t, rb.ContainsPoint(domain.RealVect{1.5, 0.5, 0}, 2))

	// The third axis is ignored in 2d.
	assert.True(t, rb.ContainsPoint(domain.RealVect{0.5, 0.5, 99}, 2))
	assert.False(t, rb.ContainsPoint(domain.RealVect{0.5, 0.5, 99}, 3))
}

func TestCellCenter(t *testing.T) {
	t.Parallel()

	p := domain.CellCenter(domain.IntVect{3, 0, 0}, 0.25, domain.RealVect{-1, 0, 0})
	assert.InDelta(t, -1+3.5*0.25, p[0], 1e-15)
	assert.InDelta(t, 0.125, p[1], 1e-15)
}
