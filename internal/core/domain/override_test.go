package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voltlab/strata/internal/core/domain"
)

func overrideTags() []domain.CellSet {
	// Two levels over a unit square, dx 0.125 on level 0 and 0.0625 on
	// level 1. Each level carries one tag in the left half and one in the
	// right half.
	return []domain.CellSet{
		domain.NewCellSet(domain.IntVect{1, 1, 0}, domain.IntVect{6, 1, 0}),
		domain.NewCellSet(domain.IntVect{2, 2, 0}, domain.IntVect{13, 2, 0}),
	}
}

var overrideDxs = []float64{0.125, 0.0625}

func TestCoarsenOverride_CapsAboveLevel(t *testing.T) {
	t.Parallel()

	tags := overrideTags()
	left := domain.CoarsenOverride{
		Box: domain.RealBox{
			Lo: domain.RealVect{0, 0, 0},
			Hi: domain.RealVect{0.5, 1, 0},
		},
		MaxLevel: 0,
	}
	left.Apply(tags, overrideDxs, domain.RealVect{}, 2)

	// Level 0 is at the cap and keeps everything.
	assert.Equal(t, 2, tags[0].Len())

	// Level 1 loses the tag inside the box and keeps the one outside.
	assert.False(t, tags[1].Has(domain.IntVect{2, 2, 0}))
	assert.True(t, tags[1].Has(domain.IntVect{13, 2, 0}))
}

func TestApplyOverrides_OverlapComposesTightestCap(t *testing.T) {
	t.Parallel()

	tags := overrideTags()
	overrides := []domain.CoarsenOverride{
		{
			Box: domain.RealBox{
				Lo: domain.RealVect{0, 0, 0},
				Hi: domain.RealVect{1, 1, 0},
			},
			MaxLevel: 1,
		},
		{
			Box: domain.RealBox{
				Lo: domain.RealVect{0, 0, 0},
				Hi: domain.RealVect{0.5, 1, 0},
			},
			MaxLevel: 0,
		},
	}
	domain.ApplyOverrides(overrides, tags, overrideDxs, domain.RealVect{}, 2)

	// The whole-domain cap at level 1 removes nothing here, but inside the
	// overlap the tighter level-0 cap wins and strips level 1.
	assert.Equal(t, 2, tags[0].Len())
	assert.False(t, tags[1].Has(domain.IntVect{2, 2, 0}))
	assert.True(t, tags[1].Has(domain.IntVect{13, 2, 0}))
}

func TestOverrideSpec_Conversion(t *testing.T) {
	t.Parallel()

	spec := domain.OverrideSpec{
		Lo:    []float64{0.1, 0.2},
		Hi:    []float64{0.3, 0.4},
		Level: 2,
	}
	o := spec.Override()
	assert.Equal(t, 2, o.MaxLevel)
	assert.InDelta(t, 0.1, o.Box.Lo[0], 1e-15)
	assert.InDelta(t, 0.4, o.Box.Hi[1], 1e-15)
	assert.Zero(t, o.Box.Lo[2])
}
