package sim

import (
	"context"

	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
)

// FrontTagger marks the steep region of the gaussian front for refinement.
// It tracks per-level fingerprints of its own output so it can report
// honestly whether anything changed since the last invocation.
type FrontTagger struct {
	front front
	buf   int
	mesh  ports.MeshHierarchy

	time func() float64

	prev map[int]uint64
}

// NewFrontTagger builds the tagger. time supplies the current simulation
// time, usually the stepper's clock.
func NewFrontTagger(cfg domain.Config, mesh ports.MeshHierarchy, time func() float64) *FrontTagger {
	return &FrontTagger{
		front: newFront(cfg.Sim, cfg.Mesh.Origin(), cfg.Mesh.Dim),
		buf:   cfg.Sim.Buffer,
		mesh:  mesh,
		time:  time,
		prev:  make(map[int]uint64),
	}
}

func (t *FrontTagger) TagCells(_ context.Context, tags *domain.TagMap) (bool, error) {
	now := t.time()
	tags.Clear()

	changed := false
	for lvl := 0; lvl <= tags.FinestLevel(); lvl++ {
		dx := t.mesh.Dx(lvl)
		layout := tags.Layout(lvl)
		marked := make(domain.CellSet)
		for _, i := range layout.OwnedIndices(tags.Rank()) {
			b := layout.Boxes[i]
			iv := b.Lo
			for {
				if t.front.steep(iv, dx, now) {
					marked.Add(iv)
				}
				d := 0
				for d < t.front.dim {
					iv[d]++
					if iv[d] <= b.Hi[d] {
						break
					}
					iv[d] = b.Lo[d]
					d++
				}
				if d == t.front.dim {
					break
				}
			}
		}
		tags.AddCells(lvl, marked)

		fp := marked.Fingerprint()
		if t.prev[lvl] != fp {
			changed = true
			t.prev[lvl] = fp
		}
	}
	return changed, nil
}

func (t *FrontTagger) Buffer() int {
	return t.buf
}

// Regrid drops the fingerprints; on a fresh layout everything counts as
// changed.
func (t *FrontTagger) Regrid(_ context.Context) error {
	t.prev = make(map[int]uint64)
	return nil
}

func (t *FrontTagger) NumPlotVars() int {
	return 0
}

var _ ports.CellTagger = (*FrontTagger)(nil)
