package sim

import (
	"context"

	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
)

// Electrode is a geometry source for one axis-aligned box electrode: its
// irregular cells are the cells whose centers straddle the electrode
// surface. A nil electrode yields no irregular cells anywhere, which turns
// geometric tagging off.
type Electrode struct {
	box    *domain.RealBox
	mesh   ports.MeshHierarchy
	probLo domain.RealVect
	dim    int
}

// NewElectrode builds the geometry source from the sim config.
func NewElectrode(cfg domain.Config, mesh ports.MeshHierarchy) *Electrode {
	return &Electrode{
		box:    cfg.Sim.Electrode,
		mesh:   mesh,
		probLo: cfg.Mesh.Origin(),
		dim:    cfg.Mesh.Dim,
	}
}

// IrregularCells walks the index neighborhood of the electrode surface and
// keeps cells that touch it: inside the grown box but not inside the
// shrunk one.
func (e *Electrode) IrregularCells(_ context.Context, level int) (domain.CellSet, error) {
	cells := make(domain.CellSet)
	if e.box == nil {
		return cells, nil
	}

	dx := e.mesh.Dx(level)
	levelDomain := e.mesh.Domains()[level]

	// Index bounds of the electrode, padded one cell so surface cells just
	// outside the box are visited too.
	var lo, hi domain.IntVect
	for d := 0; d < e.dim; d++ {
		lo[d] = int((e.box.Lo[d]-e.probLo[d])/dx) - 1
		hi[d] = int((e.box.Hi[d]-e.probLo[d])/dx) + 1
	}
	region, ok := domain.NewBox(lo, hi).Intersect(levelDomain)
	if !ok {
		return cells, nil
	}

	iv := region.Lo
	for {
		c := domain.CellCenter(iv, dx, e.probLo)
		if e.onSurface(c, dx) {
			cells.Add(iv)
		}
		d := 0
		for d < e.dim {
			iv[d]++
			if iv[d] <= region.Hi[d] {
				break
			}
			iv[d] = region.Lo[d]
			d++
		}
		if d == e.dim {
			return cells, nil
		}
	}
}

// onSurface reports whether a point lies within half a cell of the electrode
// boundary.
func (e *Electrode) onSurface(p domain.RealVect, dx float64) bool {
	half := dx / 2
	inside := true
	near := false
	for d := 0; d < e.dim; d++ {
		if p[d] < e.box.Lo[d]-half || p[d] > e.box.Hi[d]+half {
			inside = false
			break
		}
		if p[d] < e.box.Lo[d]+half || p[d] > e.box.Hi[d]-half {
			near = true
		}
	}
	return inside && near
}

var _ ports.GeometrySource = (*Electrode)(nil)
