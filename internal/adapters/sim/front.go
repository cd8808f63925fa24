// Package sim bundles a small demonstration physics package: an analytic
// gaussian front advecting along the x axis, a gradient tagger tracking its
// steep region and an electrode geometry source. It exists so the driver can
// be exercised end to end without a solver framework; production deployments
// plug their own collaborators into the same ports.
package sim

import (
	"math"

	"github.com/voltlab/strata/internal/core/domain"
)

// front is the analytic solution: a gaussian pulse of the given width whose
// center starts at start[0] and moves along x with the given speed.
type front struct {
	speed  float64
	width  float64
	start  domain.RealVect
	probLo domain.RealVect
	dim    int
}

func newFront(cfg domain.SimConfig, probLo domain.RealVect, dim int) front {
	var start domain.RealVect
	for i := 0; i < dim && i < len(cfg.FrontStart); i++ {
		start[i] = cfg.FrontStart[i]
	}
	return front{
		speed:  cfg.FrontSpeed,
		width:  cfg.FrontWidth,
		start:  start,
		probLo: probLo,
		dim:    dim,
	}
}

// eval samples the field at a cell center.
func (f front) eval(iv domain.IntVect, dx, time float64) float64 {
	x := domain.CellCenter(iv, dx, f.probLo)[0]
	center := f.start[0] + f.speed*time
	d := x - center
	return math.Exp(-d * d / (2 * f.width * f.width))
}

// steep reports whether the field has a significant gradient at the cell,
// which is where resolution is worth spending.
func (f front) steep(iv domain.IntVect, dx, time float64) bool {
	v := f.eval(iv, dx, time)
	return v > 0.05 && v < 0.95
}

// sample fills one patch with field values, x fastest.
func sample(f front, b domain.Box, dx, time float64, dim int) []float64 {
	vals := make([]float64, 0, b.NumCells())
	iv := b.Lo
	for {
		vals = append(vals, f.eval(iv, dx, time))
		d := 0
		for d < dim {
			iv[d]++
			if iv[d] <= b.Hi[d] {
				break
			}
			iv[d] = b.Lo[d]
			d++
		}
		if d == dim {
			return vals
		}
	}
}
