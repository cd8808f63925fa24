package domain

// Box is an axis-aligned region of a level's index space. Both corners are
// inclusive. A box with Hi < Lo on any axis is empty.
type Box struct {
	Lo IntVect `json:"lo"`
	Hi IntVect `json:"hi"`
}

// NewBox returns the box spanning [lo, hi].
func NewBox(lo, hi IntVect) Box {
	return Box{Lo: lo, Hi: hi}
}

// IsEmpty reports whether the box contains no cells.
func (b Box) IsEmpty() bool {
	for i := 0; i < MaxDim; i++ {
		if b.Hi[i] < b.Lo[i] {
			return true
		}
	}
	return false
}

// Contains reports whether the cell iv lies inside the box.
func (b Box) Contains(iv IntVect) bool {
	for i := 0; i < MaxDim; i++ {
		if iv[i] < b.Lo[i] || iv[i] > b.Hi[i] {
			return false
		}
	}
	return true
}

// Size returns the extent of the box along the given axis.
func (b Box) Size(axis int) int {
	return b.Hi[axis] - b.Lo[axis] + 1
}

// NumCells returns the total cell count of the box.
func (b Box) NumCells() int64 {
	if b.IsEmpty() {
		return 0
	}
	n := int64(1)
	for i := 0; i < MaxDim; i++ {
		n *= int64(b.Size(i))
	}
	return n
}

// Intersect returns the overlap of two boxes and whether it is non-empty.
func (b Box) Intersect(o Box) (Box, bool) {
	var r Box
	for i := 0; i < MaxDim; i++ {
		r.Lo[i] = max(b.Lo[i], o.Lo[i])
		r.Hi[i] = min(b.Hi[i], o.Hi[i])
	}
	if r.IsEmpty() {
		return Box{}, false
	}
	return r, true
}

// Grow expands the box by n cells in every direction.
func (b Box) Grow(n int) Box {
	for i := 0; i < MaxDim; i++ {
		b.Lo[i] -= n
		b.Hi[i] += n
	}
	return b
}

// Refine maps the box one level down: each cell becomes ratio^dim fine cells.
func (b Box) Refine(ratio int) Box {
	var r Box
	for i := 0; i < MaxDim; i++ {
		r.Lo[i] = b.Lo[i] * ratio
		r.Hi[i] = (b.Hi[i]+1)*ratio - 1
	}
	return r
}

// Coarsen maps the box one level up, rounding outward.
func (b Box) Coarsen(ratio int) Box {
	var r Box
	for i := 0; i < MaxDim; i++ {
		r.Lo[i] = floorDiv(b.Lo[i], ratio)
		r.Hi[i] = floorDiv(b.Hi[i], ratio)
	}
	return r
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// RealBox is an axis-aligned region in physical coordinates. Coarsen
// overrides are specified this way so that one override applies across all
// levels regardless of their index spacing.
type RealBox struct {
	Lo RealVect `json:"lo" yaml:"lo"`
	Hi RealVect `json:"hi" yaml:"hi"`
}

// ContainsPoint reports whether p lies inside the box, comparing only the
// first dim axes.
func (rb RealBox) ContainsPoint(p RealVect, dim int) bool {
	for i := 0; i < dim; i++ {
		if p[i] < rb.Lo[i] || p[i] > rb.Hi[i] {
			return false
		}
	}
	return true
}

// CellCenter returns the physical center of cell iv on a level with grid
// spacing dx and domain origin probLo.
func CellCenter(iv IntVect, dx float64, probLo RealVect) RealVect {
	var p RealVect
	for i := 0; i < MaxDim; i++ {
		p[i] = probLo[i] + (float64(iv[i])+0.5)*dx
	}
	return p
}
