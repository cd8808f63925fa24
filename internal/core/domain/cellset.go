package domain

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// CellSet is a sparse marking over a level's index space. It is the working
// currency of the tag pipeline: taggers produce one per level, the aggregator
// fuses and dilates them, and the mesh consumes them as refinement criteria.
type CellSet map[IntVect]struct{}

// NewCellSet returns a set holding the given cells.
func NewCellSet(cells ...IntVect) CellSet {
	s := make(CellSet, len(cells))
	for _, iv := range cells {
		s[iv] = struct{}{}
	}
	return s
}

// Add marks a cell.
func (s CellSet) Add(iv IntVect) {
	s[iv] = struct{}{}
}

// Remove clears a cell.
func (s CellSet) Remove(iv IntVect) {
	delete(s, iv)
}

// Has reports whether the cell is marked.
func (s CellSet) Has(iv IntVect) bool {
	_, ok := s[iv]
	return ok
}

// IsEmpty reports whether no cells are marked.
func (s CellSet) IsEmpty() bool {
	return len(s) == 0
}

// Len returns the number of marked cells.
func (s CellSet) Len() int {
	return len(s)
}

// Union merges o into s.
func (s CellSet) Union(o CellSet) {
	for iv := range o {
		s[iv] = struct{}{}
	}
}

// Clone returns a deep copy.
func (s CellSet) Clone() CellSet {
	c := make(CellSet, len(s))
	for iv := range s {
		c[iv] = struct{}{}
	}
	return c
}

// Intersect returns the cells of s that lie inside b.
func (s CellSet) Intersect(b Box) CellSet {
	r := make(CellSet)
	for iv := range s {
		if b.Contains(iv) {
			r[iv] = struct{}{}
		}
	}
	return r
}

// Grow dilates the set by radius cells along every axis, dropping cells that
// fall outside bound. This is the buffer growth that keeps stencils near a
// refinement boundary fully supported.
func (s CellSet) Grow(radius int, bound Box) CellSet {
	if radius <= 0 {
		return s.Intersect(bound)
	}
	r := make(CellSet, len(s))
	for iv := range s {
		lo, hi := iv, iv
		for i := 0; i < MaxDim; i++ {
			lo[i] -= radius
			hi[i] += radius
		}
		cell, ok := Box{Lo: lo, Hi: hi}.Intersect(bound)
		if !ok {
			continue
		}
		var p IntVect
		for p[2] = cell.Lo[2]; p[2] <= cell.Hi[2]; p[2]++ {
			for p[1] = cell.Lo[1]; p[1] <= cell.Hi[1]; p[1]++ {
				for p[0] = cell.Lo[0]; p[0] <= cell.Hi[0]; p[0]++ {
					r[p] = struct{}{}
				}
			}
		}
	}
	return r
}

// Cells returns the marked cells in lexicographic order.
func (s CellSet) Cells() []IntVect {
	cells := make([]IntVect, 0, len(s))
	for iv := range s {
		cells = append(cells, iv)
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}

// Fingerprint returns a stable hash of the set contents. Two sets with the
// same cells always hash identically, which gives the driver a cheap equality
// check across regrid decisions.
func (s CellSet) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, iv := range s.Cells() {
		for i := 0; i < MaxDim; i++ {
			binary.LittleEndian.PutUint64(buf[:], uint64(int64(iv[i])))
			_, _ = h.Write(buf[:])
		}
	}
	return h.Sum64()
}

// BoundingBox returns the smallest box covering the set.
func (s CellSet) BoundingBox() (Box, bool) {
	if len(s) == 0 {
		return Box{}, false
	}
	first := true
	var b Box
	for iv := range s {
		if first {
			b = Box{Lo: iv, Hi: iv}
			first = false
			continue
		}
		for i := 0; i < MaxDim; i++ {
			b.Lo[i] = min(b.Lo[i], iv[i])
			b.Hi[i] = max(b.Hi[i], iv[i])
		}
	}
	return b, true
}
