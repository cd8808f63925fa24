package domain

// Layout is one level's box partition and process assignment. It is produced
// by the mesh hierarchy; this component only ever reads it. Owners[i] is the
// rank that holds the data of Boxes[i].
type Layout struct {
	Boxes  []Box `json:"boxes"`
	Owners []int `json:"owners"`
}

// OwnedIndices returns the indices of the boxes assigned to rank.
func (l Layout) OwnedIndices(rank int) []int {
	var idx []int
	for i, owner := range l.Owners {
		if owner == rank {
			idx = append(idx, i)
		}
	}
	return idx
}

// PatchOf returns the index of the box containing iv, or -1. Layouts are
// disjoint, so at most one box matches.
func (l Layout) PatchOf(iv IntVect) int {
	for i, b := range l.Boxes {
		if b.Contains(iv) {
			return i
		}
	}
	return -1
}

// NumCells returns the total cell count across all boxes.
func (l Layout) NumCells() int64 {
	var n int64
	for _, b := range l.Boxes {
		n += b.NumCells()
	}
	return n
}

// Clone returns a deep copy.
func (l Layout) Clone() Layout {
	c := Layout{
		Boxes:  make([]Box, len(l.Boxes)),
		Owners: make([]int, len(l.Owners)),
	}
	copy(c.Boxes, l.Boxes)
	copy(c.Owners, l.Owners)
	return c
}

// Equal reports whether two layouts have identical boxes and owners.
func (l Layout) Equal(o Layout) bool {
	if len(l.Boxes) != len(o.Boxes) || len(l.Owners) != len(o.Owners) {
		return false
	}
	for i := range l.Boxes {
		if l.Boxes[i] != o.Boxes[i] {
			return false
		}
	}
	for i := range l.Owners {
		if l.Owners[i] != o.Owners[i] {
			return false
		}
	}
	return true
}
