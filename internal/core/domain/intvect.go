// Package domain contains the core data model for the adaptive mesh driver:
// index-space geometry, tag sets, level layouts and the persisted checkpoint
// schema. Nothing in this package talks to collaborators or does I/O.
package domain

// MaxDim is the number of index-space axes carried by IntVect. Two-dimensional
// runs keep the third component fixed at zero.
const MaxDim = 3

// IntVect is a point in the integer index space of a level.
type IntVect [MaxDim]int

// Shift returns the vector translated by d along the given axis.
func (iv IntVect) Shift(axis, d int) IntVect {
	iv[axis] += d
	return iv
}

// Less imposes a lexicographic order, used for deterministic iteration.
func (iv IntVect) Less(o IntVect) bool {
	for i := 0; i < MaxDim; i++ {
		if iv[i] != o[i] {
			return iv[i] < o[i]
		}
	}
	return false
}

// RealVect is a point in physical coordinates.
type RealVect [MaxDim]float64
