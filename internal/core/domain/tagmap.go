package domain

// TagMap holds the driver's live tag bitmaps: one CellSet per locally owned
// patch, per level. The partition follows the current mesh layouts, so a
// TagMap is only valid until the next regrid changes ownership.
type TagMap struct {
	rank   int
	levels []levelTags
}

type levelTags struct {
	layout  Layout
	patches map[int]CellSet // patch index -> local tags, owned patches only
}

// NewTagMap allocates empty tag storage for the given per-level layouts, with
// one empty set per patch owned by rank.
func NewTagMap(grids []Layout, rank int) *TagMap {
	t := &TagMap{rank: rank, levels: make([]levelTags, len(grids))}
	for lvl, layout := range grids {
		lt := levelTags{layout: layout.Clone(), patches: make(map[int]CellSet)}
		for _, i := range layout.OwnedIndices(rank) {
			lt.patches[i] = make(CellSet)
		}
		t.levels[lvl] = lt
	}
	return t
}

// Rank returns the owning process rank.
func (t *TagMap) Rank() int {
	return t.rank
}

// FinestLevel returns the finest level carried by the map.
func (t *TagMap) FinestLevel() int {
	return len(t.levels) - 1
}

// Layout returns the layout the given level was allocated against.
func (t *TagMap) Layout(level int) Layout {
	return t.levels[level].layout
}

// AddCells scatters cells into the owned patches of a level. Cells outside
// the locally owned region are dropped; they belong to another rank.
func (t *TagMap) AddCells(level int, cells CellSet) {
	lt := t.levels[level]
	for iv := range cells {
		for i, s := range lt.patches {
			if lt.layout.Boxes[i].Contains(iv) {
				s.Add(iv)
				break
			}
		}
	}
}

// LocalCells returns the union of all owned patches on a level.
func (t *TagMap) LocalCells(level int) CellSet {
	merged := make(CellSet)
	for _, s := range t.levels[level].patches {
		merged.Union(s)
	}
	return merged
}

// FinestTaggedLocal returns the finest level with any locally tagged cell, or
// -1. The global answer requires a max-reduction across ranks.
func (t *TagMap) FinestTaggedLocal() int {
	finest := -1
	for lvl := range t.levels {
		for _, s := range t.levels[lvl].patches {
			if !s.IsEmpty() {
				finest = lvl
				break
			}
		}
	}
	return finest
}

// Clear empties every patch without changing the partition.
func (t *TagMap) Clear() {
	for lvl := range t.levels {
		for i := range t.levels[lvl].patches {
			t.levels[lvl].patches[i] = make(CellSet)
		}
	}
}

// Snapshot returns a deep copy taken against the current partition. This is
// the tag cache carried across a regrid boundary.
func (t *TagMap) Snapshot() *TagMap {
	c := &TagMap{rank: t.rank, levels: make([]levelTags, len(t.levels))}
	for lvl, lt := range t.levels {
		cl := levelTags{layout: lt.layout.Clone(), patches: make(map[int]CellSet, len(lt.patches))}
		for i, s := range lt.patches {
			cl.patches[i] = s.Clone()
		}
		c.levels[lvl] = cl
	}
	return c
}

// Fingerprint hashes the local tag content of a level.
func (t *TagMap) Fingerprint(level int) uint64 {
	return t.LocalCells(level).Fingerprint()
}

// MaskPatch is one patch's tags encoded as a dense 0/1 field, row-major with
// the x index fastest. This is the portable form written to checkpoints.
type MaskPatch struct {
	Box  Box    `json:"box"`
	Data []byte `json:"data"`
}

// maskThreshold is the midpoint cut used when reconstructing tags from a
// stored mask, tolerating round-trip noise in the encoded field.
const maskThreshold = 1

// Mask encodes the owned patches of a level as dense 0/1 fields.
func (t *TagMap) Mask(level int) []MaskPatch {
	lt := t.levels[level]
	idx := lt.layout.OwnedIndices(t.rank)
	masks := make([]MaskPatch, 0, len(idx))
	for _, i := range idx {
		b := lt.layout.Boxes[i]
		data := make([]byte, b.NumCells())
		for iv := range lt.patches[i] {
			data[maskOffset(b, iv)] = 1
		}
		masks = append(masks, MaskPatch{Box: b, Data: data})
	}
	return masks
}

// EncodeMask renders cells over an explicit box list as dense 0/1 fields, one
// patch per box. Cells outside every box are dropped. This is how a single
// writer encodes a globally gathered tag set against the full level layout,
// independent of patch ownership.
func EncodeMask(boxes []Box, cells CellSet) []MaskPatch {
	masks := make([]MaskPatch, len(boxes))
	for i, b := range boxes {
		data := make([]byte, b.NumCells())
		for iv := range cells {
			if b.Contains(iv) {
				data[maskOffset(b, iv)] = 1
			}
		}
		masks[i] = MaskPatch{Box: b, Data: data}
	}
	return masks
}

// SetFromMask reconstructs the owned tags of a level from stored masks. Any
// encoded value at or above the midpoint threshold counts as tagged.
func (t *TagMap) SetFromMask(level int, masks []MaskPatch) {
	lt := t.levels[level]
	for _, m := range masks {
		for i, s := range lt.patches {
			overlap, ok := lt.layout.Boxes[i].Intersect(m.Box)
			if !ok {
				continue
			}
			var iv IntVect
			for iv[2] = overlap.Lo[2]; iv[2] <= overlap.Hi[2]; iv[2]++ {
				for iv[1] = overlap.Lo[1]; iv[1] <= overlap.Hi[1]; iv[1]++ {
					for iv[0] = overlap.Lo[0]; iv[0] <= overlap.Hi[0]; iv[0]++ {
						if m.Data[maskOffset(m.Box, iv)] >= maskThreshold {
							s.Add(iv)
						}
					}
				}
			}
		}
	}
}

func maskOffset(b Box, iv IntVect) int {
	nx := b.Size(0)
	ny := b.Size(1)
	return ((iv[2]-b.Lo[2])*ny+(iv[1]-b.Lo[1]))*nx + (iv[0] - b.Lo[0])
}
