package domain

// CheckpointHeader is the scalar metadata persisted with every checkpoint.
// CoarsestDx doubles as a resolution guard: a restart whose configured base
// spacing differs from the stored one is rejected before any grid is built,
// because refinement ratios and physical coordinates would silently break.
type CheckpointHeader struct {
	CoarsestDx  float64 `json:"coarsest_dx"`
	Time        float64 `json:"time"`
	Dt          float64 `json:"dt"`
	Step        int     `json:"step"`
	FinestLevel int     `json:"finest_level"`
	RunID       string  `json:"run_id,omitempty"`
}

// CheckpointLevel is one level's persisted record: the exact box partition
// (enough to rebuild topology without re-tagging) and the driver's own
// tagged-cell mask. Solver data is opaque to the driver and stored under
// collaborator-chosen keys next to it.
type CheckpointLevel struct {
	Boxes  []Box       `json:"boxes"`
	Owners []int       `json:"owners"`
	Mask   []MaskPatch `json:"tagged_mask"`
}
