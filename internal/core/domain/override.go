package domain

// CoarsenOverride caps refinement inside a physical region: any tag above
// MaxLevel whose cell center falls inside Box is cleared. Overrides are read
// once at startup and are static for the run. When overrides overlap, each is
// applied independently, so the tightest cap wins inside the overlap.
type CoarsenOverride struct {
	Box      RealBox
	MaxLevel int
}

// Apply removes capped tags from the per-level sets. dxs holds the grid
// spacing of each level and probLo the physical domain origin; dim is the
// number of active axes.
func (c CoarsenOverride) Apply(tags []CellSet, dxs []float64, probLo RealVect, dim int) {
	for lvl := range tags {
		if lvl <= c.MaxLevel {
			continue
		}
		for iv := range tags[lvl] {
			if c.Box.ContainsPoint(CellCenter(iv, dxs[lvl], probLo), dim) {
				tags[lvl].Remove(iv)
			}
		}
	}
}

// ApplyOverrides runs every override against the tag sets.
func ApplyOverrides(overrides []CoarsenOverride, tags []CellSet, dxs []float64, probLo RealVect, dim int) {
	for _, o := range overrides {
		o.Apply(tags, dxs, probLo, dim)
	}
}
