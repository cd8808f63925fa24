package domain

// GeoTags are the static geometry-derived refinement markers: one CellSet per
// level, indexed 0..maxDepth-1. They are built once during setup and never
// mutated afterwards; the aggregator recombines them with dynamic tags at
// every regrid so geometric features are never starved of resolution.
type GeoTags []CellSet

// NewGeoTags allocates empty geometric tags for maxDepth levels.
func NewGeoTags(maxDepth int) GeoTags {
	g := make(GeoTags, maxDepth)
	for i := range g {
		g[i] = make(CellSet)
	}
	return g
}

// Level returns the tags for a level, or an empty set past the slice end.
// Geometric tags never exist on the maximum depth: nothing finer can be built
// below it.
func (g GeoTags) Level(lvl int) CellSet {
	if lvl < 0 || lvl >= len(g) {
		return CellSet{}
	}
	return g[lvl]
}

// Grow dilates every level by radius, bounded per level by bounds[lvl].
func (g GeoTags) Grow(radius int, bounds []Box) GeoTags {
	grown := make(GeoTags, len(g))
	for lvl := range g {
		grown[lvl] = g[lvl].Grow(radius, bounds[lvl])
	}
	return grown
}
