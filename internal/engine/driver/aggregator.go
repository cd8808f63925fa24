package driver

import (
	"context"

	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
	"go.trai.ch/zerr"
)

// Aggregator merges refinement markers from the cell tagger, the static
// geometric tag regions and the coarsen overrides into one authoritative tag
// set per level.
//
// Every call performs the same collectives on every rank: the tagger's
// "changed" verdict and the finest tagged level are both settled by a global
// max-reduction before any branch, so no rank can locally decide to skip the
// later collective mesh rebuild while others enter it.
type Aggregator struct {
	tagger    ports.CellTagger
	mesh      ports.MeshHierarchy
	comm      ports.Comm
	log       ports.Logger
	geoTags   domain.GeoTags
	overrides []domain.CoarsenOverride

	allowCoarsen bool
	growTags     int
	dim          int
	probLo       domain.RealVect
}

// NewAggregator wires an aggregator. geoTags and overrides are borrowed and
// must stay unmutated for the aggregator's lifetime.
func NewAggregator(
	tagger ports.CellTagger,
	mesh ports.MeshHierarchy,
	comm ports.Comm,
	log ports.Logger,
	geoTags domain.GeoTags,
	overrides []domain.CoarsenOverride,
	cfg domain.Config,
) *Aggregator {
	return &Aggregator{
		tagger:       tagger,
		mesh:         mesh,
		comm:         comm,
		log:          log,
		geoTags:      geoTags,
		overrides:    overrides,
		allowCoarsen: cfg.Driver.AllowCoarsening,
		growTags:     cfg.Driver.GrowTags,
		dim:          cfg.Mesh.Dim,
		probLo:       cfg.Mesh.Origin(),
	}
}

// ComputeTags produces the authoritative per-level tag sets. A false changed
// return means the tagger saw nothing new anywhere in the job; callers must
// treat that as a no-op, not an error.
func (a *Aggregator) ComputeTags(ctx context.Context, live *domain.TagMap) (bool, []domain.CellSet, error) {
	if live == nil {
		return false, nil, zerr.Wrap(domain.ErrSanityCheck, "tag storage not allocated")
	}

	localChanged, err := a.tagger.TagCells(ctx, live)
	if err != nil {
		return false, nil, zerr.Wrap(err, "cell tagger failed")
	}

	// Settle "did anything change" globally before branching; a rank that
	// returned early here while another proceeded would deadlock the
	// collective regrid.
	flag := 0
	if localChanged {
		flag = 1
	}
	globalFlag, err := a.comm.AllReduceMaxInt(ctx, flag)
	if err != nil {
		return false, nil, zerr.Wrap(domain.ErrCollectiveProtocol, err.Error())
	}
	if globalFlag == 0 {
		return false, nil, nil
	}

	finestLevel := a.mesh.FinestLevel()
	domains := a.mesh.Domains()

	// Dilate the tagger's markers by its buffer radius plus the configured
	// extra growth, clamped to each level's domain.
	radius := a.tagger.Buffer() + a.growTags
	tags := make([]domain.CellSet, finestLevel+1)
	for lvl := 0; lvl <= finestLevel; lvl++ {
		tags[lvl] = live.LocalCells(lvl).Grow(radius, domains[lvl])
	}

	finestTagged, err := a.comm.AllReduceMaxInt(ctx, live.FinestTaggedLocal())
	if err != nil {
		return false, nil, zerr.Wrap(domain.ErrCollectiveProtocol, err.Error())
	}

	a.fuseGeoTags(tags, finestTagged)
	a.applyOverrides(tags, finestLevel)

	a.log.Debug("computed tags",
		"finest_level", finestLevel,
		"finest_tagged", finestTagged,
		"buffer", radius)

	return true, tags, nil
}

// fuseGeoTags recombines the static geometric markers with the dynamic tags.
// Under the coarsening-allowed policy geometric tags follow the finest tagged
// level, so a level may shrink away in later regrids. Under monotonic growth
// they are added on every level strictly below the maximum depth, so a level,
// once created, is never starved of its geometric tags.
func (a *Aggregator) fuseGeoTags(tags []domain.CellSet, finestTagged int) {
	maxDepth := a.mesh.MaxDepth()
	for lvl := range tags {
		if a.allowCoarsen {
			if lvl <= finestTagged {
				tags[lvl].Union(a.geoTags.Level(lvl))
			}
		} else if lvl < maxDepth {
			tags[lvl].Union(a.geoTags.Level(lvl))
		}
	}
}

// applyOverrides clears tags above each override's level cap inside its box.
// Overlapping overrides compose: the tighter cap wins in the overlap.
func (a *Aggregator) applyOverrides(tags []domain.CellSet, finestLevel int) {
	if len(a.overrides) == 0 {
		return
	}
	dxs := make([]float64, finestLevel+1)
	for lvl := range dxs {
		dxs[lvl] = a.mesh.Dx(lvl)
	}
	domain.ApplyOverrides(a.overrides, tags, dxs, a.probLo, a.dim)
}
