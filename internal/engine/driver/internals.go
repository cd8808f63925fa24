// Package driver implements the regrid-and-checkpoint orchestration engine:
// tag aggregation, the staged regrid pipeline, the adaptive time loop and the
// checkpoint codec. Physics, refinement criteria and the mesh itself live
// behind the ports this package consumes.
package driver

import (
	"context"

	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
	"go.trai.ch/zerr"
)

// Internals is the driver's own per-level storage: the live tag bitmaps and,
// for the duration of one regrid pipeline run, their snapshot. The snapshot
// doubles memory for tags only, never for field data.
type Internals struct {
	rank   int
	tags   *domain.TagMap
	cached *domain.TagMap
}

// NewInternals returns empty storage for the given rank.
func NewInternals(rank int) *Internals {
	return &Internals{rank: rank}
}

// Allocate builds empty tag storage against the given layouts, replacing any
// previous allocation.
func (in *Internals) Allocate(grids []domain.Layout) {
	in.tags = domain.NewTagMap(grids, in.rank)
}

// Tags returns the live tag bitmaps, or nil when deallocated.
func (in *Internals) Tags() *domain.TagMap {
	return in.tags
}

// CacheTags snapshots the live bitmaps against the current partition. Must be
// called before the partition changes.
func (in *Internals) CacheTags() error {
	if in.tags == nil {
		return zerr.Wrap(domain.ErrSanityCheck, "cannot cache tags before allocation")
	}
	in.cached = in.tags.Snapshot()
	return nil
}

// Deallocate frees the live bitmaps. The snapshot, if any, survives.
func (in *Internals) Deallocate() {
	in.tags = nil
}

// Restore copies the snapshot into freshly allocated storage. The partition
// after a regrid differs from the one the snapshot was taken against, so this
// is a communication-based copy: each rank contributes its cached cells, the
// union is gathered collectively, and every rank keeps the part that overlaps
// its newly owned region (a logical OR into the new bitmaps). Only levels
// [0, min(oldFinest, newFinest)] are restored.
func (in *Internals) Restore(ctx context.Context, comm ports.Comm, oldFinest, newFinest int) error {
	if in.tags == nil {
		return zerr.Wrap(domain.ErrSanityCheck, "cannot restore tags before allocation")
	}
	if in.cached == nil {
		return zerr.Wrap(domain.ErrSanityCheck, "no cached tags to restore")
	}

	top := min(oldFinest, newFinest)
	for lvl := 0; lvl <= top; lvl++ {
		local := in.cached.LocalCells(lvl).Cells()
		global, err := comm.AllGatherCells(ctx, local)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "tag restore gather failed"), "level", lvl)
		}
		in.tags.AddCells(lvl, domain.NewCellSet(global...))
	}

	in.cached = nil
	return nil
}

// HasCache reports whether a snapshot is pending restore.
func (in *Internals) HasCache() bool {
	return in.cached != nil
}
