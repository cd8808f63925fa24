package ports

import (
	"context"

	"github.com/voltlab/strata/internal/core/domain"
)

// MeshHierarchy owns the box partitioning, load balancing and geometry of the
// level hierarchy. The driver drives it through collective calls but never
// touches its internals.
//
//go:generate go run go.uber.org/mock/mockgen -source=mesh.go -destination=mocks/mock_mesh.go -package=mocks
type MeshHierarchy interface {
	// Regrid recomputes the partition of levels [lmin, lmax] using tags as
	// the refinement criterion. Collective: every rank contributes its
	// local tags and must pass identical bounds; the hierarchy combines
	// tags globally so all ranks agree on the new topology. Levels below
	// lmin are untouched and at most one new finest level may be added
	// (bounded by maxNewFinest).
	Regrid(ctx context.Context, tags []domain.CellSet, lmin, lmax, regionSize, maxNewFinest int) error

	// AdoptGrids installs an externally supplied topology, as read from a
	// checkpoint. Collective.
	AdoptGrids(ctx context.Context, boxes [][]domain.Box, regionSize int) error

	// Grids returns the current per-level layouts, 0..FinestLevel.
	Grids() []domain.Layout

	// Domains returns the per-level problem domain boxes for every level
	// the hierarchy may ever build, 0..MaxDepth.
	Domains() []domain.Box

	// FinestLevel returns the index of the current finest level.
	FinestLevel() int

	// MaxDepth returns the configured maximum refinement depth.
	MaxDepth() int

	// RefRatios returns the refinement ratio between each level and the
	// next finer one.
	RefRatios() []int

	// Dx returns the grid spacing of a level.
	Dx(level int) float64

	// CoarsestDx returns the level-0 grid spacing.
	CoarsestDx() float64

	// SanityCheck verifies the hierarchy is internally consistent.
	SanityCheck() error
}
