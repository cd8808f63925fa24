package ports

import (
	"context"

	"github.com/voltlab/strata/internal/core/domain"
)

// GeometrySource exposes geometry-derived cells (interface cells,
// boundary-adjacent cells) on each level's index space. The driver queries it
// once during setup to build the static geometric tag regions; the embedded
// geometry itself is constructed elsewhere.
//
//go:generate go run go.uber.org/mock/mockgen -source=geometry.go -destination=mocks/mock_geometry.go -package=mocks
type GeometrySource interface {
	// IrregularCells returns the interface cells of one level.
	IrregularCells(ctx context.Context, level int) (domain.CellSet, error)
}
