// Package ports defines the capability interfaces the driver consumes. Each
// collaborator implements exactly the hooks named here; the driver never owns
// a collaborator and callers guarantee the references outlive it.
package ports

import (
	"context"

	"github.com/voltlab/strata/internal/core/domain"
)

// CellTagger computes per-cell refinement markers from solver state.
//
//go:generate go run go.uber.org/mock/mockgen -source=tagger.go -destination=mocks/mock_tagger.go -package=mocks
type CellTagger interface {
	// TagCells populates tags with the tagger's current refinement markers
	// and reports whether any cell changed tag state since the previous
	// invocation. A false return is a legitimate "nothing to do".
	TagCells(ctx context.Context, tags *domain.TagMap) (bool, error)

	// Buffer returns the dilation radius applied around tagged regions so
	// stencils near new refinement boundaries stay fully supported.
	Buffer() int

	// Regrid rebuilds the tagger's scratch storage after a mesh change.
	Regrid(ctx context.Context) error

	// NumPlotVars returns how many plot fields the tagger contributes.
	NumPlotVars() int
}
