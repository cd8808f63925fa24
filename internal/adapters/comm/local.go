// Package comm implements the collective communication adapters: a
// single-rank Local comm for serial runs and an in-process Group comm that
// runs several ranks as goroutines for multi-rank tests and simulations.
package comm

import (
	"context"
	"os"

	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
)

// Local is the trivial single-rank comm. Every collective completes
// immediately with the local value.
type Local struct {
	log ports.Logger

	// AbortFn replaces process exit in tests. Nil means os.Exit(1).
	AbortFn func(error)
}

// NewLocal creates a single-rank comm.
func NewLocal(log ports.Logger) *Local {
	return &Local{log: log}
}

func (l *Local) Rank() int { return 0 }
func (l *Local) Size() int { return 1 }

func (l *Local) AllReduceMaxInt(_ context.Context, v int) (int, error) {
	return v, nil
}

func (l *Local) AllGatherCells(_ context.Context, cells []domain.IntVect) ([]domain.IntVect, error) {
	out := make([]domain.IntVect, len(cells))
	copy(out, cells)
	return out, nil
}

func (l *Local) Barrier(_ context.Context) error {
	return nil
}

// Abort terminates the process. With a single rank there is nobody left to
// deadlock, but the contract is still that Abort does not return control to
// the simulation.
func (l *Local) Abort(err error) {
	l.log.Error(err, "aborting run")
	if l.AbortFn != nil {
		l.AbortFn(err)
		return
	}
	os.Exit(1)
}

var _ ports.Comm = (*Local)(nil)
