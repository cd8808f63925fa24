package ports

import (
	"context"

	"github.com/voltlab/strata/internal/core/domain"
)

// Comm is the collective communication boundary of the driver. Execution is
// single-program-multiple-data: every rank runs identical control flow and
// must enter each collective in lockstep, so any branch that could diverge is
// decided by a reduction before branching.
//
//go:generate go run go.uber.org/mock/mockgen -source=comm.go -destination=mocks/mock_comm.go -package=mocks
type Comm interface {
	// Rank returns this process's rank in [0, Size).
	Rank() int

	// Size returns the number of ranks in the job.
	Size() int

	// AllReduceMaxInt returns the maximum of v across all ranks.
	// Collective.
	AllReduceMaxInt(ctx context.Context, v int) (int, error)

	// AllGatherCells returns the concatenation of every rank's cells. Used
	// for the partition-to-partition tag copy across a regrid. Collective.
	AllGatherCells(ctx context.Context, cells []domain.IntVect) ([]domain.IntVect, error)

	// Barrier blocks until every rank arrives. Collective.
	Barrier(ctx context.Context) error

	// Abort terminates the entire distributed job. A single rank stopping
	// alone would leave the others deadlocked inside a collective, so every
	// fatal path funnels through here.
	Abort(err error)
}
