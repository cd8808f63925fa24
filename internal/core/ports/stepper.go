package ports

import (
	"context"

	"github.com/voltlab/strata/internal/core/domain"
)

// TimeCode identifies which constraint limited a computed time step.
type TimeCode int

const (
	// TimeCodeAdvection means the step was limited by transport.
	TimeCodeAdvection TimeCode = iota
	// TimeCodeDiffusion means the step was limited by diffusion.
	TimeCodeDiffusion
	// TimeCodeSource means the step was limited by reaction stiffness.
	TimeCodeSource
	// TimeCodeOther covers collaborator-specific limits.
	TimeCodeOther
)

// TimeStepper advances the physical state. This is the single explicit
// capability interface replacing a deep overridable base class: the driver
// calls exactly these hooks and nothing else.
//
//go:generate go run go.uber.org/mock/mockgen -source=stepper.go -destination=mocks/mock_stepper.go -package=mocks
type TimeStepper interface {
	// ComputeDt returns the largest stable time step and the constraint
	// that produced it.
	ComputeDt(ctx context.Context) (float64, TimeCode, error)

	// Advance integrates the state by at most dt and returns the step
	// actually taken; adaptive steppers may shorten it.
	Advance(ctx context.Context, dt float64) (float64, error)

	// SynchronizeTimes pushes the driver's step, time and dt to every
	// solver the stepper owns.
	SynchronizeTimes(step int, time, dt float64)

	// Cache copies valid solver state into scratch that survives a layout
	// change.
	Cache(ctx context.Context) error

	// Deallocate frees the stepper's internal storage. Called between
	// caching and the mesh rebuild to bound peak resident memory.
	Deallocate()

	// Regrid interpolates the cached state onto the new layout for levels
	// [lmin, newFinest].
	Regrid(ctx context.Context, lmin, oldFinest, newFinest int) error

	// NeedsRegrid lets the stepper force a regrid outside the interval
	// policy.
	NeedsRegrid() bool

	// SeedInitialData refills the solvers from initial conditions.
	SeedInitialData(ctx context.Context) error

	// SetupSolvers instantiates the solvers against the current mesh.
	SetupSolvers(ctx context.Context) error

	// PostCheckpointSetup runs collaborator-specific fixups after restart
	// data has been read.
	PostCheckpointSetup(ctx context.Context) error

	// WriteCheckpointLevel persists the stepper's data for one level. The
	// driver invokes it on the single writing rank only; the stepper must
	// cover the full level layout, gathering remote state itself if its
	// field is not globally recomputable.
	WriteCheckpointLevel(ctx context.Context, chk CheckpointStore, level int) error

	// ReadCheckpointLevel restores the stepper's data for one level.
	ReadCheckpointLevel(ctx context.Context, chk CheckpointStore, level int) error

	// RedistributionRegionSize returns the ghost region the mesh must
	// honor when repartitioning.
	RedistributionRegionSize() int

	// PlotVarNames returns the names of the stepper's plot fields.
	PlotVarNames() []string

	// WritePlotLevel emits the stepper's plot fields for one level. Like
	// WriteCheckpointLevel, it runs on the writing rank only and must cover
	// the full level layout.
	WritePlotLevel(ctx context.Context, w PlotLevelWriter, level int) error
}

// PlotLevelWriter receives named per-patch fields for one plot level.
type PlotLevelWriter interface {
	PutField(name string, patches []domain.MaskPatch) error
	PutRealField(name string, boxes []domain.Box, data [][]float64) error
}
