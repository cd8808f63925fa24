package driver

import (
	"context"
	"time"

	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
	"go.trai.ch/zerr"
)

// Clock is the driver's simulation time state. It is persisted verbatim in
// checkpoints and must round-trip bit-identically across a restart.
type Clock struct {
	Time float64
	Dt   float64
	Step int
	Code ports.TimeCode
}

// Codec writes and reads the persisted checkpoint record. The driver's own
// contribution is the scalar header, the per-level box lists and the
// tagged-cell masks; solver data is delegated to the stepper's hooks level by
// level through the same open container.
type Codec struct {
	dim      int
	maxDepth int

	mesh      ports.MeshHierarchy
	stepper   ports.TimeStepper
	internals *Internals
	factory   ports.CheckpointFactory
	comm      ports.Comm
	log       ports.Logger
	metrics   ports.Metrics
	runID     string
}

// NewCodec wires the checkpoint codec. maxDepth caps how many levels are
// persisted; negative means all.
func NewCodec(
	cfg domain.Config,
	mesh ports.MeshHierarchy,
	stepper ports.TimeStepper,
	internals *Internals,
	factory ports.CheckpointFactory,
	comm ports.Comm,
	log ports.Logger,
	metrics ports.Metrics,
	runID string,
) *Codec {
	return &Codec{
		dim:       cfg.Mesh.Dim,
		maxDepth:  cfg.Driver.MaxChkDepth,
		mesh:      mesh,
		stepper:   stepper,
		internals: internals,
		factory:   factory,
		comm:      comm,
		log:       log,
		metrics:   metrics,
		runID:     runID,
	}
}

// Write persists the full simulation state to path. Every rank participates:
// the per-level tag masks are gathered collectively first, then rank 0 alone
// touches the container and everyone meets at the trailing barrier. Exactly
// one process ever creates or mutates the path.
func (c *Codec) Write(ctx context.Context, path string, clock Clock) error {
	start := time.Now()

	finest := c.mesh.FinestLevel()
	top := finest
	if c.maxDepth >= 0 {
		top = min(c.maxDepth, finest)
	}

	grids := c.mesh.Grids()
	masks := make([][]domain.MaskPatch, top+1)
	for lvl := 0; lvl <= top; lvl++ {
		all, err := c.comm.AllGatherCells(ctx, c.internals.Tags().LocalCells(lvl).Cells())
		if err != nil {
			return zerr.With(zerr.Wrap(err, "tag mask gather failed"), "level", lvl)
		}
		masks[lvl] = domain.EncodeMask(grids[lvl].Boxes, domain.NewCellSet(all...))
	}

	if c.comm.Rank() == 0 {
		if err := c.writeContainer(ctx, path, clock, grids, masks, top); err != nil {
			return err
		}
		elapsed := time.Since(start)
		c.metrics.CheckpointWritten(elapsed.Seconds())
		c.log.Info("wrote checkpoint", "path", path, "step", clock.Step, "duration", elapsed)
	}
	return c.comm.Barrier(ctx)
}

func (c *Codec) writeContainer(
	ctx context.Context,
	path string,
	clock Clock,
	grids []domain.Layout,
	masks [][]domain.MaskPatch,
	top int,
) error {
	chk, err := c.factory.Create(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create checkpoint"), "path", path)
	}
	defer chk.Close() //nolint:errcheck // Flush errors surface on the explicit Close below

	header := domain.CheckpointHeader{
		CoarsestDx:  c.mesh.CoarsestDx(),
		Time:        clock.Time,
		Dt:          clock.Dt,
		Step:        clock.Step,
		FinestLevel: top,
		RunID:       c.runID,
	}
	if err := chk.PutHeader(header); err != nil {
		return zerr.Wrap(err, "failed to write checkpoint header")
	}

	for lvl := 0; lvl <= top; lvl++ {
		if err := chk.PutBoxes(lvl, grids[lvl].Boxes); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write level boxes"), "level", lvl)
		}
		if err := c.stepper.WriteCheckpointLevel(ctx, chk, lvl); err != nil {
			return zerr.With(zerr.Wrap(err, "stepper checkpoint write failed"), "level", lvl)
		}
		if err := chk.PutTagMask(lvl, masks[lvl]); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write tag mask"), "level", lvl)
		}
	}

	if err := chk.Close(); err != nil {
		return zerr.Wrap(err, "failed to close checkpoint")
	}
	return nil
}

// Read restores the full simulation state from path. The stored box lists
// are the sole source of truth for the mesh topology: the hierarchy adopts
// them before any collaborator produces or consumes data, so no re-tagging
// happens on restart. The stored coarsest spacing must equal the configured
// one or the record is unusable.
//
// The container admits a single live handle per directory, so ranks take
// turns: each opens, restores and closes in its slot while the others hold at
// the barrier.
func (c *Codec) Read(ctx context.Context, path string) (Clock, error) {
	var clock Clock
	var readErr error
	for r := 0; r < c.comm.Size(); r++ {
		if r == c.comm.Rank() {
			clock, readErr = c.readContainer(ctx, path)
		}
		if err := c.comm.Barrier(ctx); err != nil {
			return Clock{}, zerr.Wrap(err, "checkpoint read barrier failed")
		}
	}
	return clock, readErr
}

func (c *Codec) readContainer(ctx context.Context, path string) (Clock, error) {
	chk, err := c.factory.Open(path)
	if err != nil {
		return Clock{}, zerr.With(zerr.Wrap(err, "failed to open checkpoint"), "path", path)
	}
	defer chk.Close() //nolint:errcheck // Read-only container

	header, err := chk.Header()
	if err != nil {
		return Clock{}, zerr.Wrap(err, "failed to read checkpoint header")
	}

	if header.CoarsestDx != c.mesh.CoarsestDx() {
		return Clock{}, zerr.With(zerr.With(domain.ErrResolutionMismatch,
			"checkpoint_dx", header.CoarsestDx),
			"configured_dx", c.mesh.CoarsestDx())
	}

	boxes := make([][]domain.Box, header.FinestLevel+1)
	for lvl := 0; lvl <= header.FinestLevel; lvl++ {
		levelBoxes, err := chk.Boxes(lvl)
		if err != nil {
			return Clock{}, zerr.With(zerr.Wrap(err, "checkpoint has no grids"), "level", lvl)
		}
		boxes[lvl] = levelBoxes
	}

	if err := c.mesh.AdoptGrids(ctx, boxes, c.stepper.RedistributionRegionSize()); err != nil {
		return Clock{}, zerr.Wrap(err, "failed to adopt checkpoint topology")
	}

	if err := c.stepper.SetupSolvers(ctx); err != nil {
		return Clock{}, zerr.Wrap(err, "failed to instantiate solvers")
	}

	c.internals.Allocate(c.mesh.Grids())

	for lvl := 0; lvl <= header.FinestLevel; lvl++ {
		if err := c.stepper.ReadCheckpointLevel(ctx, chk, lvl); err != nil {
			return Clock{}, zerr.With(zerr.Wrap(err, "stepper checkpoint read failed"), "level", lvl)
		}
		mask, err := chk.TagMask(lvl)
		if err != nil {
			return Clock{}, zerr.With(zerr.Wrap(err, "failed to read tag mask"), "level", lvl)
		}
		c.internals.Tags().SetFromMask(lvl, mask)
	}

	c.log.Info("read checkpoint", "path", path, "step", header.Step, "finest_level", header.FinestLevel)
	return Clock{Time: header.Time, Dt: header.Dt, Step: header.Step}, nil
}
