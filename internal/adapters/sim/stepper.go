package sim

import (
	"context"
	"encoding/json"

	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
	"go.trai.ch/zerr"
)

// FrontStepper is the demonstration time stepper. Its "solver state" is the
// gaussian front sampled on the rank's owned patches, which keeps every
// driver hook honest (allocation, caching, regridding, checkpointing)
// without a PDE solve.
type FrontStepper struct {
	front front
	cfl   float64
	buf   int

	mesh ports.MeshHierarchy
	log  ports.Logger
	rank int

	step int
	time float64
	dt   float64

	// phi[level][patch] holds the field on this rank's owned boxes, in
	// layout order.
	phi    [][][]float64
	boxes  [][]domain.Box
	cached bool
}

// NewFrontStepper builds the stepper from the sim section of the config.
func NewFrontStepper(cfg domain.Config, mesh ports.MeshHierarchy, comm ports.Comm, log ports.Logger) *FrontStepper {
	return &FrontStepper{
		front: newFront(cfg.Sim, cfg.Mesh.Origin(), cfg.Mesh.Dim),
		cfl:   cfg.Sim.CFL,
		buf:   cfg.Sim.Buffer,
		mesh:  mesh,
		log:   log,
		rank:  comm.Rank(),
	}
}

// Time returns the stepper's current simulation time. The tagger samples the
// analytic field through it.
func (s *FrontStepper) Time() float64 {
	return s.time
}

func (s *FrontStepper) ComputeDt(_ context.Context) (float64, ports.TimeCode, error) {
	dx := s.mesh.Dx(s.mesh.FinestLevel())
	return s.cfl * dx / s.front.speed, ports.TimeCodeAdvection, nil
}

func (s *FrontStepper) Advance(_ context.Context, dt float64) (float64, error) {
	s.time += dt
	s.resample()
	return dt, nil
}

func (s *FrontStepper) SynchronizeTimes(step int, time, dt float64) {
	s.step = step
	s.time = time
	s.dt = dt
}

// Cache keeps the field aside across a layout change. The analytic front can
// always be resampled, so caching is a flag rather than a copy; the point is
// enforcing the call order.
func (s *FrontStepper) Cache(_ context.Context) error {
	s.cached = true
	return nil
}

func (s *FrontStepper) Deallocate() {
	s.phi = nil
	s.boxes = nil
}

func (s *FrontStepper) Regrid(_ context.Context, _, _, _ int) error {
	if !s.cached {
		return zerr.Wrap(domain.ErrSanityCheck, "regrid without a prior cache")
	}
	s.cached = false
	s.allocate()
	s.resample()
	return nil
}

func (s *FrontStepper) NeedsRegrid() bool {
	return false
}

func (s *FrontStepper) SeedInitialData(_ context.Context) error {
	s.resample()
	return nil
}

func (s *FrontStepper) SetupSolvers(_ context.Context) error {
	s.allocate()
	return nil
}

func (s *FrontStepper) PostCheckpointSetup(_ context.Context) error {
	return nil
}

func (s *FrontStepper) WriteCheckpointLevel(_ context.Context, chk ports.CheckpointStore, level int) error {
	if level >= len(s.phi) {
		return zerr.With(domain.ErrSanityCheck, "level", level)
	}
	// The write hook runs on the single writing rank, which must persist the
	// whole level. The field is analytic, so covering patches owned by other
	// ranks is a resample rather than a gather.
	blob, err := json.Marshal(s.sampleLayout(level))
	if err != nil {
		return zerr.Wrap(err, "failed to encode field")
	}
	return chk.PutBlob(level, "phi", blob)
}

func (s *FrontStepper) ReadCheckpointLevel(_ context.Context, chk ports.CheckpointStore, level int) error {
	if len(s.phi) <= level {
		s.allocate()
	}
	blob, err := chk.Blob(level, "phi")
	if err != nil {
		return err
	}
	var vals [][]float64
	if err := json.Unmarshal(blob, &vals); err != nil {
		return zerr.Wrap(domain.ErrCheckpointFormat, err.Error())
	}
	// The persisted record carries the writing job's full level layout, which
	// matches our owned partition only on a single rank. Resampling from the
	// restored clock is exact for the analytic field.
	if len(vals) == len(s.phi[level]) {
		s.phi[level] = vals
	} else {
		s.resample()
	}
	return nil
}

func (s *FrontStepper) RedistributionRegionSize() int {
	return s.buf
}

func (s *FrontStepper) PlotVarNames() []string {
	return []string{"phi"}
}

func (s *FrontStepper) WritePlotLevel(_ context.Context, w ports.PlotLevelWriter, level int) error {
	if level >= len(s.phi) {
		return zerr.With(domain.ErrSanityCheck, "level", level)
	}
	layout := s.mesh.Grids()[level]
	return w.PutRealField("phi", layout.Boxes, s.sampleLayout(level))
}

// allocate sizes the field storage to the current mesh.
func (s *FrontStepper) allocate() {
	grids := s.mesh.Grids()
	s.phi = make([][][]float64, len(grids))
	s.boxes = make([][]domain.Box, len(grids))
	for lvl, layout := range grids {
		for _, i := range layout.OwnedIndices(s.rank) {
			b := layout.Boxes[i]
			s.boxes[lvl] = append(s.boxes[lvl], b)
			s.phi[lvl] = append(s.phi[lvl], make([]float64, b.NumCells()))
		}
	}
}

// sampleLayout evaluates the analytic solution on every patch of a level,
// regardless of ownership.
func (s *FrontStepper) sampleLayout(level int) [][]float64 {
	layout := s.mesh.Grids()[level]
	dx := s.mesh.Dx(level)
	vals := make([][]float64, len(layout.Boxes))
	for i, b := range layout.Boxes {
		vals[i] = sample(s.front, b, dx, s.time, s.front.dim)
	}
	return vals
}

// resample refills every owned patch from the analytic solution at the
// current time.
func (s *FrontStepper) resample() {
	for lvl := range s.boxes {
		dx := s.mesh.Dx(lvl)
		for i, b := range s.boxes[lvl] {
			s.phi[lvl][i] = sample(s.front, b, dx, s.time, s.front.dim)
		}
	}
}

var _ ports.TimeStepper = (*FrontStepper)(nil)
