package driver

import (
	"context"

	"github.com/google/uuid"
	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
	"go.trai.ch/zerr"
)

// Deps are the collaborators the driver borrows. The driver never owns them;
// callers guarantee every reference outlives the driver.
type Deps struct {
	Log         ports.Logger
	Tracer      ports.Tracer
	Metrics     ports.Metrics
	Comm        ports.Comm
	Mesh        ports.MeshHierarchy
	Stepper     ports.TimeStepper
	Tagger      ports.CellTagger
	Geometry    ports.GeometrySource
	Checkpoints ports.CheckpointFactory
}

// Driver is the orchestration engine: it owns the tag storage and the
// simulation clock, and sequences setup, regridding, stepping and
// checkpointing across its collaborators.
type Driver struct {
	cfg  domain.Config
	deps Deps

	internals *Internals
	agg       *Aggregator
	coord     *Coordinator
	out       *Output
	codec     *Codec
	loop      *Loop

	geoTags   domain.GeoTags
	overrides []domain.CoarsenOverride
	runID     string
	clock     Clock
}

// New builds a driver for the given configuration and collaborators.
func New(cfg domain.Config, deps Deps) *Driver {
	d := &Driver{
		cfg:       cfg,
		deps:      deps,
		internals: NewInternals(deps.Comm.Rank()),
		overrides: cfg.Overrides(),
		runID:     uuid.NewString(),
	}

	d.agg = NewAggregator(deps.Tagger, deps.Mesh, deps.Comm, deps.Log, nil, d.overrides, cfg)
	d.coord = NewCoordinator(d.agg, d.internals, deps.Stepper, deps.Tagger, deps.Mesh, deps.Comm, deps.Log, deps.Tracer, deps.Metrics)
	d.out = NewOutput(cfg, deps.Mesh, deps.Stepper, d.internals, deps.Comm, deps.Log, deps.Metrics)
	d.codec = NewCodec(cfg, deps.Mesh, deps.Stepper, d.internals, deps.Checkpoints, deps.Comm, deps.Log, deps.Metrics, d.runID)
	d.loop = NewLoop(cfg.Driver, deps.Stepper, deps.Mesh, deps.Comm, d.coord, d.out, d.codec, deps.Log, deps.Metrics)

	return d
}

// Clock returns the current simulation time state.
func (d *Driver) Clock() Clock {
	return d.clock
}

// Internals exposes the driver's tag storage, mainly for inspection in tests
// and plot writing.
func (d *Driver) Internals() *Internals {
	return d.internals
}

// Setup prepares the run: sanity checks, output directories, geometric tags
// and then either a fresh start, a restart or geometry-only construction.
func (d *Driver) Setup(ctx context.Context) error {
	if err := d.sanityCheck(); err != nil {
		return d.fatal(err)
	}
	if err := d.out.EnsureDirs(ctx); err != nil {
		return d.fatal(err)
	}
	if err := d.buildGeoTags(ctx); err != nil {
		return d.fatal(err)
	}
	if err := d.out.WriteGeoTags(ctx, d.geoTags); err != nil {
		return d.fatal(err)
	}

	switch {
	case d.cfg.Driver.GeometryOnly:
		return d.setupGeometryOnly(ctx)
	case d.cfg.Driver.Restart():
		return d.setupRestart(ctx)
	default:
		return d.setupFresh(ctx)
	}
}

// Run executes the time loop. Geometry-only runs stop after setup.
func (d *Driver) Run(ctx context.Context) error {
	if d.cfg.Driver.GeometryOnly {
		return nil
	}
	return d.loop.Run(ctx, &d.clock, d.cfg.Driver.StartTime, d.cfg.Driver.StopTime, d.cfg.Driver.MaxSteps)
}

// sanityCheck verifies every required collaborator is present before doing
// anything expensive.
func (d *Driver) sanityCheck() error {
	missing := ""
	switch {
	case d.deps.Mesh == nil:
		missing = "mesh"
	case d.deps.Comm == nil:
		missing = "comm"
	case !d.cfg.Driver.GeometryOnly && d.deps.Stepper == nil:
		missing = "stepper"
	case !d.cfg.Driver.GeometryOnly && d.deps.Tagger == nil:
		missing = "tagger"
	case d.deps.Geometry == nil:
		missing = "geometry"
	}
	if missing != "" {
		return zerr.With(domain.ErrSanityCheck, "missing", missing)
	}
	return d.deps.Mesh.SanityCheck()
}

// buildGeoTags constructs the static geometric tag regions: interface cells
// on every level up to the geometric refinement depth, coarsened by the
// overrides and grown so refinement boundaries never sit directly on an
// interface cell. Built once; never mutated afterwards.
func (d *Driver) buildGeoTags(ctx context.Context) error {
	maxDepth := d.deps.Mesh.MaxDepth()
	depth := d.geomTagDepth()
	domains := d.deps.Mesh.Domains()

	geo := domain.NewGeoTags(maxDepth)
	for lvl := 0; lvl < depth; lvl++ {
		cells, err := d.deps.Geometry.IrregularCells(ctx, lvl)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "geometry query failed"), "level", lvl)
		}
		geo[lvl] = cells.Clone()
	}

	if len(d.overrides) > 0 {
		dxs := make([]float64, maxDepth)
		for lvl := range dxs {
			dxs[lvl] = d.deps.Mesh.Dx(lvl)
		}
		domain.ApplyOverrides(d.overrides, geo, dxs, d.cfg.Mesh.Origin(), d.cfg.Mesh.Dim)
	}

	growth := max(1, d.cfg.Geometry.Growth)
	d.geoTags = geo.Grow(growth, domains)
	d.agg.geoTags = d.geoTags

	return nil
}

// geomTagDepth returns how many levels carry geometric tags; negative config
// means the full depth.
func (d *Driver) geomTagDepth() int {
	if d.cfg.Geometry.RefineDepth < 0 {
		return d.deps.Mesh.MaxDepth()
	}
	return min(d.cfg.Geometry.RefineDepth, d.deps.Mesh.MaxDepth())
}

// setupFresh builds the initial mesh from the geometric tags, seeds the
// solvers with initial data and runs the configured bootstrap regrids so the
// mesh conforms to the initial condition before stepping starts.
func (d *Driver) setupFresh(ctx context.Context) error {
	depth := d.geomTagDepth()
	tags := make([]domain.CellSet, depth+1)
	for lvl := range tags {
		tags[lvl] = d.geoTags.Level(lvl)
	}

	regionSize := d.deps.Stepper.RedistributionRegionSize()
	if err := d.deps.Mesh.Regrid(ctx, tags, 0, depth, regionSize, depth); err != nil {
		return d.fatal(zerr.Wrap(err, "initial mesh build failed"))
	}

	d.internals.Allocate(d.deps.Mesh.Grids())
	d.gridReport()

	if err := d.deps.Stepper.SetupSolvers(ctx); err != nil {
		return d.fatal(zerr.Wrap(err, "solver setup failed"))
	}
	d.clock = Clock{Time: d.cfg.Driver.StartTime}
	d.deps.Stepper.SynchronizeTimes(d.clock.Step, d.clock.Time, d.clock.Dt)
	if err := d.deps.Stepper.SeedInitialData(ctx); err != nil {
		return d.fatal(zerr.Wrap(err, "initial data seed failed"))
	}
	if err := d.deps.Tagger.Regrid(ctx); err != nil {
		return d.fatal(zerr.Wrap(err, "tagger setup failed"))
	}

	for i := 0; i < d.cfg.Driver.InitialRegrids; i++ {
		d.deps.Log.Info("initial regrid", "round", i+1)
		if err := d.coord.Regrid(ctx, 1, d.deps.Mesh.FinestLevel(), true); err != nil {
			return d.fatal(err)
		}
		d.gridReport()
	}

	if d.cfg.Driver.PlotInterval > 0 {
		if err := d.out.WritePlot(ctx, d.clock); err != nil {
			return d.fatal(err)
		}
	}
	return nil
}

// setupRestart reconstructs the run from a checkpoint. The checkpoint is the
// sole source of truth for the topology and the clock; only after both are
// restored do the bootstrap regrids run, without reseeding initial data.
func (d *Driver) setupRestart(ctx context.Context) error {
	path := d.out.CheckpointPath(d.cfg.Driver.RestartStep)
	clock, err := d.codec.Read(ctx, path)
	if err != nil {
		return d.fatal(err)
	}
	d.clock = clock

	if err := d.deps.Stepper.PostCheckpointSetup(ctx); err != nil {
		return d.fatal(zerr.Wrap(err, "post-checkpoint setup failed"))
	}
	if err := d.deps.Tagger.Regrid(ctx); err != nil {
		return d.fatal(zerr.Wrap(err, "tagger setup failed"))
	}

	for i := 0; i < d.cfg.Driver.InitialRegrids; i++ {
		d.deps.Log.Info("initial regrid", "round", i+1)
		if err := d.coord.Regrid(ctx, 1, d.deps.Mesh.FinestLevel(), false); err != nil {
			return d.fatal(err)
		}
		d.gridReport()
	}
	return nil
}

// setupGeometryOnly builds the mesh from geometric tags and stops. Used to
// inspect grid generation without paying for solvers.
func (d *Driver) setupGeometryOnly(ctx context.Context) error {
	depth := d.geomTagDepth()
	tags := make([]domain.CellSet, depth+1)
	for lvl := range tags {
		tags[lvl] = d.geoTags.Level(lvl)
	}

	if err := d.deps.Mesh.Regrid(ctx, tags, 0, depth, 0, depth); err != nil {
		return d.fatal(zerr.Wrap(err, "geometry-only mesh build failed"))
	}
	d.internals.Allocate(d.deps.Mesh.Grids())
	d.gridReport()
	return nil
}

// gridReport logs the shape of the current hierarchy: per-level box and cell
// counts plus how much of each level's domain is actually covered.
func (d *Driver) gridReport() {
	grids := d.deps.Mesh.Grids()
	domains := d.deps.Mesh.Domains()
	for lvl, layout := range grids {
		cells := layout.NumCells()
		total := domains[lvl].NumCells()
		fill := 0.0
		if total > 0 {
			fill = float64(cells) / float64(total)
		}
		d.deps.Log.Info("grid level",
			"level", lvl,
			"boxes", len(layout.Boxes),
			"cells", cells,
			"fill", fill)
	}
}

func (d *Driver) fatal(err error) error {
	d.deps.Log.Error(err, "fatal driver error")
	d.deps.Comm.Abort(err)
	return err
}
