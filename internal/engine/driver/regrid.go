package driver

import (
	"context"
	"time"

	"github.com/voltlab/strata/internal/core/ports"
	"go.trai.ch/zerr"
)

// Coordinator runs the staged regrid pipeline. The stage order is a memory
// contract, not a style choice: solver state is cached and freed before the
// mesh builds its (potentially larger) new layout, so two full copies of the
// hierarchy never coexist. Each stage fully completes before the next starts.
type Coordinator struct {
	agg       *Aggregator
	internals *Internals
	stepper   ports.TimeStepper
	tagger    ports.CellTagger
	mesh      ports.MeshHierarchy
	comm      ports.Comm
	log       ports.Logger
	tracer    ports.Tracer
	metrics   ports.Metrics
}

// NewCoordinator wires the regrid pipeline. All collaborators are borrowed.
func NewCoordinator(
	agg *Aggregator,
	internals *Internals,
	stepper ports.TimeStepper,
	tagger ports.CellTagger,
	mesh ports.MeshHierarchy,
	comm ports.Comm,
	log ports.Logger,
	tracer ports.Tracer,
	metrics ports.Metrics,
) *Coordinator {
	return &Coordinator{
		agg:       agg,
		internals: internals,
		stepper:   stepper,
		tagger:    tagger,
		mesh:      mesh,
		comm:      comm,
		log:       log,
		tracer:    tracer,
		metrics:   metrics,
	}
}

// Regrid recomputes the mesh for levels [lmin, lmax] if the tag set changed.
// Levels below lmin keep their layouts and at most one new finest level may
// appear. When the tagger reports nothing new this is an explicit no-op: no
// collaborator state is touched beyond an optional initial-data reseed.
//
// Any stage failure is fatal for the whole distributed job; the caller must
// route the error through Comm.Abort rather than continuing, because the
// other ranks are already inside (or headed into) the collective rebuild.
func (c *Coordinator) Regrid(ctx context.Context, lmin, lmax int, seedInitialData bool) error {
	ctx, span := c.tracer.Start(ctx, "driver.regrid")
	defer span.End()
	span.SetAttribute("lmin", lmin)
	span.SetAttribute("lmax", lmax)

	start := time.Now()

	changed, tags, err := c.agg.ComputeTags(ctx, c.internals.Tags())
	if err != nil {
		span.RecordError(err)
		return err
	}
	if !changed {
		c.log.Debug("no new cell tags, skipping regrid")
		if seedInitialData {
			if err := c.stepper.SeedInitialData(ctx); err != nil {
				span.RecordError(err)
				return zerr.Wrap(err, "initial data reseed failed")
			}
		}
		return nil
	}

	// Snapshot tag history so it survives the repartition, then cache and
	// free solver state ahead of the rebuild.
	if err := c.internals.CacheTags(); err != nil {
		span.RecordError(err)
		return err
	}
	if err := c.stepper.Cache(ctx); err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "stepper cache failed")
	}

	c.internals.Deallocate()
	c.stepper.Deallocate()

	oldFinest := c.mesh.FinestLevel()
	regionSize := c.stepper.RedistributionRegionSize()
	if err := c.mesh.Regrid(ctx, tags, lmin, lmax, regionSize, oldFinest+1); err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "mesh regrid failed")
	}
	newFinest := c.mesh.FinestLevel()

	c.internals.Allocate(c.mesh.Grids())
	if err := c.internals.Restore(ctx, c.comm, oldFinest, newFinest); err != nil {
		span.RecordError(err)
		return err
	}

	if err := c.stepper.Regrid(ctx, lmin, oldFinest, newFinest); err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "stepper regrid failed")
	}
	if seedInitialData {
		if err := c.stepper.SeedInitialData(ctx); err != nil {
			span.RecordError(err)
			return zerr.Wrap(err, "initial data reseed failed")
		}
	}

	if err := c.tagger.Regrid(ctx); err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "tagger regrid failed")
	}

	elapsed := time.Since(start)
	c.metrics.RegridDone(elapsed.Seconds())
	c.log.Info("regrid complete",
		"lmin", lmin,
		"lmax", lmax,
		"old_finest", oldFinest,
		"new_finest", newFinest,
		"duration", elapsed)

	return nil
}
