package driver

import (
	"context"
	"math"

	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
	"go.trai.ch/zerr"
)

// stallFraction is the fatal floor for the time step, as a fraction of the
// very first dt of the run.
const stallFraction = 1.0e-5

// endTimeSlack treats a step that lands within this fraction of dt of the
// end time as the last step, so runs terminate instead of taking a residual
// sliver step.
const endTimeSlack = 1.0e-5

// Loop is the outer control loop: adaptive step sizing, the regrid trigger
// policy, output cadence and stall detection.
type Loop struct {
	cfg     domain.DriverConfig
	stepper ports.TimeStepper
	mesh    ports.MeshHierarchy
	comm    ports.Comm
	coord   *Coordinator
	out     *Output
	codec   *Codec
	log     ports.Logger
	metrics ports.Metrics

	restart bool
}

// NewLoop wires the time loop.
func NewLoop(
	cfg domain.DriverConfig,
	stepper ports.TimeStepper,
	mesh ports.MeshHierarchy,
	comm ports.Comm,
	coord *Coordinator,
	out *Output,
	codec *Codec,
	log ports.Logger,
	metrics ports.Metrics,
) *Loop {
	return &Loop{
		cfg:     cfg,
		stepper: stepper,
		mesh:    mesh,
		comm:    comm,
		coord:   coord,
		out:     out,
		codec:   codec,
		log:     log,
		metrics: metrics,
		restart: cfg.Restart(),
	}
}

// Run advances the simulation until endTime, maxSteps or a fatal stall. The
// clock is mutated in place so the caller sees the final state. Fatal
// conditions abort the whole distributed job through Comm.Abort; there are no
// retries anywhere.
func (l *Loop) Run(ctx context.Context, clock *Clock, startTime, endTime float64, maxSteps int) error {
	if maxSteps <= 0 {
		return nil
	}

	if !l.restart {
		clock.Time = startTime
		clock.Step = 0
	}

	dt, code, err := l.stepper.ComputeDt(ctx)
	if err != nil {
		return l.fatal(zerr.Wrap(err, "initial dt computation failed"))
	}
	clock.Dt = dt
	clock.Code = code
	l.stepper.SynchronizeTimes(clock.Step, clock.Time, clock.Dt)

	l.log.Info("starting time loop",
		"start_time", clock.Time,
		"end_time", endTime,
		"max_steps", maxSteps,
		"restart", l.restart)

	lastStep := false
	firstStep := true
	initDt := clock.Dt

	for clock.Time < endTime && clock.Step < maxSteps && !lastStep {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "time loop canceled")
		}

		if l.shouldRegrid(clock.Step) && !firstStep {
			lmin, lmax := l.regridWindow(clock.Step)
			if err := l.coord.Regrid(ctx, lmin, lmax, false); err != nil {
				return l.fatal(err)
			}
		}

		if !firstStep {
			dt, code, err := l.stepper.ComputeDt(ctx)
			if err != nil {
				return l.fatal(zerr.Wrap(err, "dt computation failed"))
			}
			clock.Dt = dt
			clock.Code = code
		}
		firstStep = false

		// A collapsing dt means the run cannot progress. Flush a final
		// plot and checkpoint so the state is diagnosable, then bring
		// the whole job down.
		if clock.Dt < stallFraction*initDt {
			clock.Step++
			l.flushFinalState(ctx, *clock)
			err := zerr.With(zerr.With(domain.ErrNumericalStall,
				"dt", clock.Dt),
				"initial_dt", initDt)
			return l.fatal(err)
		}

		// The last step may shrink so the run lands exactly on endTime.
		if clock.Time+clock.Dt > endTime {
			clock.Dt = endTime - clock.Time
			lastStep = true
		}

		actualDt, err := l.stepper.Advance(ctx, clock.Dt)
		if err != nil {
			return l.fatal(zerr.Wrap(err, "advance failed"))
		}

		clock.Dt = actualDt
		clock.Time += actualDt
		clock.Step++
		l.stepper.SynchronizeTimes(clock.Step, clock.Time, clock.Dt)
		l.metrics.StepAdvanced(actualDt)

		if math.Abs(clock.Time-endTime) < clock.Dt*endTimeSlack {
			lastStep = true
		}

		l.log.Info("step complete",
			"step", clock.Step,
			"time", clock.Time,
			"dt", clock.Dt)

		if l.cfg.PlotInterval > 0 && (clock.Step%l.cfg.PlotInterval == 0 || lastStep) {
			if err := l.out.WritePlot(ctx, *clock); err != nil {
				return l.fatal(err)
			}
			if err := l.out.WriteRankReport(*clock); err != nil {
				return l.fatal(err)
			}
		}
		if l.cfg.CheckpointInterval > 0 && (clock.Step%l.cfg.CheckpointInterval == 0 || lastStep) {
			if err := l.codec.Write(ctx, l.out.CheckpointPath(clock.Step), *clock); err != nil {
				return l.fatal(err)
			}
		}
	}

	l.stepper.Deallocate()
	l.log.Info("time loop finished", "step", clock.Step, "time", clock.Time)
	return nil
}

// shouldRegrid evaluates the regrid trigger: the interval policy, or the
// stepper forcing one. The very first iteration never regrids.
func (l *Loop) shouldRegrid(step int) bool {
	if l.mesh.MaxDepth() <= 0 || l.cfg.RegridInterval <= 0 {
		return false
	}
	if step%l.cfg.RegridInterval == 0 {
		return true
	}
	return l.stepper.NeedsRegrid()
}

// regridWindow computes the level range [lmin, lmax] for a regrid at the
// given step. Non-recursive: all of [1, finest]. Recursive: descending from
// the finest level, a level joins the window only when the step is a
// multiple of its accumulated refinement-scaled interval, so coarse levels
// regrid less often than fine ones. A stepper-forced regrid reuses whichever
// window this computes.
func (l *Loop) regridWindow(step int) (int, int) {
	finest := l.mesh.FinestLevel()
	if !l.cfg.RecursiveRegrid {
		return 1, finest
	}

	ratios := l.mesh.RefRatios()
	lmin := 1
	iref := 1
	for lvl := finest; lvl > 0; lvl-- {
		if step%(iref*l.cfg.RegridInterval) == 0 {
			lmin = lvl
		}
		iref *= ratios[lvl-1]
	}
	return lmin, finest
}

// flushFinalState writes a last plot and checkpoint on the stall path. Both
// are best effort: the abort happens regardless.
func (l *Loop) flushFinalState(ctx context.Context, clock Clock) {
	if err := l.out.WritePlot(ctx, clock); err != nil {
		l.log.Error(err, "final plot write failed")
	}
	if err := l.codec.Write(ctx, l.out.CheckpointPath(clock.Step), clock); err != nil {
		l.log.Error(err, "final checkpoint write failed")
	}
}

func (l *Loop) fatal(err error) error {
	l.log.Error(err, "fatal time loop error")
	l.comm.Abort(err)
	return err
}
