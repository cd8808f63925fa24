// Package app implements the application layer for strata.
package app

import (
	"context"

	"github.com/voltlab/strata/internal/adapters/comm"
	"github.com/voltlab/strata/internal/adapters/logger"
	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
	"go.trai.ch/zerr"
)

// RunOptions carries the per-invocation CLI knobs. Anything set here
// overrides the corresponding config file entry.
type RunOptions struct {
	ConfigPath   string
	GeometryOnly bool
	RestartStep  int
	Ranks        int
}

// App represents the main application logic: load a configuration, assemble
// a driver per rank and run it.
type App struct {
	loader      ports.ConfigLoader
	log         ports.Logger
	tracer      ports.Tracer
	metrics     ports.Metrics
	comm        ports.Comm
	checkpoints ports.CheckpointFactory
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	tracer ports.Tracer,
	metrics ports.Metrics,
	c ports.Comm,
	checkpoints ports.CheckpointFactory,
) *App {
	return &App{
		loader:      loader,
		log:         log,
		tracer:      tracer,
		metrics:     metrics,
		comm:        c,
		checkpoints: checkpoints,
	}
}

// Run executes one simulation. With Ranks > 1 the job runs as that many
// in-process ranks on a group comm; otherwise it runs on the injected comm.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if opts.ConfigPath == "" {
		return zerr.Wrap(domain.ErrConfiguration, "no config file given")
	}
	cfg, err := a.loader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if opts.GeometryOnly {
		cfg.Driver.GeometryOnly = true
	}
	if opts.RestartStep > 0 {
		cfg.Driver.RestartStep = opts.RestartStep
	}

	if opts.Ranks > 1 {
		return comm.Run(ctx, opts.Ranks, func(ctx context.Context, c ports.Comm) error {
			return a.runRank(ctx, cfg, c)
		})
	}
	return a.runRank(ctx, cfg, a.comm)
}

// runRank runs the full driver lifecycle on one rank. The config is shared
// and read-only from here on.
func (a *App) runRank(ctx context.Context, cfg *domain.Config, c ports.Comm) error {
	log := a.log
	if zl, ok := log.(*logger.Logger); ok {
		log = zl.WithRank(c.Rank())
	}

	d := Build(cfg, Stack{
		Log:         log,
		Tracer:      a.tracer,
		Metrics:     a.metrics,
		Comm:        c,
		Checkpoints: a.checkpoints,
	})

	if err := d.Setup(ctx); err != nil {
		return zerr.Wrap(err, "driver setup failed")
	}
	if err := d.Run(ctx); err != nil {
		return zerr.Wrap(err, "simulation failed")
	}

	clock := d.Clock()
	log.Info("run complete",
		"step", clock.Step,
		"time", clock.Time)
	return nil
}
