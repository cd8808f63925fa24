package app

import (
	"github.com/voltlab/strata/internal/adapters/mesh"
	"github.com/voltlab/strata/internal/adapters/sim"
	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
	"github.com/voltlab/strata/internal/engine/driver"
)

// Stack is the ambient half of a driver's collaborators: everything that can
// exist before a configuration is loaded.
type Stack struct {
	Log         ports.Logger
	Tracer      ports.Tracer
	Metrics     ports.Metrics
	Comm        ports.Comm
	Checkpoints ports.CheckpointFactory
}

// Build assembles a driver for one rank: the mesh hierarchy plus the bundled
// simulation collaborators, all constructed from the loaded config. The
// domain half of the stack depends on the config, which is why it is built
// here rather than injected.
func Build(cfg *domain.Config, s Stack) *driver.Driver {
	hierarchy := mesh.New(cfg.Mesh, s.Comm, s.Log)
	stepper := sim.NewFrontStepper(*cfg, hierarchy, s.Comm, s.Log)
	tagger := sim.NewFrontTagger(*cfg, hierarchy, stepper.Time)
	geometry := sim.NewElectrode(*cfg, hierarchy)

	return driver.New(*cfg, driver.Deps{
		Log:         s.Log,
		Tracer:      s.Tracer,
		Metrics:     s.Metrics,
		Comm:        s.Comm,
		Mesh:        hierarchy,
		Stepper:     stepper,
		Tagger:      tagger,
		Geometry:    geometry,
		Checkpoints: s.Checkpoints,
	})
}

// Components contains the initialized application components the CLI layer
// is allowed to touch.
type Components struct {
	App    *App
	Logger ports.Logger
}
