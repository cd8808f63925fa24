package domain

import "go.trai.ch/zerr"

// Config is the full configuration surface of a run. It is loaded once at
// startup and threaded explicitly through construction; no component reads
// process-wide state, so two independent drivers can coexist in one process.
type Config struct {
	Driver   DriverConfig   `yaml:"driver"`
	Mesh     MeshConfig     `yaml:"mesh"`
	Geometry GeometryConfig `yaml:"geometry"`
	Coarsen  []OverrideSpec `yaml:"coarsen"`
	Sim      SimConfig      `yaml:"sim"`
}

// DriverConfig controls the regrid, output and termination policy of the
// time loop.
type DriverConfig struct {
	RegridInterval     int      `yaml:"regrid_interval" validate:"gte=0"`
	InitialRegrids     int      `yaml:"initial_regrids" validate:"gte=0"`
	RecursiveRegrid    bool     `yaml:"recursive_regrid"`
	AllowCoarsening    bool     `yaml:"allow_coarsening"`
	GrowTags           int      `yaml:"grow_tags" validate:"gte=0"`
	MaxSteps           int      `yaml:"max_steps" validate:"gte=0"`
	StartTime          float64  `yaml:"start_time"`
	StopTime           float64  `yaml:"stop_time"`
	PlotInterval       int      `yaml:"plot_interval"`
	CheckpointInterval int      `yaml:"checkpoint_interval"`
	RestartStep        int      `yaml:"restart"`
	GeometryOnly       bool     `yaml:"geometry_only"`
	MaxPlotDepth       int      `yaml:"max_plot_depth"`
	MaxChkDepth        int      `yaml:"max_chk_depth"`
	OutputDirectory    string   `yaml:"output_directory"`
	OutputNames        string   `yaml:"output_names"`
	PlotVars           []string `yaml:"plot_vars" validate:"dive,oneof=tags mpi_rank"`
}

// Restart reports whether the run resumes from a checkpoint. A positive
// restart step selects the checkpoint file to resume from.
func (d DriverConfig) Restart() bool {
	return d.RestartStep > 0
}

// MeshConfig describes the level-0 index space and the refinement hierarchy
// the mesh collaborator may build over it.
type MeshConfig struct {
	Dim       int       `yaml:"dim" validate:"oneof=2 3"`
	Cells     []int     `yaml:"cells" validate:"min=1,dive,gt=0"`
	ProbLo    []float64 `yaml:"prob_lo"`
	ProbHi    []float64 `yaml:"prob_hi"`
	MaxDepth  int       `yaml:"max_depth" validate:"gte=0"`
	RefRatios []int     `yaml:"ref_ratios" validate:"dive,oneof=2 4"`
	BlockSize int       `yaml:"block_size" validate:"gt=0"`
	FillRatio float64   `yaml:"fill_ratio" validate:"gt=0,lte=1"`
}

// CoarsestDx returns the level-0 grid spacing implied by the domain extent.
func (m MeshConfig) CoarsestDx() float64 {
	return (m.ProbHi[0] - m.ProbLo[0]) / float64(m.Cells[0])
}

// DomainBox returns the level-0 index-space box.
func (m MeshConfig) DomainBox() Box {
	var b Box
	for i := 0; i < m.Dim; i++ {
		b.Hi[i] = m.Cells[i] - 1
	}
	return b
}

// Origin returns the physical domain origin.
func (m MeshConfig) Origin() RealVect {
	var p RealVect
	for i := 0; i < m.Dim && i < len(m.ProbLo); i++ {
		p[i] = m.ProbLo[i]
	}
	return p
}

// GeometryConfig controls the static geometric refinement markers.
type GeometryConfig struct {
	// RefineDepth is how many levels the geometric interface is tagged on.
	// Negative means all levels.
	RefineDepth int `yaml:"refine_depth"`
	// Growth dilates geometric tags so refinement boundaries never sit
	// directly on an interface cell. Clamped to at least 1.
	Growth int `yaml:"growth"`
}

// OverrideSpec is the YAML form of a CoarsenOverride.
type OverrideSpec struct {
	Lo    []float64 `yaml:"lo" validate:"min=2"`
	Hi    []float64 `yaml:"hi" validate:"min=2"`
	Level int       `yaml:"level" validate:"gte=0"`
}

// Override converts the spec to its domain form.
func (o OverrideSpec) Override() CoarsenOverride {
	var rb RealBox
	for i := 0; i < MaxDim; i++ {
		if i < len(o.Lo) {
			rb.Lo[i] = o.Lo[i]
		}
		if i < len(o.Hi) {
			rb.Hi[i] = o.Hi[i]
		}
	}
	return CoarsenOverride{Box: rb, MaxLevel: o.Level}
}

// SimConfig configures the bundled demonstration collaborators. Production
// deployments supply their own stepper and tagger and ignore this section.
type SimConfig struct {
	FrontSpeed float64   `yaml:"front_speed"`
	FrontWidth float64   `yaml:"front_width"`
	FrontStart []float64 `yaml:"front_start"`
	CFL        float64   `yaml:"cfl"`
	Buffer     int       `yaml:"buffer" validate:"gte=0"`
	Electrode  *RealBox  `yaml:"electrode"`
}

// ApplyDefaults fills unset fields with their documented defaults.
func (c *Config) ApplyDefaults() {
	d := &c.Driver
	if d.OutputDirectory == "" {
		d.OutputDirectory = "."
	}
	if d.OutputNames == "" {
		d.OutputNames = "simulation"
	}
	if d.MaxPlotDepth == 0 {
		d.MaxPlotDepth = -1
	}
	if d.MaxChkDepth == 0 {
		d.MaxChkDepth = -1
	}

	m := &c.Mesh
	if m.Dim == 0 {
		m.Dim = 2
	}
	if m.BlockSize == 0 {
		m.BlockSize = 8
	}
	if m.FillRatio == 0 {
		m.FillRatio = 0.7
	}
	if len(m.RefRatios) == 0 {
		m.RefRatios = make([]int, m.MaxDepth)
		for i := range m.RefRatios {
			m.RefRatios[i] = 2
		}
	}

	g := &c.Geometry
	if g.RefineDepth == 0 {
		g.RefineDepth = -1
	}
	if g.Growth < 1 {
		g.Growth = 1
	}

	s := &c.Sim
	if s.CFL == 0 {
		s.CFL = 0.5
	}
	if s.FrontSpeed == 0 {
		s.FrontSpeed = 1.0
	}
	if s.FrontWidth == 0 {
		s.FrontWidth = 0.05
	}
}

// CrossCheck verifies relationships between fields that struct tags cannot
// express.
func (c *Config) CrossCheck() error {
	m := c.Mesh
	if len(m.Cells) < m.Dim {
		return zerr.With(ErrConfiguration, "key", "mesh.cells")
	}
	if len(m.ProbLo) < m.Dim || len(m.ProbHi) < m.Dim {
		return zerr.With(ErrConfiguration, "key", "mesh.prob_lo/prob_hi")
	}
	for i := 0; i < m.Dim; i++ {
		if m.ProbHi[i] <= m.ProbLo[i] {
			return zerr.With(ErrConfiguration, "key", "mesh.prob_hi")
		}
	}
	if len(m.RefRatios) < m.MaxDepth {
		return zerr.With(ErrConfiguration, "key", "mesh.ref_ratios")
	}
	if c.Driver.StopTime < c.Driver.StartTime {
		return zerr.With(ErrConfiguration, "key", "driver.stop_time")
	}
	return nil
}

// Overrides converts every coarsen spec to its domain form.
func (c *Config) Overrides() []CoarsenOverride {
	overrides := make([]CoarsenOverride, 0, len(c.Coarsen))
	for _, spec := range c.Coarsen {
		overrides = append(overrides, spec.Override())
	}
	return overrides
}
