package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
	"go.trai.ch/zerr"
)

// Output owns the on-disk layout of a run: the {plt,chk,geo,mpi} directories
// under the output root, the step-stamped file names and the plot writer.
type Output struct {
	root    string
	prefix  string
	dim     int
	maxPlot int
	vars    []string

	mesh      ports.MeshHierarchy
	stepper   ports.TimeStepper
	internals *Internals
	comm      ports.Comm
	log       ports.Logger
	metrics   ports.Metrics
}

// NewOutput wires the output pathing and plot writer.
func NewOutput(
	cfg domain.Config,
	mesh ports.MeshHierarchy,
	stepper ports.TimeStepper,
	internals *Internals,
	comm ports.Comm,
	log ports.Logger,
	metrics ports.Metrics,
) *Output {
	return &Output{
		root:      cfg.Driver.OutputDirectory,
		prefix:    cfg.Driver.OutputNames,
		dim:       cfg.Mesh.Dim,
		maxPlot:   cfg.Driver.MaxPlotDepth,
		vars:      cfg.Driver.PlotVars,
		mesh:      mesh,
		stepper:   stepper,
		internals: internals,
		comm:      comm,
		log:       log,
		metrics:   metrics,
	}
}

// EnsureDirs creates the output directory tree. Rank 0 creates, everyone
// waits at the barrier so no rank races ahead and writes into a directory
// that does not exist yet.
func (o *Output) EnsureDirs(ctx context.Context) error {
	if o.comm.Rank() == 0 {
		for _, sub := range []string{"plt", "chk", "geo", "mpi"} {
			if err := os.MkdirAll(filepath.Join(o.root, sub), 0o750); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create output directory"), "dir", sub)
			}
		}
	}
	return o.comm.Barrier(ctx)
}

// PlotPath returns the plot file path for a step.
func (o *Output) PlotPath(step int) string {
	return filepath.Join(o.root, "plt", fmt.Sprintf("%s.step%07d.%dd", o.prefix, step, o.dim))
}

// CheckpointPath returns the checkpoint container path for a step.
func (o *Output) CheckpointPath(step int) string {
	return filepath.Join(o.root, "chk", fmt.Sprintf("%s.check%07d.%dd", o.prefix, step, o.dim))
}

type plotHeader struct {
	Time        float64  `json:"time"`
	Dt          float64  `json:"dt"`
	Step        int      `json:"step"`
	FinestLevel int      `json:"finest_level"`
	Vars        []string `json:"vars"`
}

type plotLevel struct {
	Boxes  []domain.Box   `json:"boxes"`
	Fields map[string]any `json:"fields"`
}

type plotFile struct {
	Header plotHeader  `json:"header"`
	Levels []plotLevel `json:"levels"`
}

// levelWriter implements ports.PlotLevelWriter for one level.
type levelWriter struct {
	fields map[string]any
}

func (w *levelWriter) PutField(name string, patches []domain.MaskPatch) error {
	w.fields[name] = patches
	return nil
}

func (w *levelWriter) PutRealField(name string, boxes []domain.Box, data [][]float64) error {
	type realPatch struct {
		Box  domain.Box `json:"box"`
		Data []float64  `json:"data"`
	}
	patches := make([]realPatch, len(boxes))
	for i := range boxes {
		patches[i] = realPatch{Box: boxes[i], Data: data[i]}
	}
	w.fields[name] = patches
	return nil
}

// WritePlot emits one plot file: the stepper's fields for every level up to
// the configured plot depth, plus the driver's own tag and rank fields when
// they are selected. Every rank participates in the tag gather; rank 0 alone
// writes the file and everyone meets at the trailing barrier.
func (o *Output) WritePlot(ctx context.Context, clock Clock) error {
	start := time.Now()

	finest := o.mesh.FinestLevel()
	top := finest
	if o.maxPlot >= 0 {
		top = min(o.maxPlot, finest)
	}

	grids := o.mesh.Grids()

	// The tag field covers the whole layout, but each rank only holds the
	// bitmaps of its owned patches. Gather before the single writer runs.
	var tagMasks [][]domain.MaskPatch
	if o.plotVar("tags") {
		tagMasks = make([][]domain.MaskPatch, top+1)
		for lvl := 0; lvl <= top; lvl++ {
			all, err := o.comm.AllGatherCells(ctx, o.internals.Tags().LocalCells(lvl).Cells())
			if err != nil {
				return zerr.With(zerr.Wrap(err, "plot tag gather failed"), "level", lvl)
			}
			tagMasks[lvl] = domain.EncodeMask(grids[lvl].Boxes, domain.NewCellSet(all...))
		}
	}

	if o.comm.Rank() == 0 {
		if err := o.writePlotFile(ctx, clock, grids, tagMasks, top); err != nil {
			return err
		}
		o.metrics.PlotWritten(time.Since(start).Seconds())
		o.log.Info("wrote plot file", "path", o.PlotPath(clock.Step), "step", clock.Step)
	}
	return o.comm.Barrier(ctx)
}

func (o *Output) writePlotFile(
	ctx context.Context,
	clock Clock,
	grids []domain.Layout,
	tagMasks [][]domain.MaskPatch,
	top int,
) error {
	vars := slices.Clone(o.stepper.PlotVarNames())
	if o.plotVar("tags") {
		vars = append(vars, "cell_tags")
	}
	if o.plotVar("mpi_rank") {
		vars = append(vars, "mpi_rank")
	}

	file := plotFile{
		Header: plotHeader{
			Time:        clock.Time,
			Dt:          clock.Dt,
			Step:        clock.Step,
			FinestLevel: top,
			Vars:        vars,
		},
	}

	for lvl := 0; lvl <= top; lvl++ {
		w := &levelWriter{fields: make(map[string]any)}
		if err := o.stepper.WritePlotLevel(ctx, w, lvl); err != nil {
			return zerr.With(zerr.Wrap(err, "stepper plot write failed"), "level", lvl)
		}
		if o.plotVar("tags") {
			if err := w.PutField("cell_tags", tagMasks[lvl]); err != nil {
				return err
			}
		}
		if o.plotVar("mpi_rank") {
			o.putRanks(w, grids[lvl])
		}
		file.Levels = append(file.Levels, plotLevel{Boxes: grids[lvl].Boxes, Fields: w.fields})
	}

	path := o.PlotPath(clock.Step)
	data, err := json.Marshal(file)
	if err != nil {
		return zerr.Wrap(err, "failed to encode plot file")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write plot file"), "path", path)
	}
	return nil
}

func (o *Output) putRanks(w *levelWriter, layout domain.Layout) {
	data := make([][]float64, len(layout.Boxes))
	for i, b := range layout.Boxes {
		patch := make([]float64, b.NumCells())
		for j := range patch {
			patch[j] = float64(layout.Owners[i])
		}
		data[i] = patch
	}
	_ = w.PutRealField("mpi_rank", layout.Boxes, data)
}

func (o *Output) plotVar(name string) bool {
	return slices.Contains(o.vars, name)
}

// rankReport is one rank's load snapshot: its share of the hierarchy and the
// process heap at the time of writing.
type rankReport struct {
	Rank      int             `json:"rank"`
	Step      int             `json:"step"`
	Time      float64         `json:"time"`
	HeapBytes uint64          `json:"heap_bytes"`
	Levels    []rankLevelLoad `json:"levels"`
}

type rankLevelLoad struct {
	Level int   `json:"level"`
	Boxes int   `json:"boxes"`
	Cells int64 `json:"cells"`
}

// WriteRankReport writes this rank's load snapshot under mpi/. The file name
// carries the rank, so every rank writes its own file without coordination.
func (o *Output) WriteRankReport(clock Clock) error {
	rank := o.comm.Rank()
	report := rankReport{Rank: rank, Step: clock.Step, Time: clock.Time}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	report.HeapBytes = ms.HeapAlloc

	for lvl, layout := range o.mesh.Grids() {
		load := rankLevelLoad{Level: lvl}
		for _, i := range layout.OwnedIndices(rank) {
			load.Boxes++
			load.Cells += layout.Boxes[i].NumCells()
		}
		report.Levels = append(report.Levels, load)
	}

	data, err := json.Marshal(report)
	if err != nil {
		return zerr.Wrap(err, "failed to encode rank report")
	}
	path := o.RankReportPath(rank, clock.Step)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write rank report"), "path", path)
	}
	return nil
}

// RankReportPath returns the per-rank load report path for a step.
func (o *Output) RankReportPath(rank, step int) string {
	return filepath.Join(o.root, "mpi", fmt.Sprintf("%s.rank%04d.step%07d", o.prefix, rank, step))
}

type geoTagLevel struct {
	Level int              `json:"level"`
	Cells []domain.IntVect `json:"cells"`
}

// WriteGeoTags dumps the static geometry-derived refinement markers under
// geo/, so grid placement around the geometry can be inspected without
// opening a plot. The markers are replicated on every rank by construction;
// rank 0 writes once and everyone meets at the barrier.
func (o *Output) WriteGeoTags(ctx context.Context, geo domain.GeoTags) error {
	if o.comm.Rank() == 0 {
		levels := make([]geoTagLevel, 0, len(geo))
		for lvl := range geo {
			cells := geo.Level(lvl)
			if cells.IsEmpty() {
				continue
			}
			levels = append(levels, geoTagLevel{Level: lvl, Cells: cells.Cells()})
		}
		data, err := json.Marshal(levels)
		if err != nil {
			return zerr.Wrap(err, "failed to encode geometry tags")
		}
		path := o.GeoTagsPath()
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write geometry tags"), "path", path)
		}
		o.log.Info("wrote geometry tags", "path", path, "levels", len(levels))
	}
	return o.comm.Barrier(ctx)
}

// GeoTagsPath returns the geometry tag dump path.
func (o *Output) GeoTagsPath() string {
	return filepath.Join(o.root, "geo", fmt.Sprintf("%s.geotags.%dd", o.prefix, o.dim))
}
