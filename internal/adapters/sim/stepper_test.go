package sim_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlab/strata/internal/adapters/comm"
	"github.com/voltlab/strata/internal/adapters/logger"
	"github.com/voltlab/strata/internal/adapters/mesh"
	"github.com/voltlab/strata/internal/adapters/sim"
	"github.com/voltlab/strata/internal/adapters/store"
	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
)

// simConfig places the front peak exactly on the center of cell x=8, so the
// sampled field attains 1.0 there and nowhere else.
func simConfig() domain.Config {
	return domain.Config{
		Mesh: domain.MeshConfig{
			Dim:       2,
			Cells:     []int{16, 16},
			ProbLo:    []float64{0, 0},
			ProbHi:    []float64{1, 1},
			MaxDepth:  1,
			RefRatios: []int{2},
			BlockSize: 8,
			FillRatio: 0.7,
		},
		Sim: domain.SimConfig{
			FrontSpeed: 2.0,
			FrontWidth: 0.05,
			FrontStart: []float64{0.53125, 0},
			CFL:        0.5,
			Buffer:     2,
		},
	}
}

func newStepper(cfg domain.Config) (*sim.FrontStepper, *mesh.Hierarchy) {
	c := comm.NewLocal(logger.NewNop())
	h := mesh.New(cfg.Mesh, c, logger.NewNop())
	return sim.NewFrontStepper(cfg, h, c, logger.NewNop()), h
}

// plotCapture records the last PutRealField call so tests can inspect the
// stepper's field without exported state.
type plotCapture struct {
	boxes []domain.Box
	data  [][]float64
}

func (p *plotCapture) PutField(string, []domain.MaskPatch) error { return nil }

func (p *plotCapture) PutRealField(_ string, boxes []domain.Box, data [][]float64) error {
	p.boxes = boxes
	p.data = data
	return nil
}

// peakX returns the x index of the largest captured value and the value
// itself.
func (p *plotCapture) peakX() (int, float64) {
	bestX := -1
	best := -1.0
	for j, vals := range p.data {
		b := p.boxes[j]
		nx := b.Size(0)
		for k, v := range vals {
			if v > best {
				best = v
				bestX = b.Lo[0] + k%nx
			}
		}
	}
	return bestX, best
}

func TestFrontStepper_ComputeDt(t *testing.T) {
	t.Parallel()

	s, _ := newStepper(simConfig())
	dt, code, err := s.ComputeDt(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ports.TimeCodeAdvection, code)
	// cfl * dx / speed on the finest level, here level 0.
	assert.InDelta(t, 0.5*0.0625/2.0, dt, 1e-15)
}

func TestFrontStepper_SeedSamplesAnalyticField(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newStepper(simConfig())
	require.NoError(t, s.SetupSolvers(ctx))
	require.NoError(t, s.SeedInitialData(ctx))

	var rec plotCapture
	require.NoError(t, s.WritePlotLevel(ctx, &rec, 0))
	require.Len(t, rec.boxes, 4, "single rank owns all level-0 tiles")

	x, peak := rec.peakX()
	assert.Equal(t, 8, x)
	assert.Equal(t, 1.0, peak)
}

func TestFrontStepper_AdvanceMovesFront(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newStepper(simConfig())
	require.NoError(t, s.SetupSolvers(ctx))
	require.NoError(t, s.SeedInitialData(ctx))

	// speed * dt equals one cell width, so the peak lands on the next
	// cell center.
	taken, err := s.Advance(ctx, 0.03125)
	require.NoError(t, err)
	assert.InDelta(t, 0.03125, taken, 1e-15)
	assert.InDelta(t, 0.03125, s.Time(), 1e-15)

	var rec plotCapture
	require.NoError(t, s.WritePlotLevel(ctx, &rec, 0))
	x, peak := rec.peakX()
	assert.Equal(t, 9, x)
	assert.Equal(t, 1.0, peak)
}

func TestFrontStepper_RegridRequiresCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newStepper(simConfig())
	require.NoError(t, s.SetupSolvers(ctx))

	err := s.Regrid(ctx, 0, 0, 0)
	require.ErrorIs(t, err, domain.ErrSanityCheck)

	require.NoError(t, s.Cache(ctx))
	s.Deallocate()
	require.NoError(t, s.Regrid(ctx, 0, 0, 0))

	// The cache flag is consumed by the regrid.
	err = s.Regrid(ctx, 0, 0, 0)
	require.ErrorIs(t, err, domain.ErrSanityCheck)
}

func TestFrontStepper_CheckpointRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := simConfig()

	s, _ := newStepper(cfg)
	require.NoError(t, s.SetupSolvers(ctx))
	require.NoError(t, s.SeedInitialData(ctx))

	f := &store.Factory{}
	chk, err := f.Create(filepath.Join(t.TempDir(), "state.chk"))
	require.NoError(t, err)
	require.NoError(t, s.WriteCheckpointLevel(ctx, chk, 0))

	r, _ := newStepper(cfg)
	require.NoError(t, r.ReadCheckpointLevel(ctx, chk, 0))
	require.NoError(t, chk.Close())

	var want, got plotCapture
	require.NoError(t, s.WritePlotLevel(ctx, &want, 0))
	require.NoError(t, r.WritePlotLevel(ctx, &got, 0))
	assert.Equal(t, want.data, got.data)
}

func TestFrontStepper_ReadResamplesOnPartitionMismatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := simConfig()

	f := &store.Factory{InMemory: true}
	chk, err := f.Create("")
	require.NoError(t, err)

	// A checkpoint written by a job with a different rank count carries a
	// different patch split. The stepper falls back to resampling.
	foreign, err := json.Marshal([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	require.NoError(t, chk.PutBlob(0, "phi", foreign))

	r, _ := newStepper(cfg)
	r.SynchronizeTimes(0, 0, 0)
	require.NoError(t, r.ReadCheckpointLevel(ctx, chk, 0))
	require.NoError(t, chk.Close())

	var got plotCapture
	require.NoError(t, r.WritePlotLevel(ctx, &got, 0))
	x, peak := got.peakX()
	assert.Equal(t, 8, x)
	assert.Equal(t, 1.0, peak)
}

func TestFrontStepper_ReadRejectsCorruptBlob(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	f := &store.Factory{InMemory: true}
	chk, err := f.Create("")
	require.NoError(t, err)
	require.NoError(t, chk.PutBlob(0, "phi", []byte("not json")))

	r, _ := newStepper(simConfig())
	err = r.ReadCheckpointLevel(ctx, chk, 0)
	require.ErrorIs(t, err, domain.ErrCheckpointFormat)
	require.NoError(t, chk.Close())
}

func TestFrontStepper_Accessors(t *testing.T) {
	t.Parallel()

	s, _ := newStepper(simConfig())
	assert.Equal(t, 2, s.RedistributionRegionSize())
	assert.Equal(t, []string{"phi"}, s.PlotVarNames())
	assert.False(t, s.NeedsRegrid())
}
