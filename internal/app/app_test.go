package app_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlab/strata/internal/adapters/comm"
	"github.com/voltlab/strata/internal/adapters/config"
	"github.com/voltlab/strata/internal/adapters/logger"
	"github.com/voltlab/strata/internal/adapters/store"
	"github.com/voltlab/strata/internal/adapters/telemetry"
	"github.com/voltlab/strata/internal/app"
	"github.com/voltlab/strata/internal/core/domain"
)

// writeRunConfig renders a small two-step run: one bootstrap regrid, a plot
// and a checkpoint after every step.
func writeRunConfig(t *testing.T, outputDir string) string {
	t.Helper()
	yaml := fmt.Sprintf(`
driver:
  initial_regrids: 1
  max_steps: 2
  stop_time: 1000.0
  plot_interval: 1
  checkpoint_interval: 1
  output_directory: %s
  output_names: sim
  plot_vars: [tags, mpi_rank]
mesh:
  dim: 2
  cells: [16, 16]
  prob_lo: [0.0, 0.0]
  prob_hi: [1.0, 1.0]
  max_depth: 1
  ref_ratios: [2]
  block_size: 8
  fill_ratio: 0.7
sim:
  front_speed: 2.0
  front_width: 0.05
  front_start: [0.53125, 0.0]
  cfl: 0.5
  buffer: 2
`, outputDir)
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func newTestApp() *app.App {
	log := logger.NewNop()
	return app.New(
		config.NewLoader(log),
		log,
		telemetry.NewNoOpTracer(),
		telemetry.NewNoOpMetrics(),
		comm.NewLocal(log),
		&store.Factory{},
	)
}

// checkpointState is the driver-owned content of one container.
type checkpointState struct {
	header domain.CheckpointHeader
	boxes  [][]domain.Box
	masks  [][]domain.MaskPatch
}

func readCheckpoint(t *testing.T, path string) checkpointState {
	t.Helper()
	chk, err := (&store.Factory{}).Open(path)
	require.NoError(t, err)

	header, err := chk.Header()
	require.NoError(t, err)

	s := checkpointState{header: header}
	for lvl := 0; lvl <= header.FinestLevel; lvl++ {
		boxes, err := chk.Boxes(lvl)
		require.NoError(t, err)
		mask, err := chk.TagMask(lvl)
		require.NoError(t, err)
		s.boxes = append(s.boxes, boxes)
		s.masks = append(s.masks, mask)
	}
	require.NoError(t, chk.Close())
	return s
}

// A rank group and a serial run of the same config must leave identical
// checkpoints behind: the group's single writer persists the gathered state
// of every rank, not just its own share.
func TestApp_GroupRunMatchesSerialRun(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	groupDir := t.TempDir()
	serialDir := t.TempDir()

	require.NoError(t, newTestApp().Run(ctx, app.RunOptions{
		ConfigPath: writeRunConfig(t, groupDir),
		Ranks:      2,
	}))
	require.NoError(t, newTestApp().Run(ctx, app.RunOptions{
		ConfigPath: writeRunConfig(t, serialDir),
	}))

	group := readCheckpoint(t, filepath.Join(groupDir, "chk", "sim.check0000002.2d"))
	serial := readCheckpoint(t, filepath.Join(serialDir, "chk", "sim.check0000002.2d"))

	assert.Equal(t, serial.header.Step, group.header.Step)
	assert.Equal(t, serial.header.Time, group.header.Time)
	assert.Equal(t, serial.header.Dt, group.header.Dt)
	assert.Equal(t, serial.header.FinestLevel, group.header.FinestLevel)
	assert.Equal(t, serial.boxes, group.boxes)
	assert.Equal(t, serial.masks, group.masks)

	// The run actually tagged something; an all-zero mask would make the
	// equality above vacuous.
	tagged := false
	for _, patch := range group.masks[0] {
		if bytes.ContainsRune(patch.Data, 1) {
			tagged = true
		}
	}
	assert.True(t, tagged, "level-0 tag mask is empty")

	// The plot and per-rank load reports for the final step are in place.
	_, err := os.Stat(filepath.Join(groupDir, "plt", "sim.step0000002.2d"))
	assert.NoError(t, err)
	for rank := 0; rank < 2; rank++ {
		_, err := os.Stat(filepath.Join(groupDir, "mpi", fmt.Sprintf("sim.rank%04d.step%07d", rank, 2)))
		assert.NoError(t, err)
	}
}
