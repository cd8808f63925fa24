package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlab/strata/internal/core/domain"
)

func validConfig() domain.Config {
	cfg := domain.Config{
		Mesh: domain.MeshConfig{
			Dim:      2,
			Cells:    []int{16, 16},
			ProbLo:   []float64{0, 0},
			ProbHi:   []float64{1, 1},
			MaxDepth: 2,
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestConfig_ApplyDefaults(t *testing.T) {
	t.Parallel()

	cfg := validConfig()

	assert.Equal(t, ".", cfg.Driver.OutputDirectory)
	assert.Equal(t, "simulation", cfg.Driver.OutputNames)
	assert.Equal(t, -1, cfg.Driver.MaxPlotDepth)
	assert.Equal(t, -1, cfg.Driver.MaxChkDepth)
	assert.Equal(t, 8, cfg.Mesh.BlockSize)
	assert.InDelta(t, 0.7, cfg.Mesh.FillRatio, 1e-15)
	assert.Equal(t, []int{2, 2}, cfg.Mesh.RefRatios)
	assert.Equal(t, -1, cfg.Geometry.RefineDepth)
	assert.Equal(t, 1, cfg.Geometry.Growth)
	assert.InDelta(t, 0.5, cfg.Sim.CFL, 1e-15)
}

func TestConfig_CrossCheck(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		require.NoError(t, cfg.CrossCheck())
	})

	t.Run("too few cells", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Mesh.Cells = []int{16}
		assert.ErrorIs(t, cfg.CrossCheck(), domain.ErrConfiguration)
	})

	t.Run("inverted extent", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Mesh.ProbHi = []float64{0, 1}
		assert.ErrorIs(t, cfg.CrossCheck(), domain.ErrConfiguration)
	})

	t.Run("missing ref ratios", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Mesh.RefRatios = []int{2}
		assert.ErrorIs(t, cfg.CrossCheck(), domain.ErrConfiguration)
	})

	t.Run("stop before start", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Driver.StartTime = 1
		cfg.Driver.StopTime = 0.5
		assert.ErrorIs(t, cfg.CrossCheck(), domain.ErrConfiguration)
	})
}

func TestMeshConfig_DerivedGeometry(t *testing.T) {
	t.Parallel()

	m := domain.MeshConfig{
		Dim:    2,
		Cells:  []int{16, 32},
		ProbLo: []float64{-1, 0},
		ProbHi: []float64{1, 4},
	}

	assert.InDelta(t, 0.125, m.CoarsestDx(), 1e-15)
	assert.Equal(t, domain.NewBox(domain.IntVect{0, 0, 0}, domain.IntVect{15, 31, 0}), m.DomainBox())
	assert.Equal(t, domain.RealVect{-1, 0, 0}, m.Origin())
}

func TestDriverConfig_Restart(t *testing.T) {
	t.Parallel()

	assert.False(t, domain.DriverConfig{}.Restart())
	assert.True(t, domain.DriverConfig{RestartStep: 40}.Restart())
}
