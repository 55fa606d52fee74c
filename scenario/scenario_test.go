package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caiosainvallio/simulations/models"
)

func TestPresets_Structure(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			sc := Get(name)
			require.NotNil(t, sc, "preset listed but not found")

			assert.Equal(t, name, sc.Name, "preset name must match its key")
			assert.NotEmpty(t, sc.Description)

			_, err := models.New(sc.Model)
			assert.NoError(t, err, "preset references unknown model")

			for key, v := range sc.Params {
				assert.Greater(t, v, 0.0, "parameter %s must be positive", key)
			}

			total := 0.0
			for _, v := range sc.InitialConditions {
				total += v
			}
			assert.InDelta(t, 1.0, total, 1e-5, "initial conditions must sum to ~1")

			assert.Greater(t, sc.MaxTime, 0.0)
			assert.GreaterOrEqual(t, sc.Steps, 2)
		})
	}
}

func TestCovidPreset_R0(t *testing.T) {
	sc := Get("covid-sp")
	require.NotNil(t, sc)
	assert.InDelta(t, 3.14, sc.Params["beta"]/sc.Params["gamma"], 0.1)
}

func TestGet_Unknown(t *testing.T) {
	assert.Nil(t, Get("nonexistent"))
}

func TestGet_ReturnsIndependentCopy(t *testing.T) {
	first := Get("covid-sp")
	require.NotNil(t, first)
	pristineI := first.InitialConditions["I"]
	pristineBeta := first.Params["beta"]

	// A caller overlaying overrides must not contaminate later lookups.
	first.InitialConditions["I"] = 0.5
	first.Params["beta"] = 99.0
	first.Params["zeta"] = 1.0

	second := Get("covid-sp")
	require.NotNil(t, second)
	assert.Equal(t, pristineI, second.InitialConditions["I"])
	assert.Equal(t, pristineBeta, second.Params["beta"])
	assert.NotContains(t, second.Params, "zeta")
}

func TestClone_DeepCopiesMaps(t *testing.T) {
	original := &Scenario{
		Name:              "clone-check",
		Model:             "sir",
		Params:            map[string]float64{"beta": 0.3},
		InitialConditions: map[string]float64{"S": 0.99, "I": 0.01, "R": 0},
	}

	clone := original.Clone()
	clone.Params["beta"] = 0.9
	clone.InitialConditions["I"] = 0.4

	assert.Equal(t, 0.3, original.Params["beta"])
	assert.Equal(t, 0.01, original.InitialConditions["I"])
}

func TestLoadSave_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	original := &Scenario{
		Name:        "test",
		Model:       "sir-d",
		Description: "roundtrip check",
		Params:      map[string]float64{"beta": 0.3, "gamma": 0.1, "mu": 0.02},
		InitialConditions: map[string]float64{
			"S": 0.98, "I": 0.02, "R": 0.0, "D": 0.0,
		},
		MaxTime: 90,
		Steps:   90,
	}

	require.NoError(t, Save(path, original))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sir-d", loaded.Model)
	assert.Equal(t, 90.0, loaded.MaxTime)
	assert.Equal(t, 90, loaded.Steps)
	assert.Equal(t, 0.3, loaded.Params["beta"])
	assert.Equal(t, 0.02, loaded.InitialConditions["I"])
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minimal.yaml")
	minimal := []byte("model: sir\nparams:\n  beta: 0.4\n  gamma: 0.1\n")
	require.NoError(t, os.WriteFile(path, minimal, 0644))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxTime, sc.MaxTime)
	assert.Equal(t, DefaultSteps, sc.Steps)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
