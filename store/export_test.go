package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caiosainvallio/simulations/epidemic"
	"github.com/caiosainvallio/simulations/models"
)

func sampleRun() (epidemic.Model, epidemic.Params, *epidemic.Trajectory) {
	m := models.NewSIR()
	params := m.DefaultParams()
	tr := &epidemic.Trajectory{
		Times: []float64{0, 5, 10},
		States: []epidemic.State{
			{0.99, 0.01, 0.0},
			{0.8, 0.15, 0.05},
			{0.6, 0.2, 0.2},
		},
	}
	return m, params, tr
}

func TestWriteJSON(t *testing.T) {
	m, params, tr := sampleRun()

	var buf bytes.Buffer
	metrics := map[string]float64{"r0": 5.0}
	require.NoError(t, WriteJSON(&buf, m, "covid-sp", params, tr, metrics))

	var data ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data), "output must be valid JSON")

	assert.Equal(t, "SIR", data.Model)
	assert.Equal(t, "covid-sp", data.Scenario)
	assert.Equal(t, 3, data.Steps)
	assert.Equal(t, 10.0, data.MaxTime)
	assert.Equal(t, []string{"S", "I", "R"}, data.Compartments)
	require.Len(t, data.States, 3)
	assert.Equal(t, 0.2, data.States[2][2])
	assert.Equal(t, 5.0, data.Metrics["r0"])
}

func TestWriteCSV(t *testing.T) {
	m, _, tr := sampleRun()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, m, tr))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4, "expected header plus 3 rows")
	assert.Equal(t, "time,S,I,R", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,0.99,0.01,0"), "first row = %q", lines[1])
}

func TestExportFiles(t *testing.T) {
	m, params, tr := sampleRun()
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "run.json")
	require.NoError(t, ExportJSON(jsonPath, m, "", params, tr, nil))
	_, err := os.Stat(jsonPath)
	assert.NoError(t, err, "json file missing")

	csvPath := filepath.Join(dir, "run.csv")
	require.NoError(t, ExportCSV(csvPath, m, tr))
	_, err = os.Stat(csvPath)
	assert.NoError(t, err, "csv file missing")
}
