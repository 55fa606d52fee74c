// Package store serializes solved runs to JSON and CSV.
package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/caiosainvallio/simulations/epidemic"
)

// ExportData is the on-disk shape of one solved run.
type ExportData struct {
	Model        string             `json:"model"`
	Scenario     string             `json:"scenario,omitempty"`
	MaxTime      float64            `json:"max_time"`
	Steps        int                `json:"steps"`
	Params       map[string]float64 `json:"params"`
	Compartments []string           `json:"compartments"`
	Times        []float64          `json:"times"`
	States       [][]float64        `json:"states"`
	Metrics      map[string]float64 `json:"metrics,omitempty"`
}

func newExportData(m epidemic.Model, scenario string, params epidemic.Params, tr *epidemic.Trajectory, metrics map[string]float64) ExportData {
	states := make([][]float64, tr.Len())
	for i, s := range tr.States {
		states[i] = s
	}
	return ExportData{
		Model:        m.Name(),
		Scenario:     scenario,
		MaxTime:      tr.Times[tr.Len()-1],
		Steps:        tr.Len(),
		Params:       params,
		Compartments: m.Compartments(),
		Times:        tr.Times,
		States:       states,
		Metrics:      metrics,
	}
}

// WriteJSON streams one run as indented JSON.
func WriteJSON(w io.Writer, m epidemic.Model, scenario string, params epidemic.Params, tr *epidemic.Trajectory, metrics map[string]float64) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(m, scenario, params, tr, metrics))
}

// ExportJSON writes one run to a file as indented JSON.
func ExportJSON(path string, m epidemic.Model, scenario string, params epidemic.Params, tr *epidemic.Trajectory, metrics map[string]float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, m, scenario, params, tr, metrics)
}

// WriteCSV streams one run as a time,compartment... table.
func WriteCSV(w io.Writer, m epidemic.Model, tr *epidemic.Trajectory) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := append([]string{"time"}, m.Compartments()...)
	if err := writer.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i := 0; i < tr.Len(); i++ {
		t, s := tr.At(i)
		row[0] = strconv.FormatFloat(t, 'g', -1, 64)
		for j, v := range s {
			row[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return writer.Error()
}

// ExportCSV writes one run to a CSV file.
func ExportCSV(path string, m epidemic.Model, tr *epidemic.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, m, tr)
}
