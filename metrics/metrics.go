// Package metrics computes summary epidemiological statistics from a
// solved trajectory.
package metrics

import (
	"fmt"

	"github.com/caiosainvallio/simulations/epidemic"
)

// susceptibleIndex holds the convention shared by every variant here:
// the susceptible compartment is always index 0.
const susceptibleIndex = 0

// infectiousName is the compartment holding currently infectious
// individuals, common to all variants.
const infectiousName = "I"

// BasicReproduction evaluates the model's closed-form R0.
func BasicReproduction(m epidemic.Model, p epidemic.Params) (float64, error) {
	return m.R0(p)
}

// EffectiveSeries returns Rt = R0 * S(t) for every sample. This is an
// approximation valid for single-route-of-infection models; for
// SEWIR-F it knowingly ignores the E/W loop's effect on the true
// effective number.
func EffectiveSeries(tr *epidemic.Trajectory, r0 float64) []float64 {
	out := make([]float64, tr.Len())
	for i, s := range tr.States {
		out[i] = r0 * s[susceptibleIndex]
	}
	return out
}

// Peak locates the maximum of the infectious compartment.
type Peak struct {
	Index int
	Time  float64
	Value float64
}

// PeakInfection scans the trajectory for the highest I value. Ties
// resolve to the earliest sample.
func PeakInfection(m epidemic.Model, tr *epidemic.Trajectory) (Peak, error) {
	idx := -1
	for i, name := range m.Compartments() {
		if name == infectiousName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Peak{}, fmt.Errorf("metrics: model %s has no %q compartment", m.Name(), infectiousName)
	}
	if tr.Len() == 0 {
		return Peak{}, fmt.Errorf("metrics: empty trajectory")
	}

	peak := Peak{Index: 0, Time: tr.Times[0], Value: tr.States[0][idx]}
	for i := 1; i < tr.Len(); i++ {
		if v := tr.States[i][idx]; v > peak.Value {
			peak = Peak{Index: i, Time: tr.Times[i], Value: v}
		}
	}
	return peak, nil
}

// AttackRate is the fraction of the initially susceptible population
// that left S by the end of the run.
func AttackRate(tr *epidemic.Trajectory) float64 {
	if tr.Len() == 0 {
		return 0
	}
	s0 := tr.States[0][susceptibleIndex]
	if s0 == 0 {
		return 0
	}
	return 1.0 - tr.Final()[susceptibleIndex]/s0
}

// Report bundles the headline numbers the presentation layer shows for
// one solved run.
type Report struct {
	R0         float64
	RtEnd      float64
	Peak       Peak
	AttackRate float64
}

func Summarize(m epidemic.Model, p epidemic.Params, tr *epidemic.Trajectory) (Report, error) {
	r0, err := BasicReproduction(m, p)
	if err != nil {
		return Report{}, err
	}
	peak, err := PeakInfection(m, tr)
	if err != nil {
		return Report{}, err
	}
	rt := EffectiveSeries(tr, r0)
	return Report{
		R0:         r0,
		RtEnd:      rt[len(rt)-1],
		Peak:       peak,
		AttackRate: AttackRate(tr),
	}, nil
}
