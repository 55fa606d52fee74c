// Package solver drives any epidemic.Model through a numerical ODE
// solve, sampling the solution on a fixed time grid.
package solver

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/caiosainvallio/simulations/epidemic"
)

const (
	defaultTolerance = 1e-9

	safety   = 0.9
	minScale = 0.2
	maxScale = 10.0
)

// Engine integrates one model. It holds only read-only configuration,
// so a single Engine may run solves from multiple goroutines.
type Engine struct {
	model epidemic.Model
	tol   float64
}

func New(model epidemic.Model) *Engine {
	return &Engine{model: model, tol: defaultTolerance}
}

// NewWithTolerance overrides the per-step local error tolerance.
func NewWithTolerance(model epidemic.Model, tol float64) *Engine {
	return &Engine{model: model, tol: tol}
}

// Solve integrates the model from the given initial conditions and
// returns a trajectory of exactly stepCount samples equally spaced over
// [0, maxTime], endpoints included.
//
// Initial-condition keys must exactly match the model's compartment
// names; the engine reorders them into the model's index order. A
// missing parameter surfaces as epidemic.MissingParameterError, a
// solver breakdown as epidemic.IntegrationError carrying the failing
// time.
func (e *Engine) Solve(initial map[string]float64, params epidemic.Params, maxTime float64, stepCount int) (*epidemic.Trajectory, error) {
	if stepCount < 2 {
		return nil, fmt.Errorf("solver: step count must be at least 2, got %d", stepCount)
	}
	if maxTime <= 0 {
		return nil, fmt.Errorf("solver: max time must be positive, got %g", maxTime)
	}

	y0, err := OrderInitial(e.model, initial)
	if err != nil {
		return nil, err
	}

	times := make([]float64, stepCount)
	states := make([]epidemic.State, stepCount)
	for i := range times {
		times[i] = maxTime * float64(i) / float64(stepCount-1)
	}
	states[0] = y0.Clone()

	y := y0.Clone()
	dt := maxTime / float64(stepCount-1) / 10.0
	minStep := maxTime * 1e-14

	for i := 1; i < stepCount; i++ {
		y, dt, err = e.advance(times[i-1], times[i], y, params, dt, minStep)
		if err != nil {
			return nil, err
		}
		states[i] = y.Clone()
	}

	logrus.Debugf("solved %s: %d samples over [0, %g]", e.model.Name(), stepCount, maxTime)
	return &epidemic.Trajectory{Times: times, States: states}, nil
}

// advance integrates from t to target with adaptive step control,
// clamping the last step to land exactly on target. It returns the
// state at target and the step size to try next.
func (e *Engine) advance(t, target float64, y epidemic.State, params epidemic.Params, dt, minStep float64) (epidemic.State, float64, error) {
	for t < target {
		h := dt
		last := h >= target-t
		if last {
			h = target - t
		}

		yNew, errRatio, err := dopriStep(e.model, t, y, params, h, e.tol)
		if err != nil {
			return nil, 0, err
		}

		if math.IsNaN(errRatio) || !yNew.IsValid() {
			dt = h * minScale
			if dt < minStep {
				return nil, 0, &epidemic.IntegrationError{Time: t, Message: "state is not finite"}
			}
			continue
		}

		if errRatio > 1 {
			dt = h * math.Max(minScale, safety*math.Pow(errRatio, -0.25))
			if dt < minStep {
				return nil, 0, &epidemic.IntegrationError{Time: t, Message: "step size underflow"}
			}
			continue
		}

		y = yNew
		if last {
			t = target
		} else {
			t += h
		}
		if errRatio > 0 {
			dt = h * math.Min(maxScale, safety*math.Pow(errRatio, -0.2))
		} else {
			dt = h * maxScale
		}
	}
	return y, dt, nil
}

// OrderInitial maps the named initial conditions onto the model's fixed
// compartment order. The key set must exactly match the model's
// compartments; any mismatch is reported as UnknownCompartmentError.
func OrderInitial(m epidemic.Model, initial map[string]float64) (epidemic.State, error) {
	comps := m.Compartments()

	var missing []string
	y := make(epidemic.State, len(comps))
	for i, name := range comps {
		v, ok := initial[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		y[i] = v
	}

	var extra []string
	if len(initial) != len(comps)-len(missing) {
		known := make(map[string]bool, len(comps))
		for _, name := range comps {
			known[name] = true
		}
		for name := range initial {
			if !known[name] {
				extra = append(extra, name)
			}
		}
	}

	if len(missing) > 0 || len(extra) > 0 {
		return nil, &epidemic.UnknownCompartmentError{
			Model:   m.Name(),
			Missing: missing,
			Extra:   extra,
		}
	}
	return y, nil
}

// NormalizationGap reports how far the initial conditions are from
// summing to one. Unnormalized conditions are legal (models also run on
// raw counts); callers may use the gap to warn the user.
func NormalizationGap(initial map[string]float64) float64 {
	total := 0.0
	for _, v := range initial {
		total += v
	}
	return math.Abs(total - 1.0)
}
