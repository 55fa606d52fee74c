package solver

import (
	"math"
	"testing"

	"github.com/caiosainvallio/simulations/epidemic"
	"github.com/caiosainvallio/simulations/models"
)

// decay is dX/dt = -rate*X, the simplest system with a closed form.
type decay struct{}

func (*decay) Name() string                   { return "decay" }
func (*decay) Description() string            { return "exponential decay" }
func (*decay) Compartments() []string         { return []string{"X"} }
func (*decay) DefaultParams() epidemic.Params { return epidemic.Params{"rate": 1.0} }
func (*decay) ParamDocs() map[string]string   { return map[string]string{"rate": "decay rate"} }
func (*decay) DefaultInitialConditions() map[string]float64 {
	return map[string]float64{"X": 1.0}
}
func (*decay) R0(epidemic.Params) (float64, error) { return 0, nil }
func (*decay) Transitions() []epidemic.Transition  { return nil }

func (*decay) Derivative(t float64, y epidemic.State, p epidemic.Params) (epidemic.State, error) {
	rate, err := p.Get("rate")
	if err != nil {
		return nil, err
	}
	return epidemic.State{-rate * y[0]}, nil
}

func TestRK4_Accuracy(t *testing.T) {
	stepper := NewRK4()
	m := &decay{}
	p := epidemic.Params{"rate": 1.0}

	y := epidemic.State{1.0}
	dt := 0.01
	steps := 100

	var err error
	for i := 0; i < steps; i++ {
		y, err = stepper.Step(m, float64(i)*dt, y, p, dt)
		if err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}

	want := math.Exp(-1.0)
	if math.Abs(y[0]-want) > 1e-8 {
		t.Errorf("after 1s of decay: %.10f, want %.10f", y[0], want)
	}
}

func TestRK4_PropagatesErrors(t *testing.T) {
	stepper := NewRK4()
	m := &decay{}

	_, err := stepper.Step(m, 0, epidemic.State{1.0}, epidemic.Params{}, 0.01)
	if err == nil {
		t.Fatal("expected missing-parameter error")
	}
}

func TestDopriStep_ErrorEstimate(t *testing.T) {
	m := &decay{}
	p := epidemic.Params{"rate": 1.0}
	y := epidemic.State{1.0}

	_, small, err := dopriStep(m, 0, y, p, 0.01, 1e-9)
	if err != nil {
		t.Fatalf("dopriStep failed: %v", err)
	}
	_, large, err := dopriStep(m, 0, y, p, 1.0, 1e-9)
	if err != nil {
		t.Fatalf("dopriStep failed: %v", err)
	}

	if small >= large {
		t.Errorf("error estimate should grow with step size: %g vs %g", small, large)
	}
}

func BenchmarkRK4_SIR(b *testing.B) {
	stepper := NewRK4()
	m := models.NewSIR()
	p := m.DefaultParams()
	y := epidemic.State{0.99, 0.01, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y, _ = stepper.Step(m, 0, y, p, 0.01)
	}
}

func BenchmarkDopriStep_SEWIRF(b *testing.B) {
	m := models.NewSEWIRF()
	p := m.DefaultParams()
	y := epidemic.State{0.99, 0.0, 0.0, 0.01, 0.0, 0.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y, _, _ = dopriStep(m, 0, y, p, 0.01, 1e-9)
	}
}

func BenchmarkSolve_SIRD(b *testing.B) {
	m := models.NewSIRD()
	engine := New(m)
	initial := m.DefaultInitialConditions()
	params := m.DefaultParams()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Solve(initial, params, 100, 100); err != nil {
			b.Fatal(err)
		}
	}
}
