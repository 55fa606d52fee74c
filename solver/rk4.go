package solver

import "github.com/caiosainvallio/simulations/epidemic"

// RK4 is a fixed-step fourth-order Runge-Kutta stepper. The engine
// uses adaptive Dormand-Prince internally; RK4 exists for callers that
// advance a model frame by frame, such as the live terminal view.
type RK4 struct{}

func NewRK4() *RK4 { return &RK4{} }

func (r *RK4) Step(m epidemic.Model, t float64, y epidemic.State, p epidemic.Params, dt float64) (epidemic.State, error) {
	n := len(y)

	k1, err := m.Derivative(t, y, p)
	if err != nil {
		return nil, err
	}

	scratch := make(epidemic.State, n)
	for i := 0; i < n; i++ {
		scratch[i] = y[i] + dt*0.5*k1[i]
	}
	k2, err := m.Derivative(t+dt*0.5, scratch, p)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		scratch[i] = y[i] + dt*0.5*k2[i]
	}
	k3, err := m.Derivative(t+dt*0.5, scratch, p)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		scratch[i] = y[i] + dt*k3[i]
	}
	k4, err := m.Derivative(t+dt, scratch, p)
	if err != nil {
		return nil, err
	}

	result := make(epidemic.State, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = y[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}

	return result, nil
}
