package models

import "github.com/caiosainvallio/simulations/epidemic"

// SIRD extends SIR by splitting the removed class into Recovered and
// Deceased compartments.
type SIRD struct{}

func NewSIRD() *SIRD { return &SIRD{} }

func (*SIRD) Name() string { return "SIR-D" }

func (*SIRD) Description() string {
	return "The SIR-D model extends SIR by separating the 'Removed' compartment into Recovered (R) and Deceased (D)."
}

func (*SIRD) Compartments() []string { return []string{"S", "I", "R", "D"} }

func (*SIRD) DefaultParams() epidemic.Params {
	return epidemic.Params{
		"beta":  0.5,
		"gamma": 0.1,
		"mu":    0.05,
	}
}

func (*SIRD) ParamDocs() map[string]string {
	return map[string]string{
		"beta":  "Infection rate (beta).",
		"gamma": "Recovery rate (gamma).",
		"mu":    "Mortality rate (mu): rate of death from infection.",
	}
}

func (*SIRD) DefaultInitialConditions() map[string]float64 {
	return map[string]float64{"S": 0.99, "I": 0.01, "R": 0.0, "D": 0.0}
}

// R0 = beta / (gamma + mu).
func (*SIRD) R0(p epidemic.Params) (float64, error) {
	r := &reader{p: p}
	beta := r.val("beta")
	gamma := r.val("gamma")
	mu := r.val("mu")
	if r.err != nil {
		return 0, r.err
	}
	return beta / (gamma + mu), nil
}

func (*SIRD) Derivative(t float64, y epidemic.State, p epidemic.Params) (epidemic.State, error) {
	if err := checkDim(y, 4); err != nil {
		return nil, err
	}
	r := &reader{p: p}
	beta := r.val("beta")
	gamma := r.val("gamma")
	mu := r.val("mu")
	if r.err != nil {
		return nil, r.err
	}

	s, i := y[0], y[1]
	n := y.Sum()
	infection := beta * s * i / n

	return epidemic.State{
		-infection,
		infection - gamma*i - mu*i,
		gamma * i,
		mu * i,
	}, nil
}

func (*SIRD) Transitions() []epidemic.Transition {
	return []epidemic.Transition{
		{From: "S", To: "I", Param: "beta"},
		{From: "I", To: "R", Param: "gamma"},
		{From: "I", To: "D", Param: "mu"},
	}
}
