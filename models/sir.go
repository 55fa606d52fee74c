package models

import "github.com/caiosainvallio/simulations/epidemic"

// SIR is the classic Susceptible-Infectious-Recovered model.
type SIR struct{}

func NewSIR() *SIR { return &SIR{} }

func (*SIR) Name() string { return "SIR" }

func (*SIR) Description() string {
	return "The classic SIR model describes the flow of individuals from Susceptible (S) to Infectious (I) and then to Recovered (R)."
}

func (*SIR) Compartments() []string { return []string{"S", "I", "R"} }

func (*SIR) DefaultParams() epidemic.Params {
	return epidemic.Params{
		"beta":  0.5,
		"gamma": 0.1,
	}
}

func (*SIR) ParamDocs() map[string]string {
	return map[string]string{
		"beta":  "Infection rate (beta): probability of transmitting disease per contact.",
		"gamma": "Recovery rate (gamma): rate at which infected individuals recover (1/duration).",
	}
}

func (*SIR) DefaultInitialConditions() map[string]float64 {
	return map[string]float64{"S": 0.99, "I": 0.01, "R": 0.0}
}

// R0 = beta / gamma.
func (*SIR) R0(p epidemic.Params) (float64, error) {
	r := &reader{p: p}
	beta := r.val("beta")
	gamma := r.val("gamma")
	if r.err != nil {
		return 0, r.err
	}
	return beta / gamma, nil
}

func (*SIR) Derivative(t float64, y epidemic.State, p epidemic.Params) (epidemic.State, error) {
	if err := checkDim(y, 3); err != nil {
		return nil, err
	}
	r := &reader{p: p}
	beta := r.val("beta")
	gamma := r.val("gamma")
	if r.err != nil {
		return nil, r.err
	}

	s, i := y[0], y[1]
	n := y.Sum()
	infection := beta * s * i / n

	return epidemic.State{
		-infection,
		infection - gamma*i,
		gamma * i,
	}, nil
}

func (*SIR) Transitions() []epidemic.Transition {
	return []epidemic.Transition{
		{From: "S", To: "I", Param: "beta"},
		{From: "I", To: "R", Param: "gamma"},
	}
}
