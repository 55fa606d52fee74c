package models

import "github.com/caiosainvallio/simulations/epidemic"

// SIRF adds a severe/isolated compartment F between infection and
// resolution. Infectious individuals either recover directly or
// progress to F, from where they recover or die. F is treated as
// isolated and does not transmit.
type SIRF struct{}

func NewSIRF() *SIRF { return &SIRF{} }

func (*SIRF) Name() string { return "SIR-F" }

func (*SIRF) Description() string {
	return "SIR-F model includes a compartment F for severe cases/isolation. Flows: S->I, I->R, I->F, F->R, F->D."
}

func (*SIRF) Compartments() []string { return []string{"S", "I", "R", "F", "D"} }

func (*SIRF) DefaultParams() epidemic.Params {
	return epidemic.Params{
		"beta":    0.4,
		"gamma_i": 0.1,
		"alpha":   0.05,
		"gamma_f": 0.05,
		"mu":      0.02,
	}
}

func (*SIRF) ParamDocs() map[string]string {
	return map[string]string{
		"beta":    "Infection rate.",
		"gamma_i": "Recovery rate from Infected (I).",
		"alpha":   "Progression rate from I to severe/fatal (F).",
		"gamma_f": "Recovery rate from F.",
		"mu":      "Mortality rate from F.",
	}
}

func (*SIRF) DefaultInitialConditions() map[string]float64 {
	return map[string]float64{"S": 0.99, "I": 0.01, "R": 0.0, "F": 0.0, "D": 0.0}
}

// R0 = beta / (gamma_i + alpha): total outflow from I, since F does not
// transmit.
func (*SIRF) R0(p epidemic.Params) (float64, error) {
	r := &reader{p: p}
	beta := r.val("beta")
	gammaI := r.val("gamma_i")
	alpha := r.val("alpha")
	if r.err != nil {
		return 0, r.err
	}
	return beta / (gammaI + alpha), nil
}

func (*SIRF) Derivative(t float64, y epidemic.State, p epidemic.Params) (epidemic.State, error) {
	if err := checkDim(y, 5); err != nil {
		return nil, err
	}
	r := &reader{p: p}
	beta := r.val("beta")
	gammaI := r.val("gamma_i")
	alpha := r.val("alpha")
	gammaF := r.val("gamma_f")
	mu := r.val("mu")
	if r.err != nil {
		return nil, r.err
	}

	s, i, f := y[0], y[1], y[3]
	n := y.Sum()
	infection := beta * s * i / n

	return epidemic.State{
		-infection,
		infection - gammaI*i - alpha*i,
		gammaI*i + gammaF*f,
		alpha*i - gammaF*f - mu*f,
		mu * f,
	}, nil
}

func (*SIRF) Transitions() []epidemic.Transition {
	return []epidemic.Transition{
		{From: "S", To: "I", Param: "beta"},
		{From: "I", To: "R", Param: "gamma_i"},
		{From: "I", To: "F", Param: "alpha"},
		{From: "F", To: "R", Param: "gamma_f"},
		{From: "F", To: "D", Param: "mu"},
	}
}
