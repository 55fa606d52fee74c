package models

import "github.com/caiosainvallio/simulations/epidemic"

// SEWIRF extends SIR-F with an Exposed incubation compartment and a
// waning-immunity loop: recovered individuals lose immunity through W
// and return to S. Flows: S->E->I, I->R, I->F, F->R, F->D, R->W->S.
type SEWIRF struct{}

func NewSEWIRF() *SEWIRF { return &SEWIRF{} }

func (*SEWIRF) Name() string { return "SEWIR-F" }

func (*SEWIRF) Description() string {
	return "Complex model with Waning immunity. S->E->I->R->W->S, plus I->F->D/R."
}

func (*SEWIRF) Compartments() []string {
	return []string{"S", "E", "W", "I", "R", "F", "D"}
}

func (*SEWIRF) DefaultParams() epidemic.Params {
	return epidemic.Params{
		"beta":    0.5,
		"sigma":   0.2,
		"gamma_i": 0.1,
		"alpha":   0.05,
		"gamma_f": 0.05,
		"mu":      0.02,
		"omega":   0.001,
		"rho":     0.1,
	}
}

func (*SEWIRF) ParamDocs() map[string]string {
	return map[string]string{
		"beta":    "Infection rate.",
		"sigma":   "Progression E -> I (1/incubation period).",
		"gamma_i": "Recovery rate from I.",
		"alpha":   "Progression rate I -> F (severe cases).",
		"gamma_f": "Recovery rate from F.",
		"mu":      "Mortality rate from F.",
		"omega":   "Waning immunity rate R -> W (1/immunity duration).",
		"rho":     "Rate of loss of protection W -> S.",
	}
}

func (*SEWIRF) DefaultInitialConditions() map[string]float64 {
	return map[string]float64{
		"S": 0.99, "E": 0.0, "W": 0.0, "I": 0.01, "R": 0.0, "F": 0.0, "D": 0.0,
	}
}

// R0 = beta / (gamma_i + alpha). The latent E stage delays but does not
// reduce secondary infections, and F does not transmit.
func (*SEWIRF) R0(p epidemic.Params) (float64, error) {
	r := &reader{p: p}
	beta := r.val("beta")
	gammaI := r.val("gamma_i")
	alpha := r.val("alpha")
	if r.err != nil {
		return 0, r.err
	}
	return beta / (gammaI + alpha), nil
}

func (*SEWIRF) Derivative(t float64, y epidemic.State, p epidemic.Params) (epidemic.State, error) {
	if err := checkDim(y, 7); err != nil {
		return nil, err
	}
	r := &reader{p: p}
	beta := r.val("beta")
	sigma := r.val("sigma")
	gammaI := r.val("gamma_i")
	alpha := r.val("alpha")
	gammaF := r.val("gamma_f")
	mu := r.val("mu")
	omega := r.val("omega")
	rho := r.val("rho")
	if r.err != nil {
		return nil, r.err
	}

	s, e, w, i, rec, f := y[0], y[1], y[2], y[3], y[4], y[5]
	n := y.Sum()
	infection := beta * s * i / n

	return epidemic.State{
		-infection + rho*w,
		infection - sigma*e,
		omega*rec - rho*w,
		sigma*e - gammaI*i - alpha*i,
		gammaI*i + gammaF*f - omega*rec,
		alpha*i - gammaF*f - mu*f,
		mu * f,
	}, nil
}

func (*SEWIRF) Transitions() []epidemic.Transition {
	return []epidemic.Transition{
		{From: "S", To: "E", Param: "beta"},
		{From: "E", To: "I", Param: "sigma"},
		{From: "I", To: "R", Param: "gamma_i"},
		{From: "I", To: "F", Param: "alpha"},
		{From: "F", To: "R", Param: "gamma_f"},
		{From: "F", To: "D", Param: "mu"},
		{From: "R", To: "W", Param: "omega"},
		{From: "W", To: "S", Param: "rho"},
	}
}
