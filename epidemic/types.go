package epidemic

import "math"

// State is an ordered vector of compartment values. The index order is
// fixed by the owning model's Compartments list.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// Sum returns the total population mass held across all compartments.
func (s State) Sum() float64 {
	total := 0.0
	for _, v := range s {
		total += v
	}
	return total
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Params maps rate parameter names (e.g. "beta", "gamma") to
// non-negative values. A Params value is never mutated mid-solve.
type Params map[string]float64

func (p Params) Clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// Get returns the named rate or a MissingParameterError.
func (p Params) Get(key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, &MissingParameterError{Key: key}
	}
	return v, nil
}

// Transition is one directed flow edge of a model's topology: population
// mass moves From -> To at the rate governed by Param.
type Transition struct {
	From  string
	To    string
	Param string
}

// Model is the contract every compartmental variant implements.
//
// Compartments fixes the state vector's dimensionality and index order
// for every other operation. Derivative must be a pure function of its
// arguments and must conserve total population: its components sum to
// zero for every input, because all flows in this family are internal
// transfers (the deceased compartment is a sink for proportion, not for
// the conserved total).
type Model interface {
	Name() string
	Description() string
	Compartments() []string
	DefaultParams() Params
	ParamDocs() map[string]string
	DefaultInitialConditions() map[string]float64

	// R0 is the closed-form basic reproduction number.
	R0(p Params) (float64, error)

	// Derivative evaluates dY/dt at time t for state y.
	Derivative(t float64, y State, p Params) (State, error)

	// Transitions lists the flow topology, referencing only names from
	// Compartments and DefaultParams.
	Transitions() []Transition
}
