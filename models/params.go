package models

import "github.com/caiosainvallio/simulations/epidemic"

// reader collects rate lookups and remembers the first missing key, so
// derivative code can read a handful of parameters without an error
// check per line.
type reader struct {
	p   epidemic.Params
	err error
}

func (r *reader) val(key string) float64 {
	if r.err != nil {
		return 0
	}
	v, ok := r.p[key]
	if !ok {
		r.err = &epidemic.MissingParameterError{Key: key}
		return 0
	}
	return v
}

func checkDim(y epidemic.State, want int) error {
	if len(y) != want {
		return &epidemic.DimensionMismatchError{Want: want, Got: len(y)}
	}
	return nil
}
