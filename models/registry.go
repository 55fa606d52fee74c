package models

import (
	"fmt"
	"sort"

	"github.com/caiosainvallio/simulations/epidemic"
)

var registry = map[string]func() epidemic.Model{
	"sir":     func() epidemic.Model { return NewSIR() },
	"sird":    func() epidemic.Model { return NewSIRD() },
	"sirf":    func() epidemic.Model { return NewSIRF() },
	"sewirf":  func() epidemic.Model { return NewSEWIRF() },
	"sir-d":   func() epidemic.Model { return NewSIRD() },
	"sir-f":   func() epidemic.Model { return NewSIRF() },
	"sewir-f": func() epidemic.Model { return NewSEWIRF() },
}

// New constructs a model variant by registry name. Hyphenated aliases
// ("sir-d") match the display names; compact forms ("sird") are
// accepted for the command line.
func New(name string) (epidemic.Model, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(), nil
}

// Names lists the canonical registry names, sorted.
func Names() []string {
	names := []string{"sir", "sir-d", "sir-f", "sewir-f"}
	sort.Strings(names)
	return names
}

// All returns one instance of every variant in canonical order.
func All() []epidemic.Model {
	return []epidemic.Model{NewSIR(), NewSIRD(), NewSIRF(), NewSEWIRF()}
}
