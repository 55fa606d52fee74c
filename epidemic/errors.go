package epidemic

import (
	"fmt"
	"sort"
	"strings"
)

// MissingParameterError reports a required rate key absent from a
// Params mapping.
type MissingParameterError struct {
	Key string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("epidemic: missing parameter %q", e.Key)
}

// UnknownCompartmentError reports an initial-condition mapping whose
// keys do not match a model's compartment set.
type UnknownCompartmentError struct {
	Model   string
	Missing []string
	Extra   []string
}

func (e *UnknownCompartmentError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "epidemic: initial conditions do not match %s compartments", e.Model)
	if len(e.Missing) > 0 {
		sorted := append([]string(nil), e.Missing...)
		sort.Strings(sorted)
		fmt.Fprintf(&b, ": missing %s", strings.Join(sorted, ", "))
	}
	if len(e.Extra) > 0 {
		sorted := append([]string(nil), e.Extra...)
		sort.Strings(sorted)
		fmt.Fprintf(&b, ": unknown %s", strings.Join(sorted, ", "))
	}
	return b.String()
}

// DimensionMismatchError reports a state vector whose length differs
// from the model's compartment count.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("epidemic: state vector has %d components, model has %d compartments", e.Got, e.Want)
}

// IntegrationError reports a solver failure at a specific time point.
// It is never retried internally; retry policy belongs to the caller.
type IntegrationError struct {
	Time    float64
	Message string
	Wrapped error
}

func (e *IntegrationError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("epidemic: integration failed at t=%.6g: %v", e.Time, e.Wrapped)
	}
	return fmt.Sprintf("epidemic: integration failed at t=%.6g: %s", e.Time, e.Message)
}

func (e *IntegrationError) Unwrap() error {
	return e.Wrapped
}
