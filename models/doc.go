// Package models provides the concrete compartmental epidemic variants.
//
// Each variant implements the [epidemic.Model] interface:
//
//   - [SIR]: Susceptible -> Infectious -> Recovered
//   - [SIRD]: SIR with a separate Deceased compartment
//   - [SIRF]: SIR with a severe/isolated compartment F before R or D
//   - [SEWIRF]: SIR-F with Exposed incubation and Waning immunity loop
//
// All variants compute the force of infection as beta*S*I/N with N
// recomputed from the live state on every call, so population
// conservation holds even for unnormalized inputs.
//
// Use [New] to construct a variant by its registry name.
package models
