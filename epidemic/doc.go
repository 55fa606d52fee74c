// Package epidemic provides the core primitives for compartmental
// epidemic models.
//
// The package defines the shared contract every model variant satisfies
// and the value types flowing between the solver, the metrics layer and
// presentation code:
//
//   - [State]: ordered vector of compartment values
//   - [Params]: string-keyed rate parameters
//   - [Model]: interface for compartmental models (dY/dt = f(t, Y, p))
//   - [Transition]: a directed, rate-governed flow between compartments
//   - [Trajectory]: the solved time series
//
// # Purity
//
// Models are stateless specifications: Derivative and R0 read only their
// arguments, so a single model instance may serve any number of
// concurrent solves without synchronization.
package epidemic
