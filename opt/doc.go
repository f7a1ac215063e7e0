// Package opt maximizes numeric objectives on top of an incremental decision procedure.
//
// The decision procedure is abstracted by the Backend interface: it accepts
// assertions, scopes and assumptions, and answers each check with a Result
// that is either satisfiable (with a model), unsatisfiable (with a core of
// the assumptions), unknown (with a reason) or aborted. Backends also bind
// each objective term to a proxy variable whose value can be read from models.
//
// A Solver holds a registry of objectives. Maximizing an objective runs a
// Strategy: the default one, Linear, repeatedly asks the backend for a model
// where the proxy is strictly larger than the best value so far. When no such
// model exists, the best value is the maximum and it is flagged as valid.
// When the backend cannot conclude, the best value found so far is kept as
// an unverified bound, and the objective is flagged as invalid.
//
// Several objectives are maximized lexicographically by MaximizeAll: once an
// objective reached its maximum, the constraint "objective >= maximum" is
// asserted before the next one is considered.
//
//	s, err := opt.New(backend)
//	...
//	i, err := s.Register(term, opt.Adjuster{})
//	...
//	blockers, err := s.MaximizeAll(ctx)
//	v, err := s.Value(i)
//
// Objectives are tied to the scope they were registered in: popping that scope
// drops them.
package opt
