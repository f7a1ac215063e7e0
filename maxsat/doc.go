// Package maxsat solves weighted partial MAXSAT problems with the optimizer.
//
// Definition
//
// A MAXSAT problem is a problem where, contrary to "plain-old" SAT decision problems,
// the user is not looking at whether the problem can be solved at all, but, if it cannot be solved,
// at which subset of it can be solved.
// Generally, the user wants two more things:
// a subset of the problem must be satisfied, no matter what (these are called *hard constraints*),
// and other constraints (called *soft constraints*) are optional, but some of them are deemed more
// important than others: they are associated with a cost.
//
// That problem is called weighted partial MAXSAT (WP-MAXSAT).
//
// Encoding
//
// Constraints are stated on a pb.Context. Each soft constraint gets a fresh
// boolean that can only be true when the constraint holds, and the optimizer
// maximizes the total weight of those booleans. The cost of a solution is the
// weight of the violated constraints, so it is reported through a negating
// adjuster.
//
//	p, err := maxsat.New([]maxsat.Constr{
//		maxsat.HardClause(maxsat.Var("a"), maxsat.Var("b")),
//		maxsat.SoftClause(maxsat.Not("a")),
//		maxsat.WeightedClause([]maxsat.Lit{maxsat.Not("b")}, 3),
//	})
//	...
//	model, cost, err := p.Solve(ctx)
package maxsat
