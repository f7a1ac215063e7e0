/*
Package pb is a pseudo-boolean decision procedure for the optimizer, backed by gophersat.

Problems are stated over boolean variables and bounded integer variables.
Integers are encoded in binary, with an offset so that their lower bound is
represented by all bits being false. Constraints are linear inequalities
between integer expressions, clauses, and arbitrary boolean formulas, which
are converted to clauses with auxiliary variables.

A Context implements opt.Backend: it keeps its assertions in a stack of
frames, and every check hands the live frames, plus the assumptions, to a
fresh gophersat solver. Assumptions are relaxed by selector variables, so that
the unsatisfiable core of a failed check can be computed by the explain package.

	ctx := pb.New()
	x, _ := ctx.Int("x", 0, 10)
	y, _ := ctx.Int("y", 0, 10)
	ctx.Assert(pb.Le(pb.Sum(pb.Term(1, x), pb.Term(1, y)), 10))
	s, _ := opt.New(ctx)
	i, _ := s.Register(x, opt.Adjuster{})
	s.MaximizeAll(context.Background())

Variables belong to the frame they were declared in: once that frame is
popped, they cannot be used anymore.

Coefficients, constants and bounds are int64. Expressions that overflow are
rejected with ErrOverflow when they are compared or used as objectives.

gophersat's search cannot be interrupted. When the context of a check is
done, Check returns an aborted result at once, but the search goes on in the
background until it ends.
*/
package pb
