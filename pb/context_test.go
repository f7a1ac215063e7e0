package pb

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/gopheropt/infeps"
	"github.com/crillab/gopheropt/opt"
)

func mustInt(t *testing.T, c *Context, name string, lo, hi int64) *Int {
	t.Helper()
	x, err := c.Int(name, lo, hi)
	require.NoError(t, err)
	return x
}

func sat(t *testing.T, c *Context, assumptions ...opt.Expr) *Model {
	t.Helper()
	res := c.Check(context.Background(), assumptions...)
	require.Equal(t, opt.StatusSat, res.Status, "expected a model, got %v", res)
	return res.Model.(*Model)
}

func unsat(t *testing.T, c *Context, assumptions ...opt.Expr) []opt.Expr {
	t.Helper()
	res := c.Check(context.Background(), assumptions...)
	require.Equal(t, opt.StatusUnsat, res.Status)
	return res.Core
}

func TestLinearConstraints(t *testing.T) {
	c := New()
	x := mustInt(t, c, "x", 0, 10)
	y := mustInt(t, c, "y", -5, 5)
	sum := Sum(Term(1, x), Term(1, y))
	require.NoError(t, c.Assert(Le(sum, 6)))
	require.NoError(t, c.Assert(Compare(Term(2, y), OpGe, Term(1, x).Plus(Const(-4)))))

	// y >= (x-4)/2, so x <= 5.
	m := sat(t, c, Ge(Term(1, x), 5))
	assert.Equal(t, int64(5), m.Int(x))
	assert.Equal(t, int64(1), m.Int(y))
	assert.Equal(t, int64(6), m.Eval(sum))
	unsat(t, c, Ge(Term(1, x), 6))

	m = sat(t, c, Eq(Term(1, x), 4))
	assert.Equal(t, int64(4), m.Int(x))
	assert.True(t, m.Int(y) >= 0 && m.Int(y) <= 2, "invalid value %d for y", m.Int(y))
}

func TestIntDomains(t *testing.T) {
	tests := []struct{ lo, hi int64 }{
		{0, 0}, {3, 5}, {-4, 3}, {-10, -7}, {0, 1}, {100, 200},
	}
	for _, test := range tests {
		c := New()
		x := mustInt(t, c, "x", test.lo, test.hi)
		unsat(t, c, Gt(Term(1, x), test.hi))
		unsat(t, c, Lt(Term(1, x), test.lo))
		for _, v := range []int64{test.lo, test.hi} {
			m := sat(t, c, Eq(Term(1, x), v))
			assert.Equal(t, v, m.Int(x), "x in [%d, %d]", test.lo, test.hi)
		}
	}
	_, err := New().Int("z", 3, 2)
	assert.True(t, errors.Is(err, ErrDomain))
	_, err = New().Int("z", 0, 1<<40)
	assert.True(t, errors.Is(err, ErrDomain))
}

func TestClausesAndCardinality(t *testing.T) {
	c := New()
	a, b, d := c.Bool("a"), c.Bool("b"), c.Bool("d")
	require.NoError(t, c.Assert(AtMost(1, a.Lit(), b.Lit(), d.Lit())))
	require.NoError(t, c.Assert(Clause(a.Lit(), b.Lit())))
	require.NoError(t, c.Assert(AtLeast(1, b.Not(), d.Not())))

	m := sat(t, c, Clause(a.Not()))
	assert.False(t, m.Bool(a))
	assert.True(t, m.Bool(b))
	assert.False(t, m.Bool(d))
	unsat(t, c, Clause(a.Not()), Clause(b.Not()))
	unsat(t, c, AtLeast(2, a.Lit(), b.Lit(), d.Lit()))
	sat(t, c, Clause(a.Lit(), a.Not()))
	unsat(t, c, Clause())
	unsat(t, c, False())
	sat(t, c, True())
}

func TestFormulas(t *testing.T) {
	newVars := func() (*Context, []*Bool) {
		c := New()
		return c, []*Bool{c.Bool("a"), c.Bool("b"), c.Bool("c")}
	}
	formulas := []func(v []*Bool) Formula{
		func(v []*Bool) Formula { return Iff(v[0].Lit(), And(v[1].Lit(), v[2].Lit())) },
		func(v []*Bool) Formula { return Xor(v[0].Lit(), Or(v[1].Lit(), Not(v[2].Lit()))) },
		func(v []*Bool) Formula { return Implies(And(v[0].Lit(), v[1].Lit()), Not(Or(v[2].Lit(), Bottom))) },
		func(v []*Bool) Formula { return Or(And(v[0].Lit(), v[1].Not()), And(v[1].Lit(), v[2].Lit()), Bottom) },
		func(v []*Bool) Formula { return Not(And(Top, v[0].Lit(), Not(v[0].Lit()))) },
	}
	for i, mk := range formulas {
		c, vars := newVars()
		f := mk(vars)
		holds, err := c.Holds(f)
		require.NoError(t, err)
		require.NoError(t, c.Assert(holds))
		for mask := 0; mask < 8; mask++ {
			assignment := &Model{vals: make([]bool, 3)}
			var assumptions []opt.Expr
			for j, v := range vars {
				value := mask&(1<<uint(j)) != 0
				assignment.vals[j] = value
				if value {
					assumptions = append(assumptions, Clause(v.Lit()))
				} else {
					assumptions = append(assumptions, Clause(v.Not()))
				}
			}
			res := c.Check(context.Background(), assumptions...)
			if f.Eval(assignment) {
				assert.Equal(t, opt.StatusSat, res.Status, "formula #%d %s, assignment %s", i, f, assignment)
			} else {
				assert.Equal(t, opt.StatusUnsat, res.Status, "formula #%d %s, assignment %s", i, f, assignment)
			}
		}
	}
}

func TestCores(t *testing.T) {
	for _, mode := range []CoreMode{CoresDeletion, CoresInsertion, CoresNone} {
		c := New(WithCores(mode))
		x := mustInt(t, c, "x", 0, 10)
		y := mustInt(t, c, "y", 0, 10)
		tooBig := Ge(Term(1, x), 8)
		harmless := Ge(Term(1, y), 3)
		tooSmall := Le(Term(1, x), 2)
		core := unsat(t, c, tooBig, harmless, tooSmall)
		if mode == CoresNone {
			assert.Len(t, core, 3)
			continue
		}
		require.Len(t, core, 2)
		assert.ElementsMatch(t, []string{tooBig.String(), tooSmall.String()}, []string{core[0].String(), core[1].String()})
	}
	c := New()
	a := c.Bool("a")
	require.NoError(t, c.Assert(Clause(a.Lit())))
	require.NoError(t, c.Assert(Clause(a.Not())))
	assert.Empty(t, unsat(t, c, Clause(a.Lit())), "unsatisfiable without assumptions")
}

func TestScopes(t *testing.T) {
	c := New()
	x := mustInt(t, c, "x", 0, 3)
	require.NoError(t, c.Assert(Le(Term(1, x), 2)))
	c.Push()
	b := c.Bool("b")
	y := mustInt(t, c, "y", 0, 3)
	require.NoError(t, c.Assert(Ge(Term(1, x), 3)))
	assert.Equal(t, 1, c.Scopes())
	assert.Len(t, c.Assertions(), 2)
	unsat(t, c)

	require.NoError(t, c.Pop(1))
	assert.Len(t, c.Assertions(), 1)
	m := sat(t, c)
	assert.Equal(t, fmt.Sprintf("x=%d", m.Int(x)), m.String())

	err := c.Assert(Clause(b.Lit()))
	assert.True(t, errors.Is(err, ErrOutOfScope), "got %v", err)
	_, err = c.NewProxy(y)
	assert.True(t, errors.Is(err, ErrOutOfScope), "got %v", err)
	_, err = c.Holds(Or(b.Lit(), c.Bool("e").Lit()))
	assert.True(t, errors.Is(err, ErrOutOfScope), "got %v", err)
	res := c.Check(context.Background(), Ge(Term(1, y), 1))
	assert.Equal(t, opt.StatusUnknown, res.Status)

	err = c.Pop(1)
	assert.True(t, errors.Is(err, opt.ErrScope), "got %v", err)
}

func TestVariablesAreNotReused(t *testing.T) {
	c := New()
	c.Push()
	a := c.Bool("a")
	require.NoError(t, c.Pop(1))
	b := c.Bool("b")
	assert.NotEqual(t, a.v, b.v)
}

func TestProxies(t *testing.T) {
	c := New()
	x := mustInt(t, c, "x", 0, 10)
	y := mustInt(t, c, "y", 0, 10)
	b := c.Bool("b")

	p, err := c.NewProxy(x)
	require.NoError(t, err)
	assert.Same(t, x, p)
	p, err = c.NewProxy(Term(1, x))
	require.NoError(t, err)
	assert.Same(t, x, p)

	l := Sum(Term(2, x), Term(-1, y), Term(5, b), Const(3))
	p, err = c.NewProxy(l)
	require.NoError(t, err)
	lo, hi, ok := c.Range(p)
	require.True(t, ok)
	assert.Equal(t, big.NewRat(-7, 1), lo)
	assert.Equal(t, big.NewRat(28, 1), hi)

	m := sat(t, c, Eq(Term(1, x), 4), Eq(Term(1, y), 9), Clause(b.Lit()))
	v, err := c.Value(m, p)
	require.NoError(t, err)
	assert.Equal(t, big.NewRat(m.Eval(l), 1), v)
	assert.Equal(t, big.NewRat(7, 1), v)

	_, err = c.NewProxy(b)
	assert.Error(t, err)
}

func TestOverflow(t *testing.T) {
	c := New()
	x := mustInt(t, c, "x", 0, 1<<31)
	huge := Term(1<<33, x)

	_, _, err := huge.Bounds()
	assert.True(t, errors.Is(err, ErrOverflow), "unexpected error %v", err)
	_, err = c.NewProxy(huge)
	assert.True(t, errors.Is(err, ErrDomain), "unexpected error %v", err)
	s, err := opt.New(c)
	require.NoError(t, err)
	_, err = s.Register(huge, opt.Adjuster{})
	assert.True(t, errors.Is(err, ErrOverflow), "unexpected error %v", err)

	cstr := Ge(huge, 1)
	assert.True(t, errors.Is(cstr.Err(), ErrOverflow), "unexpected error %v", cstr.Err())
	assert.Error(t, c.Assert(cstr))
	assert.Equal(t, opt.StatusUnknown, c.Check(context.Background(), cstr).Status)
	assert.Empty(t, c.Assertions())

	_, _, err = Term(1<<20, x).Scale(1 << 50).Bounds()
	assert.True(t, errors.Is(err, ErrOverflow), "unexpected error %v", err)
	assert.Error(t, c.Assert(Le(Sum(Const(math.MaxInt64), Const(1)), 0)))
	assert.Error(t, c.Assert(Ge(Term(math.MinInt64, x).Neg(), 0)))

	// Large coefficients are fine as long as the sums fit.
	y := mustInt(t, c, "y", 0, 3)
	p, err := c.NewProxy(Term(1<<20, y))
	require.NoError(t, err)
	_, hi, ok := c.Range(p)
	require.True(t, ok)
	assert.Equal(t, big.NewRat(3<<20, 1), hi)
	m := sat(t, c, Eq(Term(1, y), 3))
	v, err := c.Value(m, p)
	require.NoError(t, err)
	assert.Equal(t, big.NewRat(3<<20, 1), v)
}

func TestBound(t *testing.T) {
	c := New()
	x := mustInt(t, c, "x", 0, 10)
	tests := []struct {
		v      infeps.Value
		strict bool
		want   string
		sat    bool
	}{
		{infeps.FromInt(-3), false, "x >= -3", true},
		{infeps.FromInt(10), false, "x >= 10", true},
		{infeps.FromInt(10), true, "x >= 11", false},
		{infeps.FromInt(4), true, "x >= 5", true},
		{infeps.WithEps(big.NewRat(4, 1), big.NewRat(-1, 1)), false, "x >= 4", true},
		{infeps.New(big.NewRat(7, 2)), true, "x >= 4", true},
		{infeps.New(big.NewRat(1, 1000)).AddRat(big.NewRat(1<<62, 1)), false, "x >= 4611686018427387905", false},
	}
	for _, test := range tests {
		e, err := c.Bound(x, test.v, test.strict)
		require.NoError(t, err)
		assert.Equal(t, test.want, e.String())
		res := c.Check(context.Background(), e)
		if test.sat {
			require.Equal(t, opt.StatusSat, res.Status, "bound %s", e)
			v, _ := c.Value(res.Model, x)
			assert.False(t, infeps.New(v).Less(test.v), "%v does not satisfy %s", v, e)
		} else {
			assert.Equal(t, opt.StatusUnsat, res.Status, "bound %s", e)
		}
	}
	_, err := c.Bound(x, infeps.PlusInfinity(), false)
	assert.Error(t, err)
}

func TestCheckAborted(t *testing.T) {
	c := New()
	mustInt(t, c, "x", 0, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := c.Check(ctx)
	assert.Equal(t, opt.StatusAborted, res.Status)
}

func TestTranslate(t *testing.T) {
	c := New()
	x := mustInt(t, c, "x", 0, 5)
	require.NoError(t, c.Assert(Le(Term(1, x), 3)))
	b, err := c.Translate()
	require.NoError(t, err)
	copied := b.(*Context)
	require.NoError(t, copied.Assert(Ge(Term(1, x), 4)))
	unsat(t, copied)
	sat(t, c)
	assert.Len(t, c.Assertions(), 1)
	assert.Len(t, copied.Assertions(), 2)
}

func TestInvalidInputs(t *testing.T) {
	c := New()
	assert.Error(t, c.Assert(nil))
	res := c.Check(context.Background(), nil)
	assert.Equal(t, opt.StatusUnknown, res.Status)
	_, err := c.Value(nil, nil)
	assert.Error(t, err)
	_, _, ok := c.Range(nil)
	assert.False(t, ok)
	_, err = ParseOp("=>")
	assert.Error(t, err)
	op, err := ParseOp("<=")
	require.NoError(t, err)
	assert.Equal(t, OpLe, op)
}
