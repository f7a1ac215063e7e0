package opt_test

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/crillab/gopheropt/infeps"
	"github.com/crillab/gopheropt/opt"
	"github.com/crillab/gopheropt/opt/optfakes"
)

// bound is the constraint built by interval backends.
type bound struct {
	v      infeps.Value
	strict bool
}

func (b bound) String() string {
	if b.strict {
		return fmt.Sprintf("x > %v", b.v)
	}
	return fmt.Sprintf("x >= %v", b.v)
}

type intModel int64

func (m intModel) String() string { return fmt.Sprintf("x = %d", int64(m)) }

type term struct {
	name string
	sort opt.Sort
}

func (t term) String() string { return t.name }

func (t term) Sort() opt.Sort { return t.sort }

type proxy string

func (p proxy) String() string { return string(p) }

// interval is a fake backend over a single integer variable x in [lo, hi].
// A nil hi means x has no upper bound. Checks return the smallest value
// allowed by the assertions and assumptions, so that a linear search
// only improves by one at each round.
type interval struct {
	*optfakes.FakeBackend
	lo       int64
	hi       *int64
	asserted [][]opt.Expr // One slice of assertions per scope.
	checks   [][]opt.Expr // Assumptions of each check.
}

func newInterval(lo int64, hi *int64) *interval {
	b := &interval{FakeBackend: &optfakes.FakeBackend{}, lo: lo, hi: hi, asserted: [][]opt.Expr{nil}}
	b.NewProxyStub = func(t opt.Term) (opt.Proxy, error) {
		return proxy(t.String()), nil
	}
	b.BoundStub = func(_ opt.Proxy, v infeps.Value, strict bool) (opt.Expr, error) {
		return bound{v: v, strict: strict}, nil
	}
	b.ValueStub = func(m opt.Model, _ opt.Proxy) (*big.Rat, error) {
		return big.NewRat(int64(m.(intModel)), 1), nil
	}
	b.AssertStub = func(e opt.Expr) error {
		top := len(b.asserted) - 1
		b.asserted[top] = append(b.asserted[top], e)
		return nil
	}
	b.PushStub = func() {
		b.asserted = append(b.asserted, nil)
	}
	b.PopStub = func(n int) error {
		b.asserted = b.asserted[:len(b.asserted)-n]
		return nil
	}
	b.ScopesStub = func() int {
		return len(b.asserted) - 1
	}
	b.AssertionsStub = func() []opt.Expr {
		var res []opt.Expr
		for _, scope := range b.asserted {
			res = append(res, scope...)
		}
		return res
	}
	b.CheckStub = func(ctx context.Context, assumptions ...opt.Expr) opt.Result {
		b.checks = append(b.checks, assumptions)
		if ctx.Err() != nil {
			return opt.Aborted()
		}
		return b.solve(assumptions)
	}
	b.WriteBenchmarkStub = func(w io.Writer, assumptions []opt.Expr) error {
		for _, e := range append(b.AssertionsStub(), assumptions...) {
			if _, err := fmt.Fprintln(w, e); err != nil {
				return err
			}
		}
		return nil
	}
	return b
}

func (b *interval) solve(assumptions []opt.Expr) opt.Result {
	least := big.NewInt(b.lo)
	for _, e := range append(b.AssertionsStub(), assumptions...) {
		bd := e.(bound)
		if n, _ := bd.v.CeilInt(bd.strict); n.Cmp(least) > 0 {
			least = n
		}
	}
	if b.hi != nil && least.Cmp(big.NewInt(*b.hi)) > 0 {
		return opt.Unsat(assumptions)
	}
	return opt.Sat(intModel(least.Int64()))
}

// ranged is an interval that advertises its bounds.
type ranged struct {
	*interval
}

func (b ranged) Range(opt.Proxy) (lo, hi *big.Rat, ok bool) {
	if b.hi == nil {
		return nil, nil, false
	}
	return big.NewRat(b.lo, 1), big.NewRat(*b.hi, 1), true
}

func int64p(n int64) *int64 { return &n }

var x = term{name: "x", sort: opt.SortInt}
