package pb

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/crillab/gopheropt/opt"
)

// maxWeight bounds the sum of the absolute weights of a constraint, constant included,
// so that gophersat's own sums cannot overflow.
const maxWeight = 1 << 62

// acc does int64 arithmetic and remembers whether a result overflowed.
type acc struct {
	overflow bool
}

func (a *acc) add(x, y int64) int64 {
	r := x + y
	if (x > 0 && y > 0 && r < 0) || (x < 0 && y < 0 && r >= 0) {
		a.overflow = true
	}
	return r
}

func (a *acc) mul(x, y int64) int64 {
	if x == 0 || y == 0 {
		return 0
	}
	r := x * y
	if r/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		a.overflow = true
	}
	return r
}

func (a *acc) abs(x int64) int64 {
	if x == math.MinInt64 {
		a.overflow = true
	}
	if x < 0 {
		return -x
	}
	return x
}

type term struct {
	coef int64
	v    Var
}

// A Linear is a weighted sum of variables plus a constant.
// Linear values are immutable: operations return new values.
// An expression whose coefficients overflowed an int64 cannot be used:
// constraints built from it are rejected, and so is its use as an objective.
type Linear struct {
	terms    []term
	k        int64
	overflow bool
}

// Term returns the expression coef*v.
func Term(coef int64, v Var) Linear {
	return Linear{terms: []term{{coef: coef, v: v}}}
}

// Const returns the constant expression k.
func Const(k int64) Linear {
	return Linear{k: k}
}

// Sum returns the sum of the given expressions.
func Sum(ls ...Linear) Linear {
	var (
		res Linear
		a   acc
	)
	for _, l := range ls {
		res.terms = append(res.terms, l.terms...)
		res.k = a.add(res.k, l.k)
		res.overflow = res.overflow || l.overflow
	}
	res.overflow = res.overflow || a.overflow
	return res
}

// Plus returns l + o.
func (l Linear) Plus(o Linear) Linear {
	return Sum(l, o)
}

// Scale returns k*l.
func (l Linear) Scale(k int64) Linear {
	var a acc
	res := Linear{terms: make([]term, len(l.terms)), k: a.mul(k, l.k)}
	for i, t := range l.terms {
		res.terms[i] = term{coef: a.mul(k, t.coef), v: t.v}
	}
	res.overflow = l.overflow || a.overflow
	return res
}

// Neg returns -l.
func (l Linear) Neg() Linear {
	return l.Scale(-1)
}

// Sort is opt.SortInt.
func (l Linear) Sort() opt.Sort { return opt.SortInt }

func (l Linear) String() string {
	var sb strings.Builder
	for i, t := range l.terms {
		coef := t.coef
		switch {
		case i == 0 && coef < 0:
			sb.WriteString("-")
			coef = -coef
		case i > 0 && coef < 0:
			sb.WriteString(" - ")
			coef = -coef
		case i > 0:
			sb.WriteString(" + ")
		}
		if coef != 1 {
			fmt.Fprintf(&sb, "%d*", coef)
		}
		sb.WriteString(t.v.String())
	}
	switch {
	case len(l.terms) == 0:
		fmt.Fprintf(&sb, "%d", l.k)
	case l.k > 0:
		fmt.Fprintf(&sb, " + %d", l.k)
	case l.k < 0:
		fmt.Fprintf(&sb, " - %d", -l.k)
	}
	return sb.String()
}

// ErrOverflow is returned when an expression or its bounds do not fit in an int64.
var ErrOverflow = errors.Wrap(ErrDomain, "integer overflow")

// Bounds returns the smallest and largest values l can take, given the domains of its variables.
// It returns ErrOverflow when they do not fit in an int64.
func (l Linear) Bounds() (lo, hi int64, err error) {
	var a acc
	lo, hi = l.k, l.k
	for _, t := range l.terms {
		vlo, vhi := t.v.domain()
		if t.coef < 0 {
			vlo, vhi = vhi, vlo
		}
		lo = a.add(lo, a.mul(t.coef, vlo))
		hi = a.add(hi, a.mul(t.coef, vhi))
	}
	if l.overflow || a.overflow {
		return 0, 0, errors.Wrapf(ErrOverflow, "bounds of %s", l)
	}
	return lo, hi, nil
}

// asVar returns the variable l is made of, if l is exactly 1*x with no constant.
func (l Linear) asVar() (*Int, bool) {
	if len(l.terms) != 1 || l.terms[0].coef != 1 || l.k != 0 {
		return nil, false
	}
	x, ok := l.terms[0].v.(*Int)
	return x, ok
}

// scopes returns the ids of the frames l refers to.
func (l Linear) scopes() []int {
	res := make([]int, len(l.terms))
	for i, t := range l.terms {
		res[i] = t.v.scope()
	}
	return res
}

// expand returns l as a weighted sum of CNF variables plus a constant.
// The absolute weights and constant must sum to at most maxWeight.
func (l Linear) expand() (map[int]int64, int64, error) {
	var a acc
	w := make(map[int]int64)
	k := l.k
	for _, t := range l.terms {
		k = a.add(k, t.v.expand(t.coef, w, &a))
	}
	total := a.abs(k)
	for _, coef := range w {
		total = a.add(total, a.abs(coef))
	}
	if l.overflow || a.overflow || total > maxWeight {
		return nil, 0, errors.Wrapf(ErrOverflow, "weights of %s", l)
	}
	return w, k, nil
}

// pbc is a normalized PB constraint: sum(weights[i] * lits[i]) >= k,
// with positive weights and at most one literal per variable.
type pbc struct {
	lits    []int
	weights []int64
	k       int64
}

// atLeast returns the pbc stating sum(w[v] * v) >= k.
func atLeast(w map[int]int64, k int64) pbc {
	vars := make([]int, 0, len(w))
	for v, coef := range w {
		if coef != 0 {
			vars = append(vars, v)
		}
	}
	sort.Ints(vars)
	res := pbc{lits: make([]int, len(vars)), weights: make([]int64, len(vars)), k: k}
	for i, v := range vars {
		coef := w[v]
		if coef > 0 {
			res.lits[i] = v
			res.weights[i] = coef
		} else {
			// coef*v == coef + (-coef)*not(v)
			res.lits[i] = -v
			res.weights[i] = -coef
			res.k -= coef
		}
	}
	return res
}

// clause returns the pbc stating at least one of lits is true.
// Duplicate literals are merged; a tautology yields a trivially true pbc.
func clause(lits []int) pbc {
	seen := make(map[int]bool, len(lits))
	res := pbc{k: 1}
	for _, l := range lits {
		if seen[-l] {
			return pbc{}
		}
		if !seen[l] {
			seen[l] = true
			res.lits = append(res.lits, l)
			res.weights = append(res.weights, 1)
		}
	}
	return res
}

// trivial is true iff p holds whatever the values of its literals.
func (p pbc) trivial() bool {
	return p.k <= 0
}
