package pb

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// A Constr is a constraint that can be asserted in a Context, or used as an assumption.
type Constr struct {
	desc   string
	pbs    []pbc
	frames []int // Frames of the variables the constraint refers to
	err    error // Why the constraint cannot be used, if it cannot
}

// Err returns why c cannot be asserted or assumed, or nil if it can.
func (c Constr) Err() error { return c.err }

func (c Constr) String() string { return c.desc }

// True returns the constraint that always holds.
func True() Constr {
	return Constr{desc: "true"}
}

// False returns the constraint that never holds.
func False() Constr {
	return Constr{desc: "false", pbs: []pbc{{k: 1}}}
}

// An Op is a comparison operator.
type Op byte

const (
	OpGe = Op(iota) // >=
	OpGt            // >
	OpLe            // <=
	OpLt            // <
	OpEq            // =
)

func (op Op) String() string {
	switch op {
	case OpGe:
		return ">="
	case OpGt:
		return ">"
	case OpLe:
		return "<="
	case OpLt:
		return "<"
	case OpEq:
		return "="
	default:
		panic(fmt.Errorf("invalid operator %d", byte(op)))
	}
}

// ParseOp returns the operator written s.
func ParseOp(s string) (Op, error) {
	switch strings.TrimSpace(s) {
	case ">=":
		return OpGe, nil
	case ">":
		return OpGt, nil
	case "<=":
		return OpLe, nil
	case "<":
		return OpLt, nil
	case "=", "==":
		return OpEq, nil
	default:
		return 0, errors.Errorf("invalid operator %q", s)
	}
}

// Compare returns the constraint "a op b".
// If its weights do not fit in an int64, the constraint carries an error
// wrapping ErrOverflow and is rejected by Assert and Check.
func Compare(a Linear, op Op, b Linear) Constr {
	d := a.Plus(b.Neg())
	desc := fmt.Sprintf("%s %s %s", a, op, b)
	frames := append(a.scopes(), b.scopes()...)
	w, k, err := d.expand()
	if err != nil {
		return Constr{desc: desc, frames: frames, err: err}
	}
	// d op 0, i.e sum(w) + k op 0.
	var pbs []pbc
	switch op {
	case OpGe:
		pbs = []pbc{atLeast(w, -k)}
	case OpGt:
		pbs = []pbc{atLeast(w, -k+1)}
	case OpLe:
		pbs = []pbc{atLeast(negate(w), k)}
	case OpLt:
		pbs = []pbc{atLeast(negate(w), k+1)}
	case OpEq:
		pbs = []pbc{atLeast(w, -k), atLeast(negate(w), k)}
	}
	return Constr{desc: desc, pbs: pbs, frames: frames}
}

func negate(w map[int]int64) map[int]int64 {
	res := make(map[int]int64, len(w))
	for v, coef := range w {
		res[v] = -coef
	}
	return res
}

// Ge returns the constraint l >= k.
func Ge(l Linear, k int64) Constr { return Compare(l, OpGe, Const(k)) }

// Gt returns the constraint l > k.
func Gt(l Linear, k int64) Constr { return Compare(l, OpGt, Const(k)) }

// Le returns the constraint l <= k.
func Le(l Linear, k int64) Constr { return Compare(l, OpLe, Const(k)) }

// Lt returns the constraint l < k.
func Lt(l Linear, k int64) Constr { return Compare(l, OpLt, Const(k)) }

// Eq returns the constraint l = k.
func Eq(l Linear, k int64) Constr { return Compare(l, OpEq, Const(k)) }

// Clause returns the constraint stating at least one of lits is true.
// An empty clause never holds.
func Clause(lits ...Lit) Constr {
	cnf := make([]int, len(lits))
	strs := make([]string, len(lits))
	frames := make([]int, len(lits))
	for i, l := range lits {
		cnf[i] = l.cnf()
		strs[i] = l.String()
		frames[i] = l.b.frame
	}
	return Constr{
		desc:   "or(" + strings.Join(strs, ", ") + ")",
		pbs:    []pbc{clause(cnf)},
		frames: frames,
	}
}

// AtLeast returns the constraint stating at least n of lits are true.
func AtLeast(n int64, lits ...Lit) Constr {
	return cardinality(lits, OpGe, n)
}

// AtMost returns the constraint stating at most n of lits are true.
func AtMost(n int64, lits ...Lit) Constr {
	return cardinality(lits, OpLe, n)
}

func cardinality(lits []Lit, op Op, n int64) Constr {
	w := make(map[int]int64)
	k := int64(0)
	strs := make([]string, len(lits))
	frames := make([]int, len(lits))
	for i, l := range lits {
		if l.neg {
			// not(v) == 1 - v
			w[l.b.v]--
			k++
		} else {
			w[l.b.v]++
		}
		strs[i] = l.String()
		frames[i] = l.b.frame
	}
	var p pbc
	if op == OpGe {
		p = atLeast(w, n-k)
	} else {
		p = atLeast(negate(w), k-n)
	}
	return Constr{
		desc:   fmt.Sprintf("card(%s) %s %d", strings.Join(strs, ", "), op, n),
		pbs:    []pbc{p},
		frames: frames,
	}
}
