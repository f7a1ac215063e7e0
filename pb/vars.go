package pb

import (
	"fmt"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/crillab/gopheropt/opt"
)

// ErrOutOfScope is returned when using a variable whose frame was popped.
var ErrOutOfScope = errors.New("variable used outside of its scope")

// ErrDomain is returned when declaring an integer with an invalid domain.
var ErrDomain = errors.New("invalid integer domain")

// maxWidth is the largest number of values an integer variable can take.
const maxWidth = 1 << 32

// A Var is a variable that can appear in linear expressions: either a *Bool or an *Int.
type Var interface {
	opt.Term
	// domain returns the smallest and largest values of the variable.
	domain() (lo, hi int64)
	// scope returns the id of the frame the variable was declared in.
	scope() int
	// expand adds coef times the variable to w, indexed by CNF variable,
	// and returns the constant part. Overflows are recorded in a.
	expand(coef int64, w map[int]int64, a *acc) int64
}

// A Bool is a propositional variable. In linear expressions, it counts as 1 when true, 0 when false.
type Bool struct {
	name  string
	v     int // CNF variable
	frame int
}

func (b *Bool) String() string { return b.name }

// Sort is opt.SortBool: booleans cannot be maximized directly, but linear expressions over them can.
func (b *Bool) Sort() opt.Sort { return opt.SortBool }

// Lit returns the positive literal of b.
func (b *Bool) Lit() Lit { return Lit{b: b} }

// Not returns the negative literal of b.
func (b *Bool) Not() Lit { return Lit{b: b, neg: true} }

func (b *Bool) domain() (lo, hi int64) { return 0, 1 }

func (b *Bool) scope() int { return b.frame }

func (b *Bool) expand(coef int64, w map[int]int64, a *acc) int64 {
	w[b.v] = a.add(w[b.v], coef)
	return 0
}

// A Lit is a Bool or its negation.
type Lit struct {
	b   *Bool
	neg bool
}

// Not returns the negation of l.
func (l Lit) Not() Lit { return Lit{b: l.b, neg: !l.neg} }

// Var returns the variable of l.
func (l Lit) Var() *Bool { return l.b }

// Negative is true iff l is the negation of its variable.
func (l Lit) Negative() bool { return l.neg }

func (l Lit) String() string {
	if l.neg {
		return "not(" + l.b.name + ")"
	}
	return l.b.name
}

// cnf returns the CNF literal associated with l.
func (l Lit) cnf() int {
	if l.neg {
		return -l.b.v
	}
	return l.b.v
}

// An Int is an integer variable in a bounded domain.
type Int struct {
	name   string
	lo, hi int64
	bits   []int // CNF variables, least significant first
	frame  int
}

func (x *Int) String() string { return x.name }

// Sort is opt.SortInt.
func (x *Int) Sort() opt.Sort { return opt.SortInt }

// Domain returns the smallest and largest values of x.
func (x *Int) Domain() (lo, hi int64) { return x.lo, x.hi }

func (x *Int) domain() (lo, hi int64) { return x.lo, x.hi }

func (x *Int) scope() int { return x.frame }

func (x *Int) expand(coef int64, w map[int]int64, a *acc) int64 {
	for j, v := range x.bits {
		w[v] = a.add(w[v], a.mul(coef, int64(1)<<uint(j)))
	}
	return a.mul(coef, x.lo)
}

// nbBits returns how many bits are needed to encode values in [0, width].
func nbBits(width int64) int {
	return bits.Len64(uint64(width))
}

func checkDomain(name string, lo, hi int64) error {
	if lo > hi {
		return errors.Wrapf(ErrDomain, "%s: empty domain [%d, %d]", name, lo, hi)
	}
	if hi-lo < 0 || hi-lo >= maxWidth {
		return errors.Wrapf(ErrDomain, "%s: domain [%d, %d] is too large", name, lo, hi)
	}
	return nil
}

func describe(v Var) string {
	lo, hi := v.domain()
	return fmt.Sprintf("%s in [%d, %d]", v, lo, hi)
}
