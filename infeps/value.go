package infeps

import (
	"fmt"
	"math/big"
	"strings"
)

// A Value is a number of the form inf*oo + r + eps*ε, where oo is an infinitely
// large quantity and ε an infinitesimally small positive one.
// Values are immutable: every operation returns a new Value.
// The zero Value is 0.
type Value struct {
	inf *big.Rat // Coefficient of oo. Only its sign is meaningful for ordering.
	r   *big.Rat // Rational part.
	eps *big.Rat // Coefficient of ε.
}

var zero = new(big.Rat)

// orZero lets nil rationals stand for 0, so that Value{} is usable.
func orZero(x *big.Rat) *big.Rat {
	if x == nil {
		return zero
	}
	return x
}

func clone(x *big.Rat) *big.Rat {
	return new(big.Rat).Set(orZero(x))
}

// New returns the finite value r.
func New(r *big.Rat) Value {
	return Value{r: clone(r)}
}

// FromInt returns the finite value n.
func FromInt(n int64) Value {
	return Value{r: new(big.Rat).SetInt64(n)}
}

// WithEps returns the finite value r + eps*ε.
func WithEps(r, eps *big.Rat) Value {
	return Value{r: clone(r), eps: clone(eps)}
}

// PlusInfinity returns +oo.
func PlusInfinity() Value {
	return Value{inf: big.NewRat(1, 1)}
}

// MinusInfinity returns -oo.
func MinusInfinity() Value {
	return Value{inf: big.NewRat(-1, 1)}
}

// Inf returns a copy of the coefficient of oo.
func (v Value) Inf() *big.Rat { return clone(v.inf) }

// Rat returns a copy of the rational part of v.
func (v Value) Rat() *big.Rat { return clone(v.r) }

// Eps returns a copy of the coefficient of ε.
func (v Value) Eps() *big.Rat { return clone(v.eps) }

// IsFinite is true iff v has no infinite component.
func (v Value) IsFinite() bool { return orZero(v.inf).Sign() == 0 }

// IsPlusInfinity is true iff v is larger than any finite value.
func (v Value) IsPlusInfinity() bool { return orZero(v.inf).Sign() > 0 }

// IsMinusInfinity is true iff v is smaller than any finite value.
func (v Value) IsMinusInfinity() bool { return orZero(v.inf).Sign() < 0 }

// IsInteger is true iff v is finite, has no ε component and an integral rational part.
func (v Value) IsInteger() bool {
	return v.IsFinite() && orZero(v.eps).Sign() == 0 && orZero(v.r).IsInt()
}

// Neg returns -v.
func (v Value) Neg() Value {
	return Value{
		inf: new(big.Rat).Neg(orZero(v.inf)),
		r:   new(big.Rat).Neg(orZero(v.r)),
		eps: new(big.Rat).Neg(orZero(v.eps)),
	}
}

// Add returns v + w, componentwise.
func (v Value) Add(w Value) Value {
	return Value{
		inf: new(big.Rat).Add(orZero(v.inf), orZero(w.inf)),
		r:   new(big.Rat).Add(orZero(v.r), orZero(w.r)),
		eps: new(big.Rat).Add(orZero(v.eps), orZero(w.eps)),
	}
}

// Sub returns v - w, componentwise.
func (v Value) Sub(w Value) Value {
	return v.Add(w.Neg())
}

// AddRat returns v + r. Only the rational part changes.
func (v Value) AddRat(r *big.Rat) Value {
	return Value{
		inf: clone(v.inf),
		r:   new(big.Rat).Add(orZero(v.r), orZero(r)),
		eps: clone(v.eps),
	}
}

// MulRat returns k*v. Each component is scaled independently.
func (v Value) MulRat(k *big.Rat) Value {
	k = orZero(k)
	return Value{
		inf: new(big.Rat).Mul(orZero(v.inf), k),
		r:   new(big.Rat).Mul(orZero(v.r), k),
		eps: new(big.Rat).Mul(orZero(v.eps), k),
	}
}

// Cmp compares v and w lexicographically on (oo, rational, ε) and returns
// -1, 0 or +1.
func (v Value) Cmp(w Value) int {
	if c := orZero(v.inf).Cmp(orZero(w.inf)); c != 0 {
		return c
	}
	if c := orZero(v.r).Cmp(orZero(w.r)); c != 0 {
		return c
	}
	return orZero(v.eps).Cmp(orZero(w.eps))
}

// Less is true iff v < w.
func (v Value) Less(w Value) bool { return v.Cmp(w) < 0 }

// Equal is true iff v == w.
func (v Value) Equal(w Value) bool { return v.Cmp(w) == 0 }

// CeilInt returns the least integer n such that n > v if strict, or n >= v otherwise.
// The boolean is false when v is infinite.
func (v Value) CeilInt(strict bool) (*big.Int, bool) {
	if !v.IsFinite() {
		return nil, false
	}
	r := orZero(v.r)
	eps := orZero(v.eps).Sign()
	floor := new(big.Int).Div(r.Num(), r.Denom()) // Euclidean division: floor for positive denominators.
	if !r.IsInt() {
		return floor.Add(floor, big.NewInt(1)), true
	}
	switch {
	case eps > 0, eps == 0 && strict:
		return floor.Add(floor, big.NewInt(1)), true
	default:
		return floor, true
	}
}

func (v Value) String() string {
	var parts []string
	switch inf := orZero(v.inf); {
	case inf.Sign() == 0:
	case inf.Cmp(big.NewRat(1, 1)) == 0:
		parts = append(parts, "oo")
	case inf.Cmp(big.NewRat(-1, 1)) == 0:
		parts = append(parts, "-oo")
	default:
		parts = append(parts, fmt.Sprintf("%s*oo", inf.RatString()))
	}
	r := orZero(v.r)
	eps := orZero(v.eps)
	if r.Sign() != 0 || (len(parts) == 0 && eps.Sign() == 0) {
		parts = appendTerm(parts, r.RatString())
	}
	if eps.Sign() != 0 {
		parts = appendTerm(parts, fmt.Sprintf("%s*epsilon", eps.RatString()))
	}
	return strings.Join(parts, "")
}

// appendTerm joins signed terms with " + " and " - ".
func appendTerm(parts []string, term string) []string {
	if len(parts) == 0 {
		return append(parts, term)
	}
	if strings.HasPrefix(term, "-") {
		return append(parts, " - ", term[1:])
	}
	return append(parts, " + ", term)
}
