package opt

import (
	"fmt"
	"math/big"

	"github.com/crillab/gopheropt/infeps"
)

// An Adjuster maps values of an objective's proxy to the values reported to the user:
// adjust(v) = offset + v, or offset - v when negated.
// The zero Adjuster is the identity.
type Adjuster struct {
	offset *big.Rat
	negate bool
}

// NewAdjuster returns an adjuster with the given offset and orientation.
func NewAdjuster(offset *big.Rat, negate bool) Adjuster {
	var adj Adjuster
	adj.SetOffset(offset)
	adj.SetNegate(negate)
	return adj
}

// SetOffset changes the offset of adj.
func (adj *Adjuster) SetOffset(offset *big.Rat) {
	if offset == nil {
		adj.offset = nil
		return
	}
	adj.offset = new(big.Rat).Set(offset)
}

// SetNegate changes the orientation of adj.
func (adj *Adjuster) SetNegate(negate bool) {
	adj.negate = negate
}

// Offset returns a copy of the offset.
func (adj Adjuster) Offset() *big.Rat {
	if adj.offset == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(adj.offset)
}

// Negate is true iff adj flips values.
func (adj Adjuster) Negate() bool {
	return adj.negate
}

// Apply maps an internal value to its external value.
func (adj Adjuster) Apply(v infeps.Value) infeps.Value {
	if adj.negate {
		v = v.Neg()
	}
	return v.AddRat(adj.offset)
}

// ApplyRat is Apply on plain rationals.
func (adj Adjuster) ApplyRat(r *big.Rat) *big.Rat {
	res := new(big.Rat).Set(r)
	if adj.negate {
		res.Neg(res)
	}
	return res.Add(res, adj.Offset())
}

// Unapply maps an external value back to the internal value Apply maps to it.
func (adj Adjuster) Unapply(v infeps.Value) infeps.Value {
	v = v.AddRat(new(big.Rat).Neg(adj.Offset()))
	if adj.negate {
		v = v.Neg()
	}
	return v
}

func (adj Adjuster) String() string {
	if adj.negate {
		return fmt.Sprintf("%s - x", adj.Offset().RatString())
	}
	return fmt.Sprintf("%s + x", adj.Offset().RatString())
}
