package opt

import (
	"math/big"
	"testing"

	"github.com/crillab/gopheropt/infeps"
)

func TestAdjusterApply(t *testing.T) {
	tests := []struct {
		offset *big.Rat
		negate bool
		in     infeps.Value
		want   infeps.Value
	}{
		{nil, false, infeps.FromInt(7), infeps.FromInt(7)},
		{nil, true, infeps.FromInt(7), infeps.FromInt(-7)},
		{big.NewRat(3, 1), false, infeps.FromInt(7), infeps.FromInt(10)},
		{big.NewRat(3, 1), true, infeps.FromInt(7), infeps.FromInt(-4)},
		{big.NewRat(1, 2), true, infeps.WithEps(big.NewRat(1, 1), big.NewRat(-1, 1)), infeps.WithEps(big.NewRat(-1, 2), big.NewRat(1, 1))},
		{big.NewRat(5, 1), true, infeps.PlusInfinity(), infeps.MinusInfinity().AddRat(big.NewRat(5, 1))},
	}
	for _, test := range tests {
		adj := NewAdjuster(test.offset, test.negate)
		if got := adj.Apply(test.in); !got.Equal(test.want) {
			t.Errorf("Invalid adjustment %v of %v: expected %v, got %v", adj, test.in, test.want, got)
		}
		if test.in.IsFinite() && test.in.Eps().Sign() == 0 {
			if got := adj.ApplyRat(test.in.Rat()); got.Cmp(test.want.Rat()) != 0 {
				t.Errorf("Invalid rational adjustment %v of %v: expected %v, got %v", adj, test.in, test.want, got)
			}
		}
	}
}

func TestAdjusterRoundTrip(t *testing.T) {
	offsets := []*big.Rat{nil, big.NewRat(0, 1), big.NewRat(-3, 2), big.NewRat(10, 1)}
	raws := []infeps.Value{
		infeps.FromInt(0),
		infeps.FromInt(-12),
		infeps.New(big.NewRat(5, 3)),
		infeps.WithEps(big.NewRat(2, 1), big.NewRat(-1, 1)),
		infeps.PlusInfinity(),
	}
	for _, offset := range offsets {
		for _, negate := range []bool{false, true} {
			adj := NewAdjuster(offset, negate)
			for _, r := range raws {
				if got := adj.Apply(adj.Unapply(r)); !got.Equal(r) {
					t.Errorf("adjust(unadjust(%v)) with %v: got %v", r, adj, got)
				}
				if got := adj.Unapply(adj.Apply(r)); !got.Equal(r) {
					t.Errorf("unadjust(adjust(%v)) with %v: got %v", r, adj, got)
				}
			}
		}
	}
}

func TestAdjusterSetters(t *testing.T) {
	var adj Adjuster
	if got := adj.Apply(infeps.FromInt(4)); !got.Equal(infeps.FromInt(4)) {
		t.Errorf("zero adjuster should be the identity, got %v", got)
	}
	offset := big.NewRat(2, 1)
	adj.SetOffset(offset)
	adj.SetNegate(true)
	offset.SetInt64(100)
	if got := adj.Apply(infeps.FromInt(4)); !got.Equal(infeps.FromInt(-2)) {
		t.Errorf("Invalid adjustment: expected -2, got %v", got)
	}
	if !adj.Negate() || adj.Offset().Cmp(big.NewRat(2, 1)) != 0 {
		t.Errorf("Invalid adjuster fields: %v", adj)
	}
}
