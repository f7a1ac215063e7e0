package infeps

import (
	"fmt"
	"math/big"
	"sort"
	"testing"
)

func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

func TestCmp(t *testing.T) {
	ordered := []Value{
		MinusInfinity(),
		FromInt(-5),
		WithEps(rat(3, 1), rat(-1, 1)),
		FromInt(3),
		WithEps(rat(3, 1), rat(1, 1)),
		WithEps(rat(3, 1), rat(2, 1)),
		New(rat(7, 2)),
		PlusInfinity(),
		PlusInfinity().AddRat(rat(1, 1)),
	}
	for i := range ordered {
		for j := range ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := ordered[i].Cmp(ordered[j]); got != want {
				t.Errorf("Invalid comparison of %v and %v: expected %d, got %d", ordered[i], ordered[j], want, got)
			}
		}
	}
}

func TestZeroValue(t *testing.T) {
	var v Value
	if !v.Equal(FromInt(0)) {
		t.Errorf("zero Value should equal 0, got %v", v)
	}
	if !v.IsFinite() || !v.IsInteger() {
		t.Errorf("zero Value should be a finite integer")
	}
	if got := v.Neg().String(); got != "0" {
		t.Errorf("Invalid string: expected 0, got %q", got)
	}
}

func TestNegPreservesOrder(t *testing.T) {
	vals := []Value{
		MinusInfinity(),
		WithEps(rat(1, 2), rat(1, 1)),
		FromInt(0),
		WithEps(rat(0, 1), rat(-3, 1)),
		PlusInfinity(),
	}
	for _, v := range vals {
		for _, w := range vals {
			if v.Cmp(w) != w.Neg().Cmp(v.Neg()) {
				t.Errorf("negation should reverse order of %v and %v", v, w)
			}
		}
		if !v.Neg().Neg().Equal(v) {
			t.Errorf("double negation of %v gave %v", v, v.Neg().Neg())
		}
	}
}

func TestArithmeticKeepsEpsilonSeparate(t *testing.T) {
	v := WithEps(rat(3, 1), rat(1, 1))
	doubled := v.MulRat(rat(2, 1))
	if doubled.Rat().Cmp(rat(6, 1)) != 0 || doubled.Eps().Cmp(rat(2, 1)) != 0 {
		t.Errorf("Invalid scaling: expected 6 + 2*epsilon, got %v", doubled)
	}
	sum := v.Add(WithEps(rat(1, 2), rat(-1, 1)))
	if sum.Rat().Cmp(rat(7, 2)) != 0 || sum.Eps().Sign() != 0 {
		t.Errorf("Invalid sum: expected 7/2, got %v", sum)
	}
	shifted := v.AddRat(rat(-3, 1))
	if shifted.Rat().Sign() != 0 || shifted.Eps().Cmp(rat(1, 1)) != 0 {
		t.Errorf("Invalid shift: expected 1*epsilon, got %v", shifted)
	}
	if diff := v.Sub(v); !diff.Equal(Value{}) {
		t.Errorf("v - v should be 0, got %v", diff)
	}
}

func TestImmutability(t *testing.T) {
	r := rat(5, 1)
	v := New(r)
	r.SetInt64(9)
	if v.Rat().Cmp(rat(5, 1)) != 0 {
		t.Errorf("New should copy its argument, got %v", v)
	}
	got := v.Rat()
	got.SetInt64(11)
	if v.Rat().Cmp(rat(5, 1)) != 0 {
		t.Errorf("Rat should return a copy, got %v", v)
	}
}

func TestCeilInt(t *testing.T) {
	tests := []struct {
		v      Value
		strict bool
		want   int64
	}{
		{FromInt(3), false, 3},
		{FromInt(3), true, 4},
		{FromInt(-3), true, -2},
		{New(rat(7, 2)), false, 4},
		{New(rat(7, 2)), true, 4},
		{New(rat(-7, 2)), false, -3},
		{WithEps(rat(3, 1), rat(1, 1)), false, 4},
		{WithEps(rat(3, 1), rat(-1, 1)), false, 3},
		{WithEps(rat(3, 1), rat(-1, 1)), true, 3},
	}
	for _, test := range tests {
		got, ok := test.v.CeilInt(test.strict)
		if !ok {
			t.Errorf("CeilInt(%v, %t) should be defined", test.v, test.strict)
			continue
		}
		if got.Int64() != test.want {
			t.Errorf("Invalid CeilInt(%v, %t): expected %d, got %d", test.v, test.strict, test.want, got.Int64())
		}
	}
	if _, ok := PlusInfinity().CeilInt(false); ok {
		t.Errorf("CeilInt(oo) should not be defined")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Value{}, "0"},
		{FromInt(10), "10"},
		{New(rat(-1, 2)), "-1/2"},
		{WithEps(rat(3, 1), rat(-1, 1)), "3 - 1*epsilon"},
		{WithEps(rat(0, 1), rat(2, 1)), "2*epsilon"},
		{PlusInfinity(), "oo"},
		{MinusInfinity(), "-oo"},
		{PlusInfinity().AddRat(rat(2, 1)), "oo + 2"},
	}
	for _, test := range tests {
		if got := test.v.String(); got != test.want {
			t.Errorf("Invalid string: expected %q, got %q", test.want, got)
		}
	}
}

func ExampleValue_Less() {
	vals := []Value{PlusInfinity(), FromInt(4), WithEps(rat(4, 1), rat(-1, 1)), MinusInfinity()}
	sort.Slice(vals, func(i, j int) bool { return vals[i].Less(vals[j]) })
	fmt.Println(vals)
	// Output:
	// [-oo 4 - 1*epsilon 4 oo]
}
