package opt

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"

	"github.com/crillab/gopheropt/infeps"
)

type namedTerm string

func (n namedTerm) String() string { return string(n) }

func (n namedTerm) Sort() Sort { return SortInt }

func newRegistry(depths ...int) *Registry {
	var r Registry
	for i, d := range depths {
		r.add(entry{term: namedTerm(string(rune('a' + i))), depth: d, value: infeps.MinusInfinity()})
	}
	return &r
}

func TestRegistryTruncate(t *testing.T) {
	tests := []struct {
		depths  []int
		depth   int
		dropped int
	}{
		{nil, 0, 0},
		{[]int{0, 0, 1}, 1, 0},
		{[]int{0, 0, 1}, 0, 1},
		{[]int{0, 1, 2, 2}, 0, 3},
		{[]int{0, 1, 2, 2}, 1, 2},
		{[]int{1, 1}, 0, 2},
	}
	for _, test := range tests {
		r := newRegistry(test.depths...)
		if got := r.Truncate(test.depth); got != test.dropped {
			t.Errorf("Truncate(%d) on %v: expected %d dropped, got %d", test.depth, test.depths, test.dropped, got)
		}
		if r.Len() != len(test.depths)-test.dropped {
			t.Errorf("Truncate(%d) on %v: %d objectives left", test.depth, test.depths, r.Len())
		}
	}
}

func TestRegistrySaveAndAdjust(t *testing.T) {
	r := newRegistry(0, 0)
	if err := r.SetAdjuster(1, NewAdjuster(big.NewRat(10, 1), true)); err != nil {
		t.Fatalf("could not set adjuster: %v", err)
	}
	if err := r.Save(1, infeps.FromInt(4), nil, true); err != nil {
		t.Fatalf("could not save value: %v", err)
	}
	if v, _ := r.Value(1); !v.Equal(infeps.FromInt(6)) {
		t.Errorf("Invalid adjusted value: expected 6, got %v", v)
	}
	if v, _ := r.RawValue(1); !v.Equal(infeps.FromInt(4)) {
		t.Errorf("Invalid raw value: expected 4, got %v", v)
	}
	values := r.Values()
	if len(values) != 2 || !values[0].IsMinusInfinity() || !values[1].Equal(infeps.FromInt(6)) {
		t.Errorf("Invalid values: %v", values)
	}
	if valid, _ := r.IsValid(1); !valid {
		t.Errorf("value should be valid")
	}
	if valid, _ := r.IsValid(0); valid {
		t.Errorf("unsolved objective should not be valid")
	}
	r.conclude(1, Optimal, "")
	if err := r.SetAdjuster(1, Adjuster{}); !errors.Is(err, ErrAdjusterInUse) {
		t.Errorf("expected ErrAdjusterInUse, got %v", err)
	}
	if o, _ := r.Outcome(0); o != Pending {
		t.Errorf("expected pending objective, got %v", o)
	}
	if tm, _ := r.Term(1); tm.String() != "b" {
		t.Errorf("Invalid term: %v", tm)
	}
}

func TestRegistryOutOfRange(t *testing.T) {
	r := newRegistry(0)
	for _, i := range []int{-1, 1, 5} {
		if _, err := r.Value(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Value(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
		if err := r.Save(i, infeps.FromInt(0), nil, false); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Save(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
		if _, err := r.Adjuster(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Adjuster(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Reset registry still holds %d objectives", r.Len())
	}
}

func TestOutcomeString(t *testing.T) {
	want := []string{"pending", "optimal", "unbounded", "infeasible", "best-effort", "invalid"}
	for o, w := range want {
		if got := Outcome(o).String(); got != w {
			t.Errorf("Outcome(%d): expected %q, got %q", o, w, got)
		}
	}
}
