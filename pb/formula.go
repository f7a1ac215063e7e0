package pb

import (
	"fmt"
	"strings"
)

// A Formula is any kind of boolean formula over Bool variables, not necessarily in CNF.
// A Lit is a Formula. Formulas become constraints through Context.Holds.
type Formula interface {
	nnf() Formula
	String() string
	// Eval returns the value of the formula in m.
	Eval(m *Model) bool
}

type trueConst struct{}

// Top is the formula that always holds.
var Top Formula = trueConst{}

func (t trueConst) nnf() Formula     { return t }
func (t trueConst) String() string   { return "⊤" }
func (t trueConst) Eval(*Model) bool { return true }

type falseConst struct{}

// Bottom is the formula that never holds.
var Bottom Formula = falseConst{}

func (f falseConst) nnf() Formula     { return f }
func (f falseConst) String() string   { return "⊥" }
func (f falseConst) Eval(*Model) bool { return false }

func (l Lit) nnf() Formula { return l }

// Eval returns the value of l in m.
func (l Lit) Eval(m *Model) bool { return m.Lit(l) }

// Not represents a negation. It negates the given subformula.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) nnf() Formula {
	switch f := n[0].(type) {
	case Lit:
		return f.Not()
	case not:
		return f[0].nnf()
	case and:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}
		}
		return or(subs).nnf()
	case or:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}
		}
		return and(subs).nnf()
	case trueConst:
		return Bottom
	case falseConst:
		return Top
	default:
		panic(fmt.Errorf("invalid formula type %T", f))
	}
}

func (n not) String() string { return "not(" + n[0].String() + ")" }

func (n not) Eval(m *Model) bool { return !n[0].Eval(m) }

// And generates a conjunction of subformulas.
func And(subs ...Formula) Formula {
	return and(subs)
}

type and []Formula

func (a and) nnf() Formula {
	var res and
	for _, s := range a {
		switch s := s.nnf().(type) {
		case and:
			res = append(res, s...)
		case trueConst:
		case falseConst:
			return Bottom
		default:
			res = append(res, s)
		}
	}
	switch len(res) {
	case 0:
		return Top
	case 1:
		return res[0]
	default:
		return res
	}
}

func (a and) String() string { return "and(" + join(a) + ")" }

func (a and) Eval(m *Model) bool {
	for _, s := range a {
		if !s.Eval(m) {
			return false
		}
	}
	return true
}

// Or generates a disjunction of subformulas.
func Or(subs ...Formula) Formula {
	return or(subs)
}

type or []Formula

func (o or) nnf() Formula {
	var res or
	for _, s := range o {
		switch s := s.nnf().(type) {
		case or:
			res = append(res, s...)
		case falseConst:
		case trueConst:
			return Top
		default:
			res = append(res, s)
		}
	}
	switch len(res) {
	case 0:
		return Bottom
	case 1:
		return res[0]
	default:
		return res
	}
}

func (o or) String() string { return "or(" + join(o) + ")" }

func (o or) Eval(m *Model) bool {
	for _, s := range o {
		if s.Eval(m) {
			return true
		}
	}
	return false
}

// Implies indicates a subformula implies another one.
func Implies(f1, f2 Formula) Formula {
	return or{not{f1}, f2}
}

// Iff indicates a subformula is equivalent to another one.
func Iff(f1, f2 Formula) Formula {
	return and{or{not{f1}, f2}, or{f1, not{f2}}}
}

// Xor indicates exactly one of two subformulas holds.
func Xor(f1, f2 Formula) Formula {
	return and{or{f1, f2}, or{not{f1}, not{f2}}}
}

func join(fs []Formula) string {
	strs := make([]string, len(fs))
	for i, f := range fs {
		strs[i] = f.String()
	}
	return strings.Join(strs, ", ")
}

// tseitin turns an NNF formula into clauses. Conjunctions nested in a disjunction
// are replaced by a fresh variable implying each of their members.
// fresh allocates a new CNF variable; lits collects the variables f refers to.
type tseitin struct {
	fresh func() int
	lits  []Lit
}

func (ts *tseitin) clauses(f Formula) [][]int {
	switch f := f.(type) {
	case Lit:
		ts.lits = append(ts.lits, f)
		return [][]int{{f.cnf()}}
	case and:
		var res [][]int
		for _, sub := range f {
			res = append(res, ts.clauses(sub)...)
		}
		return res
	case or:
		var (
			res  [][]int
			lits []int
		)
		for _, sub := range f {
			switch sub := sub.(type) {
			case Lit:
				ts.lits = append(ts.lits, sub)
				lits = append(lits, sub.cnf())
			case and:
				d := ts.fresh()
				lits = append(lits, d)
				for _, cl := range ts.clauses(sub) {
					res = append(res, append(cl, -d))
				}
			default:
				panic(fmt.Errorf("unexpected %T in NNF disjunction", sub))
			}
		}
		return append(res, lits)
	case trueConst:
		return nil
	case falseConst:
		return [][]int{{}}
	default:
		panic(fmt.Errorf("invalid NNF formula %T", f))
	}
}
