package pb

import (
	"fmt"
	"strings"
)

// A Model is an assignment of the variables of a Context, found by a satisfiable check.
// Variables declared after the check are reported with their smallest value.
type Model struct {
	vals  []bool // vals[v-1] is the value of CNF variable v
	decls []Var  // Named variables live when the model was found
}

func (m *Model) value(v int) bool {
	return v > 0 && v <= len(m.vals) && m.vals[v-1]
}

// Lit returns the value of l in m.
func (m *Model) Lit(l Lit) bool {
	return m.value(l.b.v) != l.neg
}

// Bool returns the value of b in m.
func (m *Model) Bool(b *Bool) bool {
	return m.value(b.v)
}

// Int returns the value of x in m.
func (m *Model) Int(x *Int) int64 {
	res := x.lo
	for j, v := range x.bits {
		if m.value(v) {
			res += 1 << uint(j)
		}
	}
	return res
}

// Eval returns the value of l in m.
func (m *Model) Eval(l Linear) int64 {
	res := l.k
	for _, t := range l.terms {
		switch v := t.v.(type) {
		case *Bool:
			if m.Bool(v) {
				res += t.coef
			}
		case *Int:
			res += t.coef * m.Int(v)
		}
	}
	return res
}

func (m *Model) String() string {
	strs := make([]string, len(m.decls))
	for i, d := range m.decls {
		switch d := d.(type) {
		case *Bool:
			strs[i] = fmt.Sprintf("%s=%t", d, m.Bool(d))
		case *Int:
			strs[i] = fmt.Sprintf("%s=%d", d, m.Int(d))
		}
	}
	return strings.Join(strs, " ")
}
