package card

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-air/gini/z"

	"github.com/crillab/gopheropt/opt"
)

// A Lit is a boolean expression of a Context. Lits are also the constraints
// a Context asserts and assumes.
type Lit struct {
	m      z.Lit
	desc   string
	frames []int // Ids of the frames of the variables it depends on, sorted
}

func (l Lit) String() string { return l.desc }

// Not returns the negation of l.
func (l Lit) Not() Lit {
	return Lit{m: l.m.Not(), desc: "not(" + l.desc + ")", frames: l.frames}
}

func union(ls ...Lit) []int {
	var res []int
	for _, l := range ls {
		for _, id := range l.frames {
			i := sort.SearchInts(res, id)
			if i == len(res) || res[i] != id {
				res = append(res, 0)
				copy(res[i+1:], res[i:])
				res[i] = id
			}
		}
	}
	return res
}

func descs(ls []Lit) string {
	strs := make([]string, len(ls))
	for i, l := range ls {
		strs[i] = l.desc
	}
	return strings.Join(strs, ", ")
}

// A Count is the number of true literals among its operands. It is the
// objective term of this package.
type Count []Lit

func (c Count) String() string { return "count(" + descs(c) + ")" }

// Sort is opt.SortInt.
func (c Count) Sort() opt.Sort { return opt.SortInt }

// A Model is an assignment found by a satisfiable check.
type Model struct {
	vals  []bool // vals[v] is the value of circuit variable v
	decls []Lit
}

// Value returns the value of l in m.
func (m *Model) Value(l Lit) bool {
	v := int(l.m.Var())
	val := v < len(m.vals) && m.vals[v]
	return val == l.m.IsPos()
}

// Count returns the number of literals of c true in m.
func (m *Model) Count(c Count) int {
	n := 0
	for _, l := range c {
		if m.Value(l) {
			n++
		}
	}
	return n
}

func (m *Model) String() string {
	strs := make([]string, len(m.decls))
	for i, d := range m.decls {
		strs[i] = fmt.Sprintf("%s=%t", d, m.Value(d))
	}
	return strings.Join(strs, " ")
}
