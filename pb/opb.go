package pb

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/crillab/gopheropt/opt"
)

// WriteBenchmark writes the live constraints and the given assumptions on w, in the OPB format.
// Each constraint is preceded by a comment line describing it, and the encoding of
// every declared variable is given in comments after the prolog.
func (c *Context) WriteBenchmark(w io.Writer, assumptions []opt.Expr) error {
	type section struct {
		desc string
		pbs  []pbc
	}
	var sections []section
	for _, f := range c.frames {
		if len(f.hidden) > 0 {
			sections = append(sections, section{desc: fmt.Sprintf("domains and proxies of frame %d", f.id), pbs: f.hidden})
		}
		for _, cstr := range f.asserts {
			sections = append(sections, section{desc: cstr.desc, pbs: cstr.pbs})
		}
	}
	for _, a := range assumptions {
		cstr, ok := a.(Constr)
		if !ok {
			return errors.Errorf("invalid assumption %v of type %T", a, a)
		}
		sections = append(sections, section{desc: "assumption " + cstr.desc, pbs: cstr.pbs})
	}
	nbConstrs := 0
	for _, s := range sections {
		for _, p := range s.pbs {
			if !p.trivial() {
				nbConstrs++
			}
		}
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "* #variable= %d #constraint= %d\n", c.nbVars, nbConstrs)
	for _, d := range c.decls() {
		fmt.Fprintf(bw, "* %s: %s\n", describe(d), encoding(d))
	}
	for _, s := range sections {
		fmt.Fprintf(bw, "* %s\n", s.desc)
		for _, p := range s.pbs {
			if !p.trivial() {
				fmt.Fprintf(bw, "%s\n", p.opb())
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "could not write OPB output")
	}
	return nil
}

func encoding(v Var) string {
	switch v := v.(type) {
	case *Bool:
		return fmt.Sprintf("x%d", v.v)
	case *Int:
		terms := []string{fmt.Sprintf("%d", v.lo)}
		for j, b := range v.bits {
			terms = append(terms, fmt.Sprintf("%d x%d", int64(1)<<uint(j), b))
		}
		return strings.Join(terms, " + ")
	default:
		return "?"
	}
}

func (p pbc) opb() string {
	var sb strings.Builder
	for i, l := range p.lits {
		if l < 0 {
			fmt.Fprintf(&sb, "+%d ~x%d ", p.weights[i], -l)
		} else {
			fmt.Fprintf(&sb, "+%d x%d ", p.weights[i], l)
		}
	}
	fmt.Fprintf(&sb, ">= %d ;", p.k)
	return sb.String()
}
