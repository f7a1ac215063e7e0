package card

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"

	"github.com/crillab/gopheropt/opt"
)

// recorder is an inter.Adder keeping a copy of every clause it forwards.
type recorder struct {
	dst       inter.Adder
	lits      []z.Lit // Clauses, each one terminated by z.LitNull
	nbClauses int
}

func (r *recorder) Add(m z.Lit) {
	r.lits = append(r.lits, m)
	if m == z.LitNull {
		r.nbClauses++
	}
	r.dst.Add(m)
}

func (r *recorder) clause(ms ...z.Lit) {
	for _, m := range ms {
		r.Add(m)
	}
	r.Add(z.LitNull)
}

// replay returns a recorder forwarding to dst, after adding to it all the clauses of r.
func (r *recorder) replay(dst inter.Adder) recorder {
	for _, m := range r.lits {
		dst.Add(m)
	}
	return recorder{dst: dst, lits: append([]z.Lit(nil), r.lits...), nbClauses: r.nbClauses}
}

// WriteBenchmark writes the clauses of c on w, in the DIMACS CNF format.
// Selectors of live frames and assumptions are written as unit clauses.
// The variables of declared booleans are given in comments.
func (c *Context) WriteBenchmark(w io.Writer, assumptions []opt.Expr) error {
	units := c.selectors()
	descs := make([]string, len(units))
	for i := range units {
		descs[i] = fmt.Sprintf("selector of frame %d", c.frames[i+1].id)
	}
	for _, a := range assumptions {
		l, err := expr(a)
		if err != nil {
			return err
		}
		c.define(l.m)
		units = append(units, l.m)
		descs = append(descs, "assumption "+l.desc)
	}
	bw := bufio.NewWriter(w)
	for _, d := range c.decls() {
		fmt.Fprintf(bw, "c %s = %d\n", d, d.m.Dimacs())
	}
	fmt.Fprintf(bw, "p cnf %d %d\n", c.c.Len()-1, c.rec.nbClauses+len(units))
	for _, m := range c.rec.lits {
		if m == z.LitNull {
			fmt.Fprintln(bw, "0")
		} else {
			fmt.Fprintf(bw, "%d ", m.Dimacs())
		}
	}
	for i, m := range units {
		fmt.Fprintf(bw, "c %s\n%d 0\n", descs[i], m.Dimacs())
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "could not write DIMACS output")
	}
	return nil
}
