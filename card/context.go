package card

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/crillab/gopheropt/infeps"
	"github.com/crillab/gopheropt/opt"
)

// ErrOutOfScope is returned when using an expression over a variable whose frame was popped.
var ErrOutOfScope = errors.New("variable used outside of its scope")

type frame struct {
	id      int
	sel     z.Lit // Selector guarding the clauses of the frame, z.LitNull for the outermost one
	asserts []opt.Expr
	decls   []Lit
}

func (f *frame) clone() *frame {
	return &frame{
		id:      f.id,
		sel:     f.sel,
		asserts: append([]opt.Expr(nil), f.asserts...),
		decls:   append([]Lit(nil), f.decls...),
	}
}

// A Context holds boolean expressions and an incremental gini solver.
// It implements opt.Backend.
type Context struct {
	g         *gini.Gini
	c         *logic.C
	rec       recorder
	marks     []int8 // Gates of c already translated to clauses
	frames    []*frame
	nextID    int
	nbProxies int
	poll      time.Duration
	logger    logrus.FieldLogger
}

// An Option configures a Context.
type Option func(c *Context)

// WithLogger sets the logger of the context.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Context) {
		c.logger = logger
	}
}

// WithPollInterval sets how often a running check looks for the cancellation of its context.
func WithPollInterval(d time.Duration) Option {
	return func(c *Context) {
		c.poll = d
	}
}

// New returns an empty context.
func New(options ...Option) *Context {
	g := gini.New()
	c := &Context{
		g:      g,
		c:      logic.NewC(),
		rec:    recorder{dst: g},
		frames: []*frame{{id: 0}},
		nextID: 1,
		poll:   time.Millisecond,
	}
	for _, option := range options {
		option(c)
	}
	if c.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		c.logger = logger
	}
	return c
}

var _ opt.Backend = (*Context)(nil)
var _ opt.Ranger = (*Context)(nil)
var _ opt.Formatter = (*Context)(nil)

func (c *Context) top() *frame {
	return c.frames[len(c.frames)-1]
}

func (c *Context) alive(id int) bool {
	for _, f := range c.frames {
		if f.id == id {
			return true
		}
	}
	return false
}

func (c *Context) checkScopes(desc fmt.Stringer, frames []int) error {
	for _, id := range frames {
		if !c.alive(id) {
			return errors.Wrapf(ErrOutOfScope, "%s", desc)
		}
	}
	return nil
}

// define adds the clauses of the gates m depends on.
func (c *Context) define(m z.Lit) {
	c.marks, _ = c.c.CnfSince(&c.rec, c.marks, m)
}

// Bool declares a new boolean variable.
func (c *Context) Bool(name string) Lit {
	top := c.top()
	l := Lit{m: c.c.Lit(), desc: name, frames: []int{top.id}}
	top.decls = append(top.decls, l)
	return l
}

// True returns the expression that always holds.
func (c *Context) True() Lit {
	return Lit{m: c.c.T, desc: "true"}
}

// False returns the expression that never holds.
func (c *Context) False() Lit {
	return Lit{m: c.c.F, desc: "false"}
}

func lits(ls []Lit) []z.Lit {
	res := make([]z.Lit, len(ls))
	for i, l := range ls {
		res[i] = l.m
	}
	return res
}

// And returns the conjunction of ls. It is true when ls is empty.
func (c *Context) And(ls ...Lit) Lit {
	return Lit{m: c.c.Ands(lits(ls)...), desc: "and(" + descs(ls) + ")", frames: union(ls...)}
}

// Or returns the disjunction of ls. It is false when ls is empty.
func (c *Context) Or(ls ...Lit) Lit {
	return Lit{m: c.c.Ors(lits(ls)...), desc: "or(" + descs(ls) + ")", frames: union(ls...)}
}

// Implies returns the expression "a implies b".
func (c *Context) Implies(a, b Lit) Lit {
	return Lit{m: c.c.Implies(a.m, b.m), desc: fmt.Sprintf("%s -> %s", a, b), frames: union(a, b)}
}

// AtMost returns the expression stating at most n of ls are true.
func (c *Context) AtMost(n int, ls ...Lit) Lit {
	cs := c.c.CardSort(lits(ls))
	return Lit{m: cs.Leq(n), desc: fmt.Sprintf("atmost(%d, %s)", n, descs(ls)), frames: union(ls...)}
}

// AtLeast returns the expression stating at least n of ls are true.
func (c *Context) AtLeast(n int, ls ...Lit) Lit {
	cs := c.c.CardSort(lits(ls))
	return Lit{m: cs.Geq(n), desc: fmt.Sprintf("atleast(%d, %s)", n, descs(ls)), frames: union(ls...)}
}

func expr(e opt.Expr) (Lit, error) {
	l, ok := e.(Lit)
	if !ok {
		return Lit{}, errors.Errorf("invalid expression %v of type %T", e, e)
	}
	return l, nil
}

// Assert adds e to the current frame.
func (c *Context) Assert(e opt.Expr) error {
	l, err := expr(e)
	if err != nil {
		return err
	}
	if err := c.checkScopes(l, l.frames); err != nil {
		return err
	}
	c.define(l.m)
	top := c.top()
	if top.sel != z.LitNull {
		c.rec.clause(top.sel.Not(), l.m)
	} else {
		c.rec.clause(l.m)
	}
	top.asserts = append(top.asserts, l)
	return nil
}

// Push opens a new frame, with its own selector.
func (c *Context) Push() {
	c.frames = append(c.frames, &frame{id: c.nextID, sel: c.c.Lit()})
	c.nextID++
}

// Pop removes the n innermost frames. Their selectors are falsified, so that
// their clauses are satisfied forever.
func (c *Context) Pop(n int) error {
	if n < 0 || n > c.Scopes() {
		return errors.Wrapf(opt.ErrScope, "cannot pop %d frames out of %d", n, c.Scopes())
	}
	for _, f := range c.frames[len(c.frames)-n:] {
		c.rec.clause(f.sel.Not())
	}
	c.frames = c.frames[:len(c.frames)-n]
	return nil
}

// Scopes returns the number of frames pushed so far.
func (c *Context) Scopes() int {
	return len(c.frames) - 1
}

// Assertions returns the live constraints, outermost frame first.
func (c *Context) Assertions() []opt.Expr {
	var res []opt.Expr
	for _, f := range c.frames {
		res = append(res, f.asserts...)
	}
	return res
}

func (c *Context) selectors() []z.Lit {
	var res []z.Lit
	for _, f := range c.frames[1:] {
		res = append(res, f.sel)
	}
	return res
}

func (c *Context) decls() []Lit {
	var res []Lit
	for _, f := range c.frames {
		res = append(res, f.decls...)
	}
	return res
}

// Check decides the live constraints under the given assumptions.
// When ctx is done before the search ends, the search is stopped and Check
// returns an aborted result, unless the search concluded in the meantime.
func (c *Context) Check(ctx context.Context, assumptions ...opt.Expr) opt.Result {
	if ctx.Err() != nil {
		return opt.Aborted()
	}
	ms := make([]z.Lit, len(assumptions))
	for i, a := range assumptions {
		l, err := expr(a)
		if err != nil {
			return opt.Unknown(err.Error())
		}
		if err := c.checkScopes(l, l.frames); err != nil {
			return opt.Unknown(err.Error())
		}
		c.define(l.m)
		ms[i] = l.m
	}
	c.g.Assume(c.selectors()...)
	c.g.Assume(ms...)
	start := time.Now()
	res, ok := c.wait(ctx, c.g.GoSolve())
	if !ok {
		c.logger.WithField("elapsed", time.Since(start)).Debug("check aborted")
		return opt.Aborted()
	}
	c.logger.WithFields(logrus.Fields{
		"vars":        c.g.MaxVar(),
		"clauses":     c.rec.nbClauses,
		"assumptions": len(assumptions),
		"result":      res,
		"elapsed":     time.Since(start),
	}).Debug("check done")
	switch res {
	case 1:
		return opt.Sat(c.model())
	case -1:
		return opt.Unsat(c.core(assumptions, ms))
	default:
		return opt.Unknown("search ended without a verdict")
	}
}

func (c *Context) wait(ctx context.Context, s inter.Solve) (int, bool) {
	ticker := time.NewTicker(c.poll)
	defer ticker.Stop()
	for {
		if res, ok := s.Test(); ok {
			return res, true
		}
		select {
		case <-ctx.Done():
			if res := s.Stop(); res != 0 {
				return res, true
			}
			return 0, false
		case <-ticker.C:
		}
	}
}

func (c *Context) model() *Model {
	n := int(c.g.MaxVar())
	vals := make([]bool, n+1)
	for v := 1; v <= n; v++ {
		vals[v] = c.g.Value(z.Var(v).Pos())
	}
	return &Model{vals: vals, decls: c.decls()}
}

// core maps the failed assumptions back to the expressions they come from.
// Selectors are left out: they stand for assertions.
func (c *Context) core(assumptions []opt.Expr, ms []z.Lit) []opt.Expr {
	failed := make(map[z.Lit]bool)
	for _, m := range c.g.Why(nil) {
		failed[m] = true
	}
	var res []opt.Expr
	for i, m := range ms {
		if failed[m] {
			res = append(res, assumptions[i])
			delete(failed, m)
		}
	}
	return res
}

// A Sorter is the proxy of a Count: a sorting network over its literals.
type Sorter struct {
	name   string
	count  Count
	cs     *logic.CardSort
	frames []int
}

func (s *Sorter) String() string { return s.name }

// NewProxy returns a sorting network over the literals of t, which must be a Count.
func (c *Context) NewProxy(t opt.Term) (opt.Proxy, error) {
	count, ok := t.(Count)
	if !ok {
		return nil, errors.Errorf("cannot bind %v of type %T", t, t)
	}
	frames := union(count...)
	if err := c.checkScopes(count, frames); err != nil {
		return nil, err
	}
	c.nbProxies++
	return &Sorter{
		name:   fmt.Sprintf("obj#%d", c.nbProxies),
		count:  count,
		cs:     c.c.CardSort(lits(count)),
		frames: frames,
	}, nil
}

func proxy(p opt.Proxy) (*Sorter, error) {
	s, ok := p.(*Sorter)
	if !ok {
		return nil, errors.Errorf("invalid proxy %v of type %T", p, p)
	}
	return s, nil
}

// Value returns the number of true literals of p in m.
func (c *Context) Value(m opt.Model, p opt.Proxy) (*big.Rat, error) {
	s, err := proxy(p)
	if err != nil {
		return nil, err
	}
	model, ok := m.(*Model)
	if !ok {
		return nil, errors.Errorf("invalid model of type %T", m)
	}
	return big.NewRat(int64(model.Count(s.count)), 1), nil
}

// Bound returns the output of the sorting network of p stating p > v if strict, p >= v else.
func (c *Context) Bound(p opt.Proxy, v infeps.Value, strict bool) (opt.Expr, error) {
	s, err := proxy(p)
	if err != nil {
		return nil, err
	}
	n, ok := v.CeilInt(strict)
	if !ok {
		return nil, errors.Errorf("cannot bound %s by %v", s, v)
	}
	desc := fmt.Sprintf("%s >= %s", s, n)
	switch {
	case n.Sign() <= 0:
		return Lit{m: c.c.T, desc: desc}, nil
	case n.Cmp(big.NewInt(int64(s.cs.N()))) > 0:
		return Lit{m: c.c.F, desc: desc}, nil
	default:
		return Lit{m: s.cs.Geq(int(n.Int64())), desc: desc, frames: s.frames}, nil
	}
}

// Range returns [0, n], where n is the number of literals counted by p.
func (c *Context) Range(p opt.Proxy) (lo, hi *big.Rat, ok bool) {
	s, err := proxy(p)
	if err != nil {
		return nil, nil, false
	}
	return new(big.Rat), big.NewRat(int64(s.cs.N()), 1), true
}

// Translate returns an independent copy of c, with a new solver fed with the clauses of c.
// Expressions built before the copy are valid in both contexts.
func (c *Context) Translate() (opt.Backend, error) {
	g := gini.New()
	res := &Context{
		g:         g,
		c:         c.c.Copy(),
		rec:       c.rec.replay(g),
		marks:     append([]int8(nil), c.marks...),
		nextID:    c.nextID,
		nbProxies: c.nbProxies,
		poll:      c.poll,
		logger:    c.logger,
	}
	for _, f := range c.frames {
		res.frames = append(res.frames, f.clone())
	}
	return res, nil
}

// BenchmarkFormat is "cnf".
func (c *Context) BenchmarkFormat() string {
	return "cnf"
}
