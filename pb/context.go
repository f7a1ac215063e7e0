package pb

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/crillab/gophersat/solver"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/crillab/gopheropt/explain"
	"github.com/crillab/gopheropt/infeps"
	"github.com/crillab/gopheropt/opt"
)

// CoreMode says how the core of an unsatisfiable check is computed.
type CoreMode byte

const (
	// CoresDeletion shrinks cores to a minimal subset of the assumptions by deletion.
	CoresDeletion = CoreMode(iota)
	// CoresInsertion shrinks cores to a minimal subset of the assumptions by insertion.
	CoresInsertion
	// CoresNone reports all assumptions as the core.
	CoresNone
)

type frame struct {
	id      int
	asserts []Constr
	hidden  []pbc // Domains of integers and definitions of proxies
	decls   []Var // Variables declared by the user, in order
}

func (f *frame) clone() *frame {
	return &frame{
		id:      f.id,
		asserts: append([]Constr(nil), f.asserts...),
		hidden:  append([]pbc(nil), f.hidden...),
		decls:   append([]Var(nil), f.decls...),
	}
}

// A Context holds variables and constraints, organized in a stack of frames.
// It implements opt.Backend.
type Context struct {
	nbVars    int // Number of CNF variables allocated so far
	frames    []*frame
	nextID    int // Id of the next frame
	nbProxies int
	cores     CoreMode
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

// WithCores sets how unsatisfiable cores are computed.
func WithCores(mode CoreMode) Option {
	return func(c *Context) {
		c.cores = mode
	}
}

// New returns an empty context.
func New(options ...Option) *Context {
	c := &Context{frames: []*frame{{id: 0}}, nextID: 1}
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

func (c *Context) newVar() int {
	c.nbVars++
	return c.nbVars
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

// Bool declares a new boolean variable.
func (c *Context) Bool(name string) *Bool {
	top := c.top()
	b := &Bool{name: name, v: c.newVar(), frame: top.id}
	top.decls = append(top.decls, b)
	return b
}

// Int declares a new integer variable taking its values in [lo, hi].
func (c *Context) Int(name string, lo, hi int64) (*Int, error) {
	x, err := c.newInt(name, lo, hi)
	if err != nil {
		return nil, err
	}
	top := c.top()
	top.decls = append(top.decls, x)
	return x, nil
}

func (c *Context) newInt(name string, lo, hi int64) (*Int, error) {
	if err := checkDomain(name, lo, hi); err != nil {
		return nil, err
	}
	top := c.top()
	x := &Int{name: name, lo: lo, hi: hi, bits: make([]int, nbBits(hi-lo)), frame: top.id}
	for i := range x.bits {
		x.bits[i] = c.newVar()
	}
	if width := hi - lo; width != 1<<uint(len(x.bits))-1 {
		top.hidden = append(top.hidden, Le(Term(1, x), hi).pbs...)
	}
	return x, nil
}

// Holds returns the constraint stating f is true.
// Auxiliary variables are allocated in the current frame.
func (c *Context) Holds(f Formula) (Constr, error) {
	ts := tseitin{fresh: c.newVar}
	nbVars := c.nbVars
	clauses := ts.clauses(f.nnf())
	frames := make([]int, len(ts.lits))
	for i, l := range ts.lits {
		frames[i] = l.b.frame
	}
	if c.nbVars > nbVars {
		frames = append(frames, c.top().id)
	}
	res := Constr{desc: f.String(), pbs: make([]pbc, len(clauses)), frames: frames}
	if err := c.checkScopes(res, frames); err != nil {
		return Constr{}, err
	}
	for i, cl := range clauses {
		res.pbs[i] = clause(cl)
	}
	return res, nil
}

// Assert adds e to the current frame.
func (c *Context) Assert(e opt.Expr) error {
	cstr, ok := e.(Constr)
	if !ok {
		return errors.Errorf("cannot assert %v of type %T", e, e)
	}
	if cstr.err != nil {
		return errors.Wrapf(cstr.err, "cannot assert %s", cstr)
	}
	if err := c.checkScopes(cstr, cstr.frames); err != nil {
		return err
	}
	top := c.top()
	top.asserts = append(top.asserts, cstr)
	return nil
}

// Push opens a new frame.
func (c *Context) Push() {
	c.frames = append(c.frames, &frame{id: c.nextID})
	c.nextID++
}

// Pop removes the n innermost frames, their constraints and their variables.
func (c *Context) Pop(n int) error {
	if n < 0 || n > c.Scopes() {
		return errors.Wrapf(opt.ErrScope, "cannot pop %d frames out of %d", n, c.Scopes())
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
		for _, cstr := range f.asserts {
			res = append(res, cstr)
		}
	}
	return res
}

func (c *Context) decls() []Var {
	var res []Var
	for _, f := range c.frames {
		res = append(res, f.decls...)
	}
	return res
}

func (p pbc) constr() solver.PBConstr {
	res := solver.PBConstr{Lits: make([]int, len(p.lits)), Weights: make([]int, len(p.weights)), AtLeast: int(p.k)}
	copy(res.Lits, p.lits)
	for i, w := range p.weights {
		res.Weights[i] = int(w)
	}
	return res
}

// hard returns the live constraints in gophersat's format.
func (c *Context) hard() []solver.PBConstr {
	var res []solver.PBConstr
	for _, f := range c.frames {
		for _, p := range f.hidden {
			res = append(res, p.constr())
		}
		for _, cstr := range f.asserts {
			for _, p := range cstr.pbs {
				if !p.trivial() {
					res = append(res, p.constr())
				}
			}
		}
	}
	return res
}

// Check decides the live constraints under the given assumptions.
// The search runs on its own goroutine; when ctx is done before it ends,
// Check returns an aborted result and the search is left to finish in the background.
func (c *Context) Check(ctx context.Context, assumptions ...opt.Expr) opt.Result {
	if ctx.Err() != nil {
		return opt.Aborted()
	}
	pb := explain.Problem{Constrs: c.hard(), Logger: c.logger}
	sel := c.nbVars
	for _, a := range assumptions {
		cstr, ok := a.(Constr)
		if !ok {
			return opt.Unknown(fmt.Sprintf("invalid assumption %v of type %T", a, a))
		}
		if cstr.err != nil {
			return opt.Unknown(cstr.err.Error())
		}
		if err := c.checkScopes(cstr, cstr.frames); err != nil {
			return opt.Unknown(err.Error())
		}
		sel++
		for _, p := range cstr.pbs {
			pb.Constrs = append(pb.Constrs, explain.Relax(p.constr(), sel))
		}
		pb.Selectors = append(pb.Selectors, sel)
	}
	constrs := make([]solver.PBConstr, len(pb.Constrs), len(pb.Constrs)+len(pb.Selectors))
	for i, cstr := range pb.Constrs {
		constrs[i] = explain.Clone(cstr)
	}
	for _, sel := range pb.Selectors {
		constrs = append(constrs, solver.PropClause(-sel))
	}
	start := time.Now()
	s := solver.New(solver.ParsePBConstrs(constrs))
	done := make(chan solver.Status, 1)
	go func() { done <- s.Solve() }()
	var status solver.Status
	select {
	case <-ctx.Done():
		c.logger.WithField("elapsed", time.Since(start)).Debug("check aborted")
		return opt.Aborted()
	case status = <-done:
	}
	c.logger.WithFields(logrus.Fields{
		"vars":        sel,
		"constraints": len(constrs),
		"assumptions": len(assumptions),
		"status":      status,
		"elapsed":     time.Since(start),
	}).Debug("check done")
	switch status {
	case solver.Sat:
		return opt.Sat(&Model{vals: s.Model(), decls: c.decls()})
	case solver.Unsat:
		return opt.Unsat(c.core(ctx, &pb, assumptions))
	default:
		return opt.Unknown("search ended without a verdict")
	}
}

func (c *Context) core(ctx context.Context, pb *explain.Problem, assumptions []opt.Expr) []opt.Expr {
	if len(assumptions) == 0 || c.cores == CoresNone {
		return assumptions
	}
	var (
		idx []int
		err error
	)
	if c.cores == CoresInsertion {
		idx, err = pb.Insertion(ctx)
	} else {
		idx, err = pb.Deletion(ctx)
	}
	if err != nil {
		c.logger.WithError(err).Warn("could not shrink core")
		return assumptions
	}
	res := make([]opt.Expr, len(idx))
	for i, j := range idx {
		res[i] = assumptions[j]
	}
	return res
}

// NewProxy returns the integer variable equal to t.
// Integer variables are their own proxies; other expressions are bound
// to a fresh variable in the current frame.
func (c *Context) NewProxy(t opt.Term) (opt.Proxy, error) {
	var l Linear
	switch t := t.(type) {
	case *Int:
		l = Term(1, t)
	case Linear:
		l = t
	default:
		return nil, errors.Errorf("cannot bind %v of type %T", t, t)
	}
	if err := c.checkScopes(l, l.scopes()); err != nil {
		return nil, err
	}
	if x, ok := l.asVar(); ok {
		return x, nil
	}
	lo, hi, err := l.Bounds()
	if err != nil {
		return nil, err
	}
	c.nbProxies++
	p, err := c.newInt(fmt.Sprintf("obj#%d", c.nbProxies), lo, hi)
	if err != nil {
		return nil, errors.Wrapf(err, "could not bind %s", l)
	}
	def := Compare(Term(1, p), OpEq, l)
	if def.err != nil {
		// The bits of p stay allocated, but nothing refers to them.
		return nil, def.err
	}
	top := c.top()
	top.hidden = append(top.hidden, def.pbs...)
	return p, nil
}

func proxy(p opt.Proxy) (*Int, error) {
	x, ok := p.(*Int)
	if !ok {
		return nil, errors.Errorf("invalid proxy %v of type %T", p, p)
	}
	return x, nil
}

// Value returns the value of p in m.
func (c *Context) Value(m opt.Model, p opt.Proxy) (*big.Rat, error) {
	x, err := proxy(p)
	if err != nil {
		return nil, err
	}
	model, ok := m.(*Model)
	if !ok {
		return nil, errors.Errorf("invalid model of type %T", m)
	}
	return big.NewRat(model.Int(x), 1), nil
}

// Bound returns the constraint p > v if strict, p >= v else.
// Bounds outside of the domain of p yield a trivial constraint.
func (c *Context) Bound(p opt.Proxy, v infeps.Value, strict bool) (opt.Expr, error) {
	x, err := proxy(p)
	if err != nil {
		return nil, err
	}
	n, ok := v.CeilInt(strict)
	if !ok {
		return nil, errors.Errorf("cannot bound %s by %v", x, v)
	}
	desc := fmt.Sprintf("%s >= %s", x, n)
	switch {
	case n.Cmp(big.NewInt(x.lo)) <= 0:
		return Constr{desc: desc}, nil
	case n.Cmp(big.NewInt(x.hi)) > 0:
		return Constr{desc: desc, pbs: False().pbs}, nil
	default:
		return Ge(Term(1, x), n.Int64()), nil
	}
}

// Range returns the domain of p.
func (c *Context) Range(p opt.Proxy) (lo, hi *big.Rat, ok bool) {
	x, err := proxy(p)
	if err != nil {
		return nil, nil, false
	}
	return big.NewRat(x.lo, 1), big.NewRat(x.hi, 1), true
}

// Translate returns an independent copy of c.
// Variables and constraints built before the copy are valid in both contexts.
func (c *Context) Translate() (opt.Backend, error) {
	res := &Context{
		nbVars:    c.nbVars,
		nextID:    c.nextID,
		nbProxies: c.nbProxies,
		cores:     c.cores,
		logger:    c.logger,
	}
	for _, f := range c.frames {
		res.frames = append(res.frames, f.clone())
	}
	return res, nil
}

// BenchmarkFormat is "opb".
func (c *Context) BenchmarkFormat() string {
	return "opb"
}
