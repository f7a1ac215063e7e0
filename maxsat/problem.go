package maxsat

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/crillab/gopheropt/opt"
	"github.com/crillab/gopheropt/pb"
)

// ErrNotOptimal is returned along with the best solution found when the search
// ended before the optimum was proven.
var ErrNotOptimal = errors.New("solution not proven optimal")

// A Model associates variable names with a binding.
type Model map[string]bool

type soft struct {
	sat    *pb.Bool // True only if the constraint is satisfied
	weight int64
}

// A Problem is a set of hard and soft constraints over a pb.Context.
type Problem struct {
	ctx   *pb.Context
	vars  map[string]*pb.Bool
	names []string // Names of the variables, in order of appearance
	softs []soft
	cost  int64 // Sum of the weights of soft constraints
}

// New returns a new problem associated with the given constraints.
// The options configure the underlying context.
func New(constrs []Constr, options ...pb.Option) (*Problem, error) {
	p := &Problem{ctx: pb.New(options...), vars: make(map[string]*pb.Bool)}
	for _, c := range constrs {
		if err := p.add(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Problem) lit(l Lit) pb.Lit {
	b, ok := p.vars[l.Var]
	if !ok {
		b = p.ctx.Bool(l.Var)
		p.vars[l.Var] = b
		p.names = append(p.names, l.Var)
	}
	if l.Negated {
		return b.Not()
	}
	return b.Lit()
}

// linear returns the left-hand side of c. not(v) counts as 1 - v.
func (p *Problem) linear(c Constr) pb.Linear {
	var res pb.Linear
	for i, l := range c.Lits {
		k := int64(c.coeff(i))
		pl := p.lit(l)
		if pl.Negative() {
			res = res.Plus(pb.Term(-k, pl.Var()).Plus(pb.Const(k)))
		} else {
			res = res.Plus(pb.Term(k, pl.Var()))
		}
	}
	return res
}

func (p *Problem) add(c Constr) error {
	if err := c.validate(); err != nil {
		return err
	}
	lhs := p.linear(c)
	if !c.Soft() {
		return p.ctx.Assert(pb.Ge(lhs, int64(c.AtLeast)))
	}
	// sat -> lhs >= k, i.e. lhs + m*not(sat) >= k, where m = k - lo makes
	// the constraint hold for any lhs when sat is false.
	lo, _, err := lhs.Bounds()
	if err != nil {
		return errors.Wrapf(ErrInvalidConstr, "%s: %v", c, err)
	}
	k := int64(c.AtLeast)
	m := k - lo
	if m < 0 {
		m = 0
	}
	sat := p.ctx.Bool(fmt.Sprintf("soft#%d", len(p.softs)))
	if err := p.ctx.Assert(pb.Ge(lhs.Plus(pb.Term(-m, sat)), k-m)); err != nil {
		return err
	}
	p.softs = append(p.softs, soft{sat: sat, weight: int64(c.Weight)})
	p.cost += int64(c.Weight)
	return nil
}

// satisfied is the total weight of the satisfied soft constraints.
func (p *Problem) satisfied() pb.Linear {
	var res pb.Linear
	for _, s := range p.softs {
		res = res.Plus(pb.Term(s.weight, s.sat))
	}
	return res
}

// Solve returns an optimal model for the problem and its cost.
// If the model is nil and the cost is -1, the hard constraints cannot be satisfied.
// By default, the search goes down from the weight of all soft constraints
// with the opt.Descending strategy; options can override it.
// When the search ends early, Solve returns the best model found, if any,
// and an error wrapping ErrNotOptimal.
func (p *Problem) Solve(ctx context.Context, options ...opt.Option) (Model, int, error) {
	s, err := opt.New(p.ctx, append([]opt.Option{opt.WithStrategy(opt.Descending{})}, options...)...)
	if err != nil {
		return nil, -1, err
	}
	s.Push()
	defer func() { _ = s.Pop(1) }()
	i, err := s.Register(p.satisfied(), opt.NewAdjuster(big.NewRat(p.cost, 1), true))
	if err != nil {
		return nil, -1, errors.Wrap(err, "could not build objective")
	}
	if _, err := s.Maximize(ctx, i); err != nil {
		return nil, -1, err
	}
	outcome, _ := s.Outcome(i)
	if outcome == opt.Infeasible {
		return nil, -1, nil
	}
	var res Model
	if m, _ := s.ObjectiveModel(i); m != nil {
		res = p.model(m.(*pb.Model))
	}
	v, _ := s.Value(i)
	cost := -1
	if v.IsFinite() {
		cost = int(v.Rat().Num().Int64())
	}
	if outcome != opt.Optimal {
		reason, _ := s.Reason(i)
		return res, cost, errors.Wrap(ErrNotOptimal, reason)
	}
	return res, cost, nil
}

func (p *Problem) model(m *pb.Model) Model {
	res := make(Model, len(p.names))
	for _, name := range p.names {
		res[name] = m.Bool(p.vars[name])
	}
	return res
}

// Output writes the problem on w, in the OPB format.
func (p *Problem) Output(w io.Writer) error {
	return p.ctx.WriteBenchmark(w, nil)
}
