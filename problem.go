package main

import (
	"fmt"
	"io"
	"math/big"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/crillab/gopheropt/card"
	"github.com/crillab/gopheropt/opt"
	"github.com/crillab/gopheropt/pb"
)

// A Problem is an optimization problem, as described in a YAML file.
//
//	ints:
//	  x: [0, 10]
//	bools: [a, b]
//	constraints:
//	  - linear: {x: 1, a: 4}
//	    op: "<="
//	    rhs: 12
//	  - clause: [a, -b]
//	  - atMost: 1
//	    lits: [a, b]
//	objectives:
//	  - name: profit
//	    maximize: {x: 3, b: 2}
//
// A literal is a boolean name, negated by a leading "-".
type Problem struct {
	Ints        map[string][2]int64 `yaml:"ints"`
	Bools       []string            `yaml:"bools" validate:"dive,required"`
	Constraints []Constraint        `yaml:"constraints" validate:"dive"`
	Objectives  []Objective         `yaml:"objectives" validate:"required,dive"`
}

// A Constraint is either a linear constraint, a clause or a cardinality constraint.
type Constraint struct {
	Linear  map[string]int64 `yaml:"linear"`
	Op      string           `yaml:"op" validate:"required_with=Linear,omitempty,oneof=>= > <= < ="`
	RHS     int64            `yaml:"rhs"`
	Clause  []string         `yaml:"clause"`
	AtLeast *int64           `yaml:"atLeast"`
	AtMost  *int64           `yaml:"atMost"`
	Lits    []string         `yaml:"lits"`
}

// An Objective is a weighted sum of variables to maximize or to minimize.
type Objective struct {
	Name     string           `yaml:"name" validate:"required"`
	Maximize map[string]int64 `yaml:"maximize" validate:"required_without=Minimize,excluded_with=Minimize"`
	Minimize map[string]int64 `yaml:"minimize"`
}

var validate = validator.New()

// LoadProblem reads and validates a YAML problem.
func LoadProblem(r io.Reader) (*Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, errors.Wrap(err, "could not parse problem")
	}
	if err := validate.Struct(p); err != nil {
		return nil, errors.Wrap(err, "invalid problem")
	}
	for i, c := range p.Constraints {
		if err := c.check(); err != nil {
			return nil, errors.Wrapf(err, "constraint #%d", i)
		}
	}
	return &p, nil
}

func (c Constraint) check() error {
	kinds := 0
	if c.Linear != nil {
		kinds++
	}
	if c.Clause != nil {
		kinds++
	}
	if c.AtLeast != nil || c.AtMost != nil {
		kinds++
	}
	if kinds != 1 {
		return errors.New("exactly one of linear, clause or atLeast/atMost must be given")
	}
	if c.AtLeast != nil && c.AtMost != nil {
		return errors.New("atLeast and atMost are exclusive")
	}
	return nil
}

// sorted returns the keys of m in increasing order.
func sorted(m map[string]int64) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

func parseLit(s string) (name string, neg bool) {
	if strings.HasPrefix(s, "-") {
		return s[1:], true
	}
	return s, false
}

// An instance is a problem stated on a backend.
type instance struct {
	backend   opt.Backend
	names     []string
	terms     []opt.Term
	adjusters []opt.Adjuster
}

func (in *instance) objective(name string, t opt.Term, adj opt.Adjuster) {
	in.names = append(in.names, name)
	in.terms = append(in.terms, t)
	in.adjusters = append(in.adjusters, adj)
}

// pbBuilder states problems on a pb.Context.
type pbBuilder struct {
	ctx   *pb.Context
	vars  map[string]pb.Var
	bools map[string]*pb.Bool
}

func buildPB(p *Problem, options ...pb.Option) (*instance, error) {
	b := pbBuilder{ctx: pb.New(options...), vars: make(map[string]pb.Var), bools: make(map[string]*pb.Bool)}
	names := make([]string, 0, len(p.Ints))
	for name := range p.Ints {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		dom := p.Ints[name]
		x, err := b.ctx.Int(name, dom[0], dom[1])
		if err != nil {
			return nil, err
		}
		b.vars[name] = x
	}
	for _, name := range p.Bools {
		if _, ok := b.vars[name]; ok {
			return nil, errors.Errorf("variable %q declared twice", name)
		}
		v := b.ctx.Bool(name)
		b.vars[name] = v
		b.bools[name] = v
	}
	for i, c := range p.Constraints {
		cstr, err := b.constr(c)
		if err != nil {
			return nil, errors.Wrapf(err, "constraint #%d", i)
		}
		if err := b.ctx.Assert(cstr); err != nil {
			return nil, err
		}
	}
	in := &instance{backend: b.ctx}
	for _, o := range p.Objectives {
		if o.Maximize != nil {
			l, err := b.linear(o.Maximize)
			if err != nil {
				return nil, errors.Wrapf(err, "objective %s", o.Name)
			}
			in.objective(o.Name, l, opt.Adjuster{})
		} else {
			l, err := b.linear(o.Minimize)
			if err != nil {
				return nil, errors.Wrapf(err, "objective %s", o.Name)
			}
			in.objective(o.Name, l.Neg(), opt.NewAdjuster(nil, true))
		}
	}
	return in, nil
}

func (b pbBuilder) linear(coefs map[string]int64) (pb.Linear, error) {
	var res pb.Linear
	for _, name := range sorted(coefs) {
		v, ok := b.vars[name]
		if !ok {
			return pb.Linear{}, errors.Errorf("undeclared variable %q", name)
		}
		res = res.Plus(pb.Term(coefs[name], v))
	}
	return res, nil
}

func (b pbBuilder) lits(strs []string) ([]pb.Lit, error) {
	res := make([]pb.Lit, len(strs))
	for i, s := range strs {
		name, neg := parseLit(s)
		v, ok := b.bools[name]
		if !ok {
			return nil, errors.Errorf("undeclared boolean %q", name)
		}
		res[i] = v.Lit()
		if neg {
			res[i] = v.Not()
		}
	}
	return res, nil
}

func (b pbBuilder) constr(c Constraint) (pb.Constr, error) {
	switch {
	case c.Linear != nil:
		l, err := b.linear(c.Linear)
		if err != nil {
			return pb.Constr{}, err
		}
		op, err := pb.ParseOp(c.Op)
		if err != nil {
			return pb.Constr{}, err
		}
		return pb.Compare(l, op, pb.Const(c.RHS)), nil
	case c.Clause != nil:
		lits, err := b.lits(c.Clause)
		return pb.Clause(lits...), err
	default:
		lits, err := b.lits(c.Lits)
		if c.AtLeast != nil {
			return pb.AtLeast(*c.AtLeast, lits...), err
		}
		return pb.AtMost(*c.AtMost, lits...), err
	}
}

// cardBuilder states problems on a card.Context.
// Only booleans are supported, and objectives must count literals.
type cardBuilder struct {
	ctx   *card.Context
	bools map[string]card.Lit
}

func buildCard(p *Problem, options ...card.Option) (*instance, error) {
	if len(p.Ints) > 0 {
		return nil, errors.New("the card backend has no integer variables")
	}
	b := cardBuilder{ctx: card.New(options...), bools: make(map[string]card.Lit)}
	for _, name := range p.Bools {
		if _, ok := b.bools[name]; ok {
			return nil, errors.Errorf("variable %q declared twice", name)
		}
		b.bools[name] = b.ctx.Bool(name)
	}
	for i, c := range p.Constraints {
		l, err := b.constr(c)
		if err != nil {
			return nil, errors.Wrapf(err, "constraint #%d", i)
		}
		if err := b.ctx.Assert(l); err != nil {
			return nil, err
		}
	}
	in := &instance{backend: b.ctx}
	for _, o := range p.Objectives {
		coefs, neg := o.Maximize, false
		if coefs == nil {
			coefs, neg = o.Minimize, true
		}
		var count card.Count
		for _, name := range sorted(coefs) {
			l, ok := b.bools[name]
			if !ok {
				return nil, errors.Errorf("objective %s: undeclared boolean %q", o.Name, name)
			}
			if coefs[name] != 1 {
				return nil, errors.Errorf("objective %s: the card backend only counts literals, %q has weight %d", o.Name, name, coefs[name])
			}
			if neg {
				l = l.Not()
			}
			count = append(count, l)
		}
		if neg {
			// Minimizing the true literals is maximizing the false ones.
			in.objective(o.Name, count, opt.NewAdjuster(big.NewRat(int64(len(count)), 1), true))
		} else {
			in.objective(o.Name, count, opt.Adjuster{})
		}
	}
	return in, nil
}

func (b cardBuilder) lits(strs []string) ([]card.Lit, error) {
	res := make([]card.Lit, len(strs))
	for i, s := range strs {
		name, neg := parseLit(s)
		l, ok := b.bools[name]
		if !ok {
			return nil, errors.Errorf("undeclared boolean %q", name)
		}
		if neg {
			l = l.Not()
		}
		res[i] = l
	}
	return res, nil
}

func (b cardBuilder) constr(c Constraint) (card.Lit, error) {
	if c.Linear != nil {
		return card.Lit{}, errors.New("the card backend has no linear constraints")
	}
	strs := c.Lits
	if c.Clause != nil {
		strs = c.Clause
	}
	lits, err := b.lits(strs)
	if err != nil {
		return card.Lit{}, err
	}
	switch {
	case c.Clause != nil:
		return b.ctx.Or(lits...), nil
	case c.AtLeast != nil:
		return b.ctx.AtLeast(int(*c.AtLeast), lits...), nil
	default:
		return b.ctx.AtMost(int(*c.AtMost), lits...), nil
	}
}

func (in *instance) String() string {
	return fmt.Sprintf("%d objectives on %T", len(in.terms), in.backend)
}
