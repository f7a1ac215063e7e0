package opt

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/crillab/gopheropt/infeps"
)

// A Strategy searches the maximum of one objective through a Probe.
// A Solver uses a single strategy for all its objectives.
type Strategy interface {
	Name() string
	Refine(ctx context.Context, p *Probe) Verdict
}

// StrategyByName returns the strategy called name.
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case "", "linear":
		return Linear{}, nil
	case "binary":
		return Binary{}, nil
	case "descending":
		return Descending{}, nil
	default:
		return nil, errors.Errorf("unknown strategy %q", name)
	}
}

// A Verdict is what a strategy found about an objective. Value is in the proxy's scale.
type Verdict struct {
	Outcome Outcome
	Value   infeps.Value
	Model   Model
	Reason  string
}

// A Probe gives a strategy access to the objective being maximized.
type Probe struct {
	s      *Solver
	index  int
	proxy  Proxy
	sort   Sort
	rounds int
	best   infeps.Value
	model  Model
	log    logrus.FieldLogger
}

// Index returns the index of the objective.
func (p *Probe) Index() int { return p.index }

// Config returns the configuration of the run.
func (p *Probe) Config() Config { return p.s.cfg }

// Integral is true iff the objective only takes integer values.
func (p *Probe) Integral() bool { return p.sort == SortInt }

// Rounds returns the number of refinement checks run so far.
func (p *Probe) Rounds() int { return p.rounds }

// Best returns the best value found so far and its witness.
// The value is -oo and the model nil until a model was found.
func (p *Probe) Best() (infeps.Value, Model) { return p.best, p.model }

// Exhausted is true once the configured number of rounds was spent.
func (p *Probe) Exhausted() bool {
	limit := p.s.cfg.MaxRounds
	return limit > 0 && p.rounds >= limit
}

// Check runs one refinement check.
func (p *Probe) Check(ctx context.Context, assumptions ...Expr) Result {
	p.rounds++
	p.s.stats.NbRounds++
	return p.s.check(ctx, assumptions...)
}

// Above returns the constraint "objective > v", or nil if every value satisfies it.
func (p *Probe) Above(v infeps.Value) (Expr, error) {
	return p.s.bound(p.proxy, v, true)
}

// AtLeast returns the constraint "objective >= v", or nil if every value satisfies it.
func (p *Probe) AtLeast(v infeps.Value) (Expr, error) {
	return p.s.bound(p.proxy, v, false)
}

// Value returns the value of the objective in m.
func (p *Probe) Value(m Model) (infeps.Value, error) {
	r, err := p.s.backend.Value(m, p.proxy)
	if err != nil {
		return infeps.Value{}, errors.Wrapf(err, "could not read value of objective %d", p.index)
	}
	return infeps.New(r), nil
}

// Range returns static bounds of the objective, if the backend knows them.
func (p *Probe) Range() (lo, hi infeps.Value, ok bool) {
	ranger, ok := p.s.backend.(Ranger)
	if !ok {
		return infeps.MinusInfinity(), infeps.PlusInfinity(), false
	}
	l, h, ok := ranger.Range(p.proxy)
	if !ok {
		return infeps.MinusInfinity(), infeps.PlusInfinity(), false
	}
	return infeps.New(l), infeps.New(h), true
}

// Improve records v, witnessed by m, as the new best value.
// v must be strictly larger than the previous best value.
func (p *Probe) Improve(v infeps.Value, m Model) error {
	if !p.best.Less(v) {
		return errors.Errorf("model does not improve objective %d: %v after %v", p.index, v, p.best)
	}
	p.best, p.model = v, m
	p.log.WithFields(logrus.Fields{"round": p.rounds, "value": v}).Debug("objective improved")
	return p.s.registry.Save(p.index, v, m, false)
}

// ImproveFrom reads the value of the objective in m and records it.
func (p *Probe) ImproveFrom(m Model) error {
	v, err := p.Value(m)
	if err != nil {
		return err
	}
	return p.Improve(v, m)
}

// ProbeUnbounded checks whether the objective reaches the unboundedness threshold.
// The boolean is false if the search must go on.
func (p *Probe) ProbeUnbounded(ctx context.Context) (Verdict, bool) {
	ge, err := p.AtLeast(infeps.FromInt(p.s.cfg.UnboundedThreshold))
	if err != nil {
		return p.BestEffort(err.Error()), true
	}
	p.s.stats.NbProbes++
	res := p.s.check(ctx, ge)
	switch res.Status {
	case StatusSat:
		return Verdict{Outcome: Unbounded, Value: infeps.PlusInfinity(), Model: res.Model}, true
	case StatusUnsat:
		return Verdict{}, false
	default:
		return p.BestEffort(res.Reason), true
	}
}

// Optimal returns a verdict stating the best value is the maximum.
func (p *Probe) Optimal() Verdict {
	return Verdict{Outcome: Optimal, Value: p.best, Model: p.model}
}

// Infeasible returns a verdict stating the problem has no model.
func (p *Probe) Infeasible() Verdict {
	return Verdict{Outcome: Infeasible, Value: infeps.MinusInfinity()}
}

// BestEffort returns a verdict keeping the best value found so far, unproven.
func (p *Probe) BestEffort(reason string) Verdict {
	return Verdict{Outcome: BestEffort, Value: p.best, Model: p.model, Reason: reason}
}

func assume(e Expr) []Expr {
	if e == nil {
		return nil
	}
	return []Expr{e}
}

const roundLimit = "refinement round limit reached"

// Linear improves the objective model after model: each check asks for a value
// strictly larger than the last one, until none exists.
type Linear struct{}

func (Linear) Name() string { return "linear" }

func (Linear) Refine(ctx context.Context, p *Probe) Verdict {
	_, hi, bounded := p.Range()
	bounded = bounded && hi.IsFinite()
	every := p.Config().ProbeAfter
	improved := 0
	for {
		if p.Exhausted() {
			return p.BestEffort(roundLimit)
		}
		best, _ := p.Best()
		above, err := p.Above(best)
		if err != nil {
			return p.BestEffort(err.Error())
		}
		res := p.Check(ctx, assume(above)...)
		switch res.Status {
		case StatusSat:
			if err := p.ImproveFrom(res.Model); err != nil {
				return p.BestEffort(err.Error())
			}
			improved++
			if !bounded && every > 0 && improved%every == 0 {
				if v, done := p.ProbeUnbounded(ctx); done {
					return v
				}
			}
		case StatusUnsat:
			if _, m := p.Best(); m == nil {
				return p.Infeasible()
			}
			return p.Optimal()
		default:
			return p.BestEffort(res.Reason)
		}
	}
}

// Binary bisects between the first model's value and the static upper bound
// of an integer objective. Without such a bound it behaves like Linear.
type Binary struct{}

func (Binary) Name() string { return "binary" }

func (Binary) Refine(ctx context.Context, p *Probe) Verdict {
	_, hi, ok := p.Range()
	if !ok || !hi.IsFinite() || !p.Integral() {
		return Linear{}.Refine(ctx, p)
	}
	switch res := p.Check(ctx); res.Status {
	case StatusSat:
		if err := p.ImproveFrom(res.Model); err != nil {
			return p.BestEffort(err.Error())
		}
	case StatusUnsat:
		return p.Infeasible()
	default:
		return p.BestEffort(res.Reason)
	}
	upper, _ := hi.CeilInt(false)
	for {
		best, _ := p.Best()
		lower, _ := best.CeilInt(false)
		if lower.Cmp(upper) >= 0 {
			return p.Optimal()
		}
		if p.Exhausted() {
			return p.BestEffort(roundLimit)
		}
		// mid is in ]lower, upper].
		mid := new(big.Int).Sub(upper, lower)
		mid.Add(mid, big.NewInt(1)).Rsh(mid, 1).Add(mid, lower)
		ge, err := p.AtLeast(infeps.New(new(big.Rat).SetInt(mid)))
		if err != nil {
			return p.BestEffort(err.Error())
		}
		res := p.Check(ctx, assume(ge)...)
		switch res.Status {
		case StatusSat:
			if err := p.ImproveFrom(res.Model); err != nil {
				return p.BestEffort(err.Error())
			}
		case StatusUnsat:
			upper = mid.Sub(mid, big.NewInt(1))
		default:
			return p.BestEffort(res.Reason)
		}
	}
}

// Descending starts from the static upper bound of an integer objective and
// lowers it until the problem becomes satisfiable, the usual order for
// MaxSAT-like objectives. Without such a bound it behaves like Linear.
type Descending struct{}

func (Descending) Name() string { return "descending" }

func (Descending) Refine(ctx context.Context, p *Probe) Verdict {
	lo, hi, ok := p.Range()
	if !ok || !hi.IsFinite() || !p.Integral() {
		return Linear{}.Refine(ctx, p)
	}
	k, _ := hi.CeilInt(false)
	floor, _ := lo.CeilInt(false)
	for ; k.Cmp(floor) >= 0; k.Sub(k, big.NewInt(1)) {
		if p.Exhausted() {
			return p.BestEffort(roundLimit)
		}
		ge, err := p.AtLeast(infeps.New(new(big.Rat).SetInt(k)))
		if err != nil {
			return p.BestEffort(err.Error())
		}
		res := p.Check(ctx, assume(ge)...)
		switch res.Status {
		case StatusSat:
			if err := p.ImproveFrom(res.Model); err != nil {
				return p.BestEffort(err.Error())
			}
			return p.Optimal()
		case StatusUnsat:
		default:
			return p.BestEffort(res.Reason)
		}
	}
	return p.Infeasible()
}
