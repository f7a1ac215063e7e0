package opt

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"

	"github.com/crillab/gopheropt/infeps"
)

// Maximize searches the maximum of objective i and records it.
// It returns the constraint "objective >= maximum", without asserting it;
// the constraint is nil when the objective is unbounded or infeasible.
// An inconclusive search is not an error: the objective is then flagged
// invalid and keeps the best value found.
func (s *Solver) Maximize(ctx context.Context, i int) (Expr, error) {
	e, err := s.registry.get(i)
	if err != nil {
		return nil, err
	}
	ctx, span := s.tracer.Start(ctx, "opt.maximize", trace.WithAttributes(
		attribute.Int("objective", i),
		attribute.String("strategy", s.strategy.Name()),
	))
	defer span.End()
	log := s.logger.WithFields(logrus.Fields{"objective": i, "strategy": s.strategy.Name()})
	log.Debugf("maximizing %s", e.term)
	p := &Probe{
		s:     s,
		index: i,
		proxy: e.proxy,
		sort:  e.term.Sort(),
		best:  infeps.MinusInfinity(),
		log:   log,
	}
	v := s.strategy.Refine(ctx, p)
	if v.Outcome == Optimal && s.cfg.Verify {
		v = s.verify(ctx, p, v)
	}
	if err := s.registry.Save(i, v.Value, v.Model, v.Outcome != BestEffort); err != nil {
		return nil, err
	}
	s.registry.conclude(i, v.Outcome, v.Reason)
	s.stats.NbObjectives++
	s.observer.Concluded(i, v.Outcome, p.rounds)

	span.SetAttributes(
		attribute.String("outcome", v.Outcome.String()),
		attribute.Int("rounds", p.rounds),
		attribute.String("value", v.Value.String()),
	)
	log = log.WithFields(logrus.Fields{"outcome": v.Outcome, "value": v.Value, "rounds": p.rounds})
	if v.Outcome == BestEffort {
		span.SetStatus(codes.Error, v.Reason)
		log.WithField("reason", v.Reason).Warn("objective not proven optimal")
	} else {
		log.Info("objective maximized")
	}
	if v.Outcome == Unbounded || v.Outcome == Infeasible || !v.Value.IsFinite() {
		return nil, nil
	}
	blocker, err := s.bound(p.proxy, v.Value, false)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrapf(err, "could not block objective %d", i)
	}
	return blocker, nil
}

// verify checks the value found for an objective is reached by some model.
// If it is not, the value is lowered by the smallest step of the objective's
// sort and is no longer valid.
func (s *Solver) verify(ctx context.Context, p *Probe, v Verdict) Verdict {
	ge, err := s.bound(p.proxy, v.Value, false)
	if err != nil {
		v.Outcome, v.Reason = BestEffort, err.Error()
		return v
	}
	res := s.check(ctx, assume(ge)...)
	if res.Status == StatusSat {
		return v
	}
	if p.Integral() {
		v.Value = v.Value.AddRat(big.NewRat(-1, 1))
	} else {
		v.Value = v.Value.Sub(infeps.WithEps(nil, big.NewRat(1, 1)))
	}
	v.Outcome, v.Reason = BestEffort, "bound not attained"
	return v
}

// MaximizeAll maximizes objectives in registration order. After each one, the
// constraint "objective >= maximum" is asserted so that later objectives cannot
// degrade earlier ones. The asserted constraints are returned so that callers
// can retract them by popping a scope pushed beforehand.
// Failing objectives do not stop the run; their errors are combined.
func (s *Solver) MaximizeAll(ctx context.Context) ([]Expr, error) {
	var (
		blockers []Expr
		errs     error
	)
	for i := 0; i < s.registry.Len(); i++ {
		blocker, err := s.Maximize(ctx, i)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if blocker == nil {
			continue
		}
		if err := s.Assert(blocker); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "objective %d", i))
			continue
		}
		blockers = append(blockers, blocker)
	}
	return blockers, errs
}
