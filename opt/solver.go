package opt

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/crillab/gopheropt/infeps"
)

// A Solver wraps a Backend and maximizes objectives over its assertions.
// It is not safe for concurrent use.
type Solver struct {
	backend  Backend
	registry Registry
	cfg      Config
	strategy Strategy
	logger   logrus.FieldLogger
	tracer   trace.Tracer
	dumper   *Dumper
	observer Observer
	stats    Stats

	last          Result // Result of the last check.
	checked       bool   // False until the first check.
	reasonUnknown string
	wasUnknown    bool // True once a check did not conclude.
}

// Option configures a Solver.
type Option func(s *Solver) error

// WithConfig sets the configuration of the solver.
func WithConfig(cfg Config) Option {
	return func(s *Solver) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		s.cfg = cfg
		return nil
	}
}

// WithStrategy overrides the strategy named by the configuration.
func WithStrategy(strategy Strategy) Option {
	return func(s *Solver) error {
		s.strategy = strategy
		return nil
	}
}

// WithLogger sets the logger of the solver.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Solver) error {
		s.logger = logger
		return nil
	}
}

// WithTracer sets the tracer used to record one span per maximized objective.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Solver) error {
		s.tracer = tracer
		return nil
	}
}

// WithDumper makes the solver write a benchmark before each check.
func WithDumper(d *Dumper) Option {
	return func(s *Solver) error {
		s.dumper = d
		return nil
	}
}

// WithObserver sets an observer notified of checks and maximizations.
func WithObserver(o Observer) Option {
	return func(s *Solver) error {
		s.observer = o
		return nil
	}
}

var defaults = []Option{
	func(s *Solver) error {
		if s.strategy == nil {
			strategy, err := StrategyByName(s.cfg.Strategy)
			if err != nil {
				return err
			}
			s.strategy = strategy
		}
		return nil
	},
	func(s *Solver) error {
		if s.logger == nil {
			logger := logrus.New()
			logger.SetOutput(io.Discard)
			if s.cfg.Verbose {
				logger.SetOutput(os.Stderr)
				logger.SetLevel(logrus.DebugLevel)
			}
			s.logger = logger
		}
		return nil
	},
	func(s *Solver) error {
		if s.tracer == nil {
			s.tracer = otel.Tracer("github.com/crillab/gopheropt/opt")
		}
		return nil
	},
	func(s *Solver) error {
		if s.dumper == nil && s.cfg.DumpDir != "" {
			s.dumper = NewDumper(s.cfg.DumpDir, s.cfg.DumpPrefix)
		}
		return nil
	},
	func(s *Solver) error {
		if s.observer == nil {
			s.observer = nopObserver{}
		}
		return nil
	},
}

// New returns a solver driving b.
func New(b Backend, options ...Option) (*Solver, error) {
	if b == nil {
		return nil, errors.New("no backend given")
	}
	s := Solver{backend: b, cfg: DefaultConfig()}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// Backend returns the decision procedure driven by s.
func (s *Solver) Backend() Backend {
	return s.backend
}

// Objectives gives read access to the objectives of s.
func (s *Solver) Objectives() *Registry {
	return &s.registry
}

// Stats returns statistics about the checks run so far.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Assert adds e to the current scope.
func (s *Solver) Assert(e Expr) error {
	if err := s.backend.Assert(e); err != nil {
		return errors.Wrapf(err, "could not assert %s", e)
	}
	return nil
}

// Push opens a new scope.
func (s *Solver) Push() {
	s.backend.Push()
}

// Pop closes the n innermost scopes. Objectives registered inside them are dropped.
func (s *Solver) Pop(n int) error {
	if n < 0 || n > s.backend.Scopes() {
		return errors.Wrapf(ErrScope, "cannot pop %d scopes out of %d", n, s.backend.Scopes())
	}
	if err := s.backend.Pop(n); err != nil {
		return err
	}
	if dropped := s.registry.Truncate(s.backend.Scopes()); dropped > 0 {
		s.logger.WithField("dropped", dropped).Debug("objectives dropped with their scope")
	}
	return nil
}

// NumAssertions returns the number of live assertions.
func (s *Solver) NumAssertions() int {
	return len(s.backend.Assertions())
}

// Assertion returns the i-th live assertion.
func (s *Solver) Assertion(i int) (Expr, error) {
	as := s.backend.Assertions()
	if i < 0 || i >= len(as) {
		return nil, errors.Errorf("assertion index %d out of range (%d assertions)", i, len(as))
	}
	return as[i], nil
}

// Check decides the current assertions under the given assumptions.
func (s *Solver) Check(ctx context.Context, assumptions ...Expr) Result {
	return s.check(ctx, assumptions...)
}

func (s *Solver) check(ctx context.Context, assumptions ...Expr) Result {
	if s.dumper != nil {
		if path, err := s.dumper.Dump(s.backend, assumptions); err != nil {
			s.logger.WithError(err).Warn("could not dump benchmark")
		} else {
			s.logger.WithField("path", path).Debug("benchmark written")
		}
	}
	start := time.Now()
	res := s.backend.Check(ctx, assumptions...)
	s.stats.record(res.Status)
	s.observer.Checked(res.Status, time.Since(start))
	s.last, s.checked = res, true
	switch res.Status {
	case StatusUnknown, StatusAborted:
		s.wasUnknown = true
		s.reasonUnknown = res.Reason
	}
	return res
}

// Model returns the model of the last check.
func (s *Solver) Model() (Model, error) {
	if !s.checked || s.last.Status != StatusSat {
		return nil, ErrNoModel
	}
	return s.last.Model, nil
}

// UnsatCore returns the core of the last check, if it was unsatisfiable.
func (s *Solver) UnsatCore() []Expr {
	if s.last.Status != StatusUnsat {
		return nil
	}
	return s.last.Core
}

// ReasonUnknown describes why the last inconclusive check gave up.
func (s *Solver) ReasonUnknown() string {
	return s.reasonUnknown
}

// SetReasonUnknown overrides the reason returned by ReasonUnknown.
func (s *Solver) SetReasonUnknown(reason string) {
	s.reasonUnknown = reason
}

// WasUnknown is true iff a check of s did not conclude.
func (s *Solver) WasUnknown() bool {
	return s.wasUnknown
}

// Register adds an objective to maximize and returns its index.
// adj maps values of t to the values reported by Value.
func (s *Solver) Register(t Term, adj Adjuster) (int, error) {
	if t == nil {
		return -1, errors.Wrap(ErrNotOrderable, "nil objective")
	}
	if !t.Sort().Orderable() {
		return -1, errors.Wrapf(ErrNotOrderable, "objective %s has sort %s", t, t.Sort())
	}
	proxy, err := s.backend.NewProxy(t)
	if err != nil {
		return -1, errors.Wrapf(err, "could not bind objective %s", t)
	}
	i := s.registry.add(entry{
		term:     t,
		proxy:    proxy,
		adjuster: adj,
		depth:    s.backend.Scopes(),
		value:    infeps.MinusInfinity(),
	})
	s.logger.WithFields(logrus.Fields{"objective": i, "term": t.String()}).Debug("objective registered")
	return i, nil
}

// ResetObjectives removes all objectives.
func (s *Solver) ResetObjectives() {
	s.registry.Reset()
}

// Value returns the adjusted best value of objective i.
func (s *Solver) Value(i int) (infeps.Value, error) {
	return s.registry.Value(i)
}

// ObjectiveModel returns the model witnessing the value of objective i.
func (s *Solver) ObjectiveModel(i int) (Model, error) {
	return s.registry.Model(i)
}

// IsValid is true iff the value of objective i was proven exact.
func (s *Solver) IsValid(i int) (bool, error) {
	return s.registry.IsValid(i)
}

// Outcome returns how the maximization of objective i ended.
func (s *Solver) Outcome(i int) (Outcome, error) {
	return s.registry.Outcome(i)
}

// Reason describes why objective i is not valid.
func (s *Solver) Reason(i int) (string, error) {
	return s.registry.Reason(i)
}

// Values returns the adjusted values of all objectives.
func (s *Solver) Values() []infeps.Value {
	return s.registry.Values()
}

// CurrentValue returns the adjusted value of objective i in the model of the last check.
func (s *Solver) CurrentValue(i int) (infeps.Value, error) {
	e, err := s.registry.get(i)
	if err != nil {
		return infeps.Value{}, err
	}
	m, err := s.Model()
	if err != nil {
		return infeps.Value{}, err
	}
	r, err := s.backend.Value(m, e.proxy)
	if err != nil {
		return infeps.Value{}, err
	}
	return e.adjuster.Apply(infeps.New(r)), nil
}

// AtLeast returns the constraint stating the proxy of objective i is at least v.
// v is in the proxy's scale, before adjustment. It is nil when v is -oo.
func (s *Solver) AtLeast(i int, v infeps.Value) (Expr, error) {
	e, err := s.registry.get(i)
	if err != nil {
		return nil, err
	}
	return s.bound(e.proxy, v, false)
}

// ErrInfiniteBound is returned when building a bound no value can reach.
var ErrInfiniteBound = errors.New("no value reaches +oo")

func (s *Solver) bound(p Proxy, v infeps.Value, strict bool) (Expr, error) {
	switch {
	case v.IsMinusInfinity():
		return nil, nil
	case v.IsPlusInfinity():
		return nil, ErrInfiniteBound
	}
	e, err := s.backend.Bound(p, v, strict)
	if err != nil {
		return nil, errors.Wrapf(err, "could not bound %s by %v", p, v)
	}
	return e, nil
}

// Translate returns a solver over an independent copy of the backend.
// Objectives are not copied.
func (s *Solver) Translate() (*Solver, error) {
	b, err := s.backend.Translate()
	if err != nil {
		return nil, errors.Wrap(err, "could not translate backend")
	}
	opts := []Option{
		WithConfig(s.cfg),
		WithStrategy(s.strategy),
		WithLogger(s.logger),
		WithTracer(s.tracer),
		WithObserver(s.observer),
	}
	if s.dumper != nil {
		opts = append(opts, WithDumper(NewDumper(s.dumper.Dir, s.dumper.Prefix+"copy_")))
	}
	return New(b, opts...)
}

// WriteBenchmark writes the live assertions to w.
func (s *Solver) WriteBenchmark(w io.Writer) error {
	return s.backend.WriteBenchmark(w, nil)
}
