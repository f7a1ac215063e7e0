package opt

import (
	"github.com/pkg/errors"

	"github.com/crillab/gopheropt/infeps"
)

// Outcome describes how far the maximization of an objective went.
type Outcome byte

const (
	// Pending objectives were not maximized yet.
	Pending = Outcome(iota)
	// Optimal objectives reached a value proven maximal.
	Optimal
	// Unbounded objectives can grow past any value.
	Unbounded
	// Infeasible objectives belong to an unsatisfiable problem.
	Infeasible
	// BestEffort objectives stopped before optimality could be proven.
	BestEffort
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Optimal:
		return "optimal"
	case Unbounded:
		return "unbounded"
	case Infeasible:
		return "infeasible"
	case BestEffort:
		return "best-effort"
	default:
		return "invalid"
	}
}

type entry struct {
	term     Term
	proxy    Proxy
	adjuster Adjuster
	depth    int          // Number of scopes open when the objective was registered.
	value    infeps.Value // Best known value of the proxy, before adjustment.
	model    Model        // Model witnessing value.
	valid    bool         // True iff value was proven optimal.
	outcome  Outcome
	reason   string // Why the objective is not valid, if known.
}

// A Registry holds the objectives of a solver, indexed in registration order.
// Entries are only ever appended, or dropped from the end when the scope
// they were created in is closed.
type Registry struct {
	entries []entry
}

func (r *Registry) add(e entry) int {
	r.entries = append(r.entries, e)
	return len(r.entries) - 1
}

// Len returns the number of live objectives.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Reset removes all objectives. Indices obtained before are no longer valid.
func (r *Registry) Reset() {
	r.entries = nil
}

// Truncate drops objectives registered while more than depth scopes were open,
// and returns how many were dropped.
func (r *Registry) Truncate(depth int) int {
	n := len(r.entries)
	for n > 0 && r.entries[n-1].depth > depth {
		n--
	}
	dropped := len(r.entries) - n
	r.entries = r.entries[:n]
	return dropped
}

func (r *Registry) get(i int) (*entry, error) {
	if i < 0 || i >= len(r.entries) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "objective %d (%d registered)", i, len(r.entries))
	}
	return &r.entries[i], nil
}

// Value returns the adjusted best value of objective i.
// It is -oo until a model was found.
func (r *Registry) Value(i int) (infeps.Value, error) {
	e, err := r.get(i)
	if err != nil {
		return infeps.Value{}, err
	}
	return e.adjuster.Apply(e.value), nil
}

// RawValue returns the best value of objective i, before adjustment.
func (r *Registry) RawValue(i int) (infeps.Value, error) {
	e, err := r.get(i)
	if err != nil {
		return infeps.Value{}, err
	}
	return e.value, nil
}

// Model returns the model witnessing the value of objective i.
// It is nil if no model was found.
func (r *Registry) Model(i int) (Model, error) {
	e, err := r.get(i)
	if err != nil {
		return nil, err
	}
	return e.model, nil
}

// IsValid is true iff the value of objective i was proven exact.
func (r *Registry) IsValid(i int) (bool, error) {
	e, err := r.get(i)
	if err != nil {
		return false, err
	}
	return e.valid, nil
}

// Outcome returns the state of objective i.
func (r *Registry) Outcome(i int) (Outcome, error) {
	e, err := r.get(i)
	if err != nil {
		return Pending, err
	}
	return e.outcome, nil
}

// Reason returns why objective i is not valid, or an empty string.
func (r *Registry) Reason(i int) (string, error) {
	e, err := r.get(i)
	if err != nil {
		return "", err
	}
	return e.reason, nil
}

// Term returns the term objective i was registered with.
func (r *Registry) Term(i int) (Term, error) {
	e, err := r.get(i)
	if err != nil {
		return nil, err
	}
	return e.term, nil
}

// Adjuster returns the adjuster of objective i.
func (r *Registry) Adjuster(i int) (Adjuster, error) {
	e, err := r.get(i)
	if err != nil {
		return Adjuster{}, err
	}
	return e.adjuster, nil
}

// SetAdjuster replaces the adjuster of objective i. It fails once the objective was maximized.
func (r *Registry) SetAdjuster(i int, adj Adjuster) error {
	e, err := r.get(i)
	if err != nil {
		return err
	}
	if e.outcome != Pending {
		return errors.Wrapf(ErrAdjusterInUse, "objective %d is %s", i, e.outcome)
	}
	e.adjuster = adj
	return nil
}

// Values returns the adjusted values of all objectives.
func (r *Registry) Values() []infeps.Value {
	res := make([]infeps.Value, len(r.entries))
	for i, e := range r.entries {
		res[i] = e.adjuster.Apply(e.value)
	}
	return res
}

// Save records value, before adjustment, and its witness for objective i.
func (r *Registry) Save(i int, value infeps.Value, m Model, valid bool) error {
	e, err := r.get(i)
	if err != nil {
		return err
	}
	e.value = value
	e.model = m
	e.valid = valid
	return nil
}

func (r *Registry) conclude(i int, outcome Outcome, reason string) {
	e := &r.entries[i]
	e.outcome = outcome
	e.reason = reason
}
