package opt

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/crillab/gopheropt/infeps"
)

// Sort is the type of a term.
type Sort byte

const (
	// SortBool is the sort of propositional terms.
	SortBool = Sort(iota)
	// SortInt is the sort of integer terms.
	SortInt
	// SortReal is the sort of real terms.
	SortReal
	// SortOther is used for any sort the optimizer cannot order.
	SortOther
)

// Orderable is true iff terms of sort s can be maximized.
func (s Sort) Orderable() bool {
	return s == SortInt || s == SortReal
}

func (s Sort) String() string {
	switch s {
	case SortBool:
		return "Bool"
	case SortInt:
		return "Int"
	case SortReal:
		return "Real"
	default:
		return "Other"
	}
}

// An Expr is a constraint built by a backend.
// The optimizer never looks inside an Expr, it only hands it back to the backend that built it.
type Expr interface {
	String() string
}

// A Term is a numeric expression built by a backend.
type Term interface {
	String() string
	Sort() Sort
}

// A Model is a snapshot of an assignment returned by a satisfiable check.
// It stays valid after subsequent checks.
type Model interface {
	String() string
}

// A Proxy is the internal variable a backend binds to an objective term.
type Proxy interface {
	String() string
}

// Status is the verdict of a check.
type Status byte

const (
	// StatusSat means the constraints and assumptions have a model.
	StatusSat = Status(iota)
	// StatusUnsat means the constraints and assumptions have no model.
	StatusUnsat
	// StatusUnknown means the procedure gave up.
	StatusUnknown
	// StatusAborted means the check was canceled before it completed.
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusSat:
		return "SAT"
	case StatusUnsat:
		return "UNSAT"
	case StatusUnknown:
		return "UNKNOWN"
	case StatusAborted:
		return "ABORTED"
	default:
		panic(fmt.Errorf("invalid status %d", byte(s)))
	}
}

// A Result is the outcome of a check.
// Only the field associated with its Status is meaningful:
// Model for StatusSat, Core for StatusUnsat, Reason for StatusUnknown.
type Result struct {
	Status Status
	Model  Model
	Core   []Expr
	Reason string
}

// Sat returns a satisfiable Result witnessed by m.
func Sat(m Model) Result { return Result{Status: StatusSat, Model: m} }

// Unsat returns an unsatisfiable Result. core is a subset of the assumptions
// that is enough to make the problem unsatisfiable.
func Unsat(core []Expr) Result { return Result{Status: StatusUnsat, Core: core} }

// Unknown returns an undetermined Result.
func Unknown(reason string) Result { return Result{Status: StatusUnknown, Reason: reason} }

// Aborted returns the Result of a canceled check.
func Aborted() Result { return Result{Status: StatusAborted, Reason: "canceled"} }

// Procedure is the incremental decision procedure the optimizer drives.
type Procedure interface {
	// Assert adds e to the current scope.
	Assert(e Expr) error
	// Push opens a new scope.
	Push()
	// Pop closes the n innermost scopes, retracting everything they contain.
	Pop(n int) error
	// Scopes returns the number of open scopes.
	Scopes() int
	// Check decides the current assertions under the given assumptions.
	// The assumptions only hold for that call.
	Check(ctx context.Context, assumptions ...Expr) Result
	// Assertions returns the live assertions, outermost scope first.
	Assertions() []Expr
}

// Arith binds objective terms to proxies and reasons about their values.
type Arith interface {
	// NewProxy introduces a variable equal to t.
	NewProxy(t Term) (Proxy, error)
	// Value returns the value of p in m.
	Value(m Model, p Proxy) (*big.Rat, error)
	// Bound returns the constraint p > v if strict, p >= v else. v is finite.
	Bound(p Proxy, v infeps.Value, strict bool) (Expr, error)
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o optfakes/fake_backend.go . Backend

// A Backend is a decision procedure able to carry objectives.
type Backend interface {
	Procedure
	Arith
	// Translate returns an independent copy of the backend and its assertions.
	Translate() (Backend, error)
	// WriteBenchmark writes the live assertions and the given assumptions to w.
	WriteBenchmark(w io.Writer, assumptions []Expr) error
}

// A Ranger knows static bounds for its proxies.
// Backends over finite domains should implement it: the optimizer never
// looks for unboundedness when an upper bound is known, and some strategies
// need one.
type Ranger interface {
	Range(p Proxy) (lo, hi *big.Rat, ok bool)
}

// A Formatter names the file extension of its benchmarks.
type Formatter interface {
	BenchmarkFormat() string
}
