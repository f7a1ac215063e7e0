// Package explain extracts minimal unsatisfiable cores from pseudo-boolean problems.
//
// A problem is a set of hard constraints, some of which are relaxed by a
// selector literal: when the selector is true, the constraint it guards is
// trivially satisfied. Groups of guarded constraints are enforced by
// assuming their selector false. A core is a set of groups that cannot be
// enforced together.
package explain

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/crillab/gophersat/solver"
)

// ErrSatisfiable is returned when asking for the core of a satisfiable problem.
var ErrSatisfiable = errors.New("cannot extract a core from a satisfiable problem")

// A Problem is a conjunction of PB constraints, some of them relaxed by selectors.
type Problem struct {
	Constrs   []solver.PBConstr
	Selectors []int              // Selector of each group, as a positive CNF variable.
	Logger    logrus.FieldLogger // Optional.
	nbSolves  int
}

// Relax returns a copy of c that is satisfied whenever the variable sel is true.
func Relax(c solver.PBConstr, sel int) solver.PBConstr {
	res := Clone(c)
	if res.AtLeast <= 0 {
		return res
	}
	if res.Weights == nil {
		res.Weights = make([]int, len(res.Lits))
		for i := range res.Weights {
			res.Weights[i] = 1
		}
	}
	res.Lits = append(res.Lits, sel)
	res.Weights = append(res.Weights, res.AtLeast)
	return res
}

// Clone returns a deep copy of c.
// gophersat takes ownership of the slices of the constraints it is given.
func Clone(c solver.PBConstr) solver.PBConstr {
	res := solver.PBConstr{AtLeast: c.AtLeast, Lits: make([]int, len(c.Lits))}
	copy(res.Lits, c.Lits)
	if c.Weights != nil {
		res.Weights = make([]int, len(c.Weights))
		copy(res.Weights, c.Weights)
	}
	return res
}

// NbSolves returns the number of calls to the SAT solver made so far.
func (pb *Problem) NbSolves() int {
	return pb.nbSolves
}

// Satisfiable is true iff the constraints are satisfiable when the groups
// flagged in enforced hold.
func (pb *Problem) Satisfiable(enforced []bool) bool {
	constrs := make([]solver.PBConstr, 0, len(pb.Constrs)+len(pb.Selectors))
	for _, c := range pb.Constrs {
		constrs = append(constrs, Clone(c))
	}
	for i, sel := range pb.Selectors {
		if enforced[i] {
			constrs = append(constrs, solver.PropClause(-sel))
		}
	}
	pb.nbSolves++
	s := solver.New(solver.ParsePBConstrs(constrs))
	return s.Solve() == solver.Sat
}

func (pb *Problem) debugf(format string, args ...interface{}) {
	if pb.Logger != nil {
		pb.Logger.Debugf(format, args...)
	}
}

func (pb *Problem) String() string {
	return fmt.Sprintf("%d constraints, %d groups", len(pb.Constrs), len(pb.Selectors))
}
