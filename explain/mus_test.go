package explain

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/crillab/gophersat/solver"
)

// relaxed builds a problem over nbVars variables where group i is constrs[i].
func relaxed(nbVars int, constrs ...solver.PBConstr) *Problem {
	var pb Problem
	for i, c := range constrs {
		sel := nbVars + i + 1
		pb.Constrs = append(pb.Constrs, Relax(c, sel))
		pb.Selectors = append(pb.Selectors, sel)
	}
	return &pb
}

func TestCores(t *testing.T) {
	tests := []struct {
		name    string
		nbVars  int
		constrs []solver.PBConstr
		core    []int
	}{
		{
			"clauses",
			2,
			[]solver.PBConstr{
				solver.PropClause(1),
				solver.PropClause(-1),
				solver.PropClause(2),
				solver.PropClause(1, 2),
			},
			[]int{0, 1},
		},
		{
			"cardinality",
			3,
			[]solver.PBConstr{
				solver.AtLeast([]int{1, 2, 3}, 2),
				solver.PropClause(1),
				solver.AtMost([]int{1, 2, 3}, 1),
			},
			[]int{0, 2},
		},
		{
			"weighted",
			3,
			[]solver.PBConstr{
				solver.PropClause(-3),
				solver.GtEq([]int{1, 2, 3}, []int{1, 2, 4}, 4),
				solver.PropClause(-2),
				solver.PropClause(1),
			},
			[]int{0, 1},
		},
	}
	for _, test := range tests {
		for _, algo := range []string{"deletion", "insertion"} {
			pb := relaxed(test.nbVars, test.constrs...)
			var (
				core []int
				err  error
			)
			if algo == "deletion" {
				core, err = pb.Deletion(context.Background())
			} else {
				core, err = pb.Insertion(context.Background())
			}
			if err != nil {
				t.Errorf("%s/%s: could not extract core: %v", test.name, algo, err)
				continue
			}
			sort.Ints(core)
			if fmt.Sprint(core) != fmt.Sprint(test.core) {
				t.Errorf("%s/%s: expected core %v, got %v", test.name, algo, test.core, core)
			}
		}
	}
}

func TestCoreOfSatisfiableProblem(t *testing.T) {
	pb := relaxed(2, solver.PropClause(1), solver.PropClause(1, 2))
	if _, err := pb.Deletion(context.Background()); err != ErrSatisfiable {
		t.Errorf("expected ErrSatisfiable, got %v", err)
	}
	if _, err := pb.Insertion(context.Background()); err != ErrSatisfiable {
		t.Errorf("expected ErrSatisfiable, got %v", err)
	}
}

func TestCoreOfHardConflict(t *testing.T) {
	pb := relaxed(1, solver.PropClause(1))
	pb.Constrs = append(pb.Constrs, solver.PropClause(-1), solver.PropClause(1))
	core, err := pb.Deletion(context.Background())
	if err != nil {
		t.Fatalf("could not extract core: %v", err)
	}
	if len(core) != 0 {
		t.Errorf("expected empty core, got %v", core)
	}
}

func TestDeletionCanceled(t *testing.T) {
	pb := relaxed(1, solver.PropClause(1), solver.PropClause(-1), solver.PropClause(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	core, err := pb.Deletion(ctx)
	if err != nil {
		t.Fatalf("could not extract core: %v", err)
	}
	if len(core) != 3 {
		t.Errorf("canceled extraction should keep all groups, got %v", core)
	}
	if pb.NbSolves() != 1 {
		t.Errorf("expected a single solve, got %d", pb.NbSolves())
	}
}

func TestRelax(t *testing.T) {
	c := Relax(solver.GtEq([]int{1, -2}, []int{3, 1}, 3), 7)
	if fmt.Sprint(c.Lits) != "[1 -2 7]" || fmt.Sprint(c.Weights) != "[3 1 3]" || c.AtLeast != 3 {
		t.Errorf("invalid relaxed constraint %+v", c)
	}
	c = Relax(solver.PropClause(4, 5), 6)
	if fmt.Sprint(c.Weights) != "[1 1 1]" {
		t.Errorf("invalid relaxed clause %+v", c)
	}
}

func ExampleProblem_Deletion() {
	// x1 and not(x1) cannot hold together, x2 is irrelevant.
	pb := relaxed(2, solver.PropClause(1), solver.PropClause(2), solver.PropClause(-1))
	core, err := pb.Deletion(context.Background())
	if err != nil {
		fmt.Printf("could not extract core: %v", err)
		return
	}
	fmt.Println(core)
	// Output:
	// [0 2]
}
