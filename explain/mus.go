package explain

import (
	"context"
)

// Deletion returns the indices of a minimal set of groups that make the problem unsatisfiable.
// Each group is relaxed in turn: if the problem stays unsatisfiable without it,
// it is dropped for good, else it is part of the core.
// The deletion algorithm calls the solver exactly once per group, plus once to
// make sure the problem is unsatisfiable.
// If ctx is done before the end, the groups that were not tested yet are kept:
// the result is still unsatisfiable, but might not be minimal.
func (pb *Problem) Deletion(ctx context.Context) ([]int, error) {
	enforced := make([]bool, len(pb.Selectors))
	for i := range enforced {
		enforced[i] = true
	}
	if pb.Satisfiable(enforced) {
		return nil, ErrSatisfiable
	}
	for i := range enforced {
		if ctx.Err() != nil {
			pb.debugf("core extraction interrupted at group %d/%d", i+1, len(enforced))
			break
		}
		enforced[i] = false
		if pb.Satisfiable(enforced) {
			enforced[i] = true
			pb.debugf("group %d/%d: kept", i+1, len(enforced))
		} else {
			pb.debugf("group %d/%d: removed", i+1, len(enforced))
		}
	}
	var core []int
	for i, in := range enforced {
		if in {
			core = append(core, i)
		}
	}
	return core, nil
}

// Insertion returns the indices of a minimal set of groups that make the problem unsatisfiable.
// Groups are enforced one after the other until the problem becomes unsatisfiable:
// the last one is part of the core, and the search starts again from the core found so far.
// It needs fewer calls than Deletion when the core is small compared to the number of groups.
func (pb *Problem) Insertion(ctx context.Context) ([]int, error) {
	candidates := make([]int, len(pb.Selectors))
	for i := range candidates {
		candidates[i] = i
	}
	all := make([]bool, len(pb.Selectors))
	for i := range all {
		all[i] = true
	}
	if pb.Satisfiable(all) {
		return nil, ErrSatisfiable
	}
	var core []int
	enforced := make([]bool, len(pb.Selectors))
	for {
		for i := range enforced {
			enforced[i] = false
		}
		for _, i := range core {
			enforced[i] = true
		}
		if !pb.Satisfiable(enforced) {
			return core, nil
		}
		if ctx.Err() != nil {
			pb.debugf("core extraction interrupted with %d groups left", len(candidates))
			return append(core, candidates...), nil
		}
		idx := 0
		for ; idx < len(candidates); idx++ {
			enforced[candidates[idx]] = true
			if !pb.Satisfiable(enforced) {
				break
			}
		}
		core = append(core, candidates[idx])
		pb.debugf("core currently contains %d groups, %d candidates dropped", len(core), len(candidates)-idx-1)
		candidates = candidates[:idx]
	}
}
