package core

// ALNSState is the working triple the ALNS driver mutates round by round:
// an instance reference, the current routes, and the bag of customers
// removed by a destroy operator and awaiting repair.
//
// ALNSStates are copied before each destroy+repair round so the current
// incumbent is never mutated until the acceptance criterion commits it.
type ALNSState struct {
	Instance   *Instance
	Routes     []Route
	Unassigned []int
}

// NewALNSState builds a state from a Solution with an empty unassigned bag.
func NewALNSState(inst *Instance, sol *Solution) *ALNSState {
	routes := make([]Route, len(sol.Routes))
	for i, r := range sol.Routes {
		routes[i] = r.Clone()
	}
	return &ALNSState{Instance: inst, Routes: routes}
}

// Clone returns a deep, independently-owned copy of st.
func (st *ALNSState) Clone() *ALNSState {
	routes := make([]Route, len(st.Routes))
	for i, r := range st.Routes {
		routes[i] = r.Clone()
	}
	unassigned := make([]int, len(st.Unassigned))
	copy(unassigned, st.Unassigned)
	return &ALNSState{Instance: st.Instance, Routes: routes, Unassigned: unassigned}
}

// Solution materializes st into a Solution with a fresh cost cache. It does
// not check st.Unassigned — callers must ensure it is empty before calling
// this on a state meant to be a final, feasible Solution.
func (st *ALNSState) Solution() *Solution {
	return NewSolution(st.Instance, st.Routes)
}

// PruneEmptyRoutes drops routes with no interior nodes.
func (st *ALNSState) PruneEmptyRoutes() {
	kept := st.Routes[:0]
	for _, r := range st.Routes {
		if !r.IsEmpty() {
			kept = append(kept, r)
		}
	}
	st.Routes = kept
}

// ObjectiveDistance returns the total distance over all routes in st.
func (st *ALNSState) ObjectiveDistance() float64 {
	var total float64
	for _, r := range st.Routes {
		total += r.Distance(st.Instance)
	}
	return total
}
