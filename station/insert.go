package station

import (
	"math"

	"github.com/katalvlaran/evrptw/core"
	"github.com/katalvlaran/evrptw/evaluator"
)

// BestInsertion searches every station in inst for the one that, inserted
// together with customer at position pos of route (before or after it per
// the before flag), yields the cheapest fully-feasible route. pos is
// 1-based: the pair is spliced between route[pos-1] and route[pos].
//
// Returns the candidate route and ok==true if at least one station keeps
// the result feasible under evaluator.Evaluate; otherwise ok==false and the
// returned route is nil.
func BestInsertion(inst *core.Instance, route core.Route, pos, customer int, before bool) (core.Route, bool) {
	var (
		best     core.Route
		bestDist = math.Inf(1)
		found    bool
	)

	for _, s := range inst.Stations() {
		cand := candidate(route, pos, customer, s, before)
		if !evaluator.Evaluate(inst, cand).Feasible() {
			continue
		}
		d := cand.Distance(inst)
		if d < bestDist {
			bestDist = d
			best = cand
			found = true
		}
	}

	if !found {
		return nil, false
	}
	return best, true
}

// candidate builds R[:pos] + [s,c] + R[pos:] (before==true) or
// R[:pos] + [c,s] + R[pos:] (before==false).
func candidate(route core.Route, pos, customer, s int, before bool) core.Route {
	out := make(core.Route, 0, len(route)+2)
	out = append(out, route[:pos]...)
	if before {
		out = append(out, s, customer)
	} else {
		out = append(out, customer, s)
	}
	out = append(out, route[pos:]...)
	return out
}
