package localsearch

import (
	"github.com/katalvlaran/evrptw/core"
	"github.com/katalvlaran/evrptw/evaluator"
	"github.com/katalvlaran/evrptw/station"
)

// eps is the minimal strictly-better improvement required to accept a move,
// guarding against floating-point noise across otherwise-equal candidates.
const eps = 1e-9

// Improve runs the relocate descent to a local optimum and returns a new,
// independently-owned Solution; it never mutates sol.
func Improve(inst *core.Instance, sol *core.Solution) *core.Solution {
	cur := sol.Clone()

	for {
		newRoutes, newDist, improved := bestPass(inst, cur.Routes)
		if !improved {
			break
		}
		cur.Routes = newRoutes
		cur.TotalDistance = newDist
	}

	cur.Recompute(inst)
	return cur
}

// bestPass scans every (source route, position, destination route,
// insertion position) triple and returns the routes after committing the
// single best strictly-improving move, or improved==false if none exists.
func bestPass(inst *core.Instance, routes []core.Route) ([]core.Route, float64, bool) {
	bestDist := totalDistance(inst, routes)
	baseline := bestDist
	var bestRoutes []core.Route
	found := false

	for i, ri := range routes {
		for j := 1; j < len(ri)-1; j++ {
			customer := ri[j]
			if !inst.IsCustomer(customer) {
				continue
			}
			riPrime := ri.WithRemoved(j)

			for k, rk := range routes {
				if k == i {
					continue
				}
				for p := 1; p < len(rk); p++ {
					finalRk, ok := bestDestinationRoute(inst, rk, p, customer)
					if !ok {
						continue
					}

					dist := baseline - ri.Distance(inst) - rk.Distance(inst) +
						riPrime.Distance(inst) + finalRk.Distance(inst)
					if dist < bestDist-eps {
						bestDist = dist
						bestRoutes = replaceTwo(routes, i, riPrime, k, finalRk)
						found = true
					}
				}
			}
		}
	}

	if !found {
		return routes, baseline, false
	}
	return bestRoutes, bestDist, true
}

// bestDestinationRoute inserts customer at position p of rk, repairing
// energy infeasibility via station insertion if needed. Returns ok==false
// if no feasible variant exists.
func bestDestinationRoute(inst *core.Instance, rk core.Route, p, customer int) (core.Route, bool) {
	cand := rk.WithInserted(p, customer)
	flags := evaluator.Evaluate(inst, cand)
	if !flags.TimeOK || !flags.CapacityOK {
		return nil, false
	}
	if flags.EnergyOK {
		return cand, true
	}

	var best core.Route
	found := false
	if alt, ok := station.BestInsertion(inst, rk, p, customer, true); ok {
		best, found = alt, true
	}
	if alt, ok := station.BestInsertion(inst, rk, p, customer, false); ok {
		if !found || alt.Distance(inst) < best.Distance(inst) {
			best, found = alt, true
		}
	}
	return best, found
}

func totalDistance(inst *core.Instance, routes []core.Route) float64 {
	var sum float64
	for _, r := range routes {
		sum += r.Distance(inst)
	}
	return sum
}

func replaceTwo(routes []core.Route, i int, ri core.Route, k int, rk core.Route) []core.Route {
	out := make([]core.Route, len(routes))
	copy(out, routes)
	out[i] = ri
	out[k] = rk
	return out
}
