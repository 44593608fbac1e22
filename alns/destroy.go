package alns

import (
	"math/rand"

	"github.com/katalvlaran/evrptw/core"
	"github.com/katalvlaran/evrptw/evaluator"
)

// DestroyOperator removes a batch of customers from state (mutating it in
// place: clearing them out of their routes and appending them to
// state.Unassigned) and returns how many were removed.
type DestroyOperator func(rng *rand.Rand, cfg Config, state *core.ALNSState) int

// RandomCustomerRemoval pulls k = kFromFraction(xi, numCustomers) customers
// uniformly at random from across all routes.
func RandomCustomerRemoval(rng *rand.Rand, cfg Config, state *core.ALNSState) int {
	present := presentCustomers(state)
	if len(present) == 0 {
		return 0
	}
	k := kFromFraction(rng, cfg.Xi, len(present))
	if k > len(present) {
		k = len(present)
	}
	shuffleIntsInPlace(present, rng)
	victims := present[:k]
	removeCustomers(state, victims)
	return len(victims)
}

// NearestCustomersRemoval picks a central customer uniformly from the
// customers currently present in the solution (not from the full instance —
// a customer already removed by an earlier destroy round in the same
// iteration cannot be the center), then removes the k-1 customers nearest to
// it plus the center itself.
func NearestCustomersRemoval(rng *rand.Rand, cfg Config, state *core.ALNSState) int {
	present := presentCustomers(state)
	if len(present) == 0 {
		return 0
	}
	k := kFromFraction(rng, cfg.Xi, len(present))
	if k > len(present) {
		k = len(present)
	}

	center := present[rng.Intn(len(present))]
	others := make([]distIdx, 0, len(present)-1)
	for _, c := range present {
		if c == center {
			continue
		}
		others = append(others, distIdx{c, state.Instance.Distance(center, c)})
	}
	insertionSortByDist(others)

	victims := make([]int, 0, k)
	victims = append(victims, center)
	for i := 0; i < len(others) && len(victims) < k; i++ {
		victims = append(victims, others[i].node)
	}
	removeCustomers(state, victims)
	return len(victims)
}

type distIdx struct {
	node int
	d    float64
}

func insertionSortByDist(a []distIdx) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j].d > v.d {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}

// WorstCustomerRemoval ranks present customers by removal gain (the
// distance saved by excising them from their current route) and pops
// entries one at a time using a biased index into the gain-sorted list,
// so higher-gain customers are more likely (but not certain) to be chosen.
func WorstCustomerRemoval(rng *rand.Rand, cfg Config, state *core.ALNSState) int {
	present := presentCustomers(state)
	if len(present) == 0 {
		return 0
	}
	k := kFromFraction(rng, cfg.Xi, len(present))
	if k > len(present) {
		k = len(present)
	}

	gains := removalGains(state)
	victims := make([]int, 0, k)
	for len(victims) < k && len(gains) > 0 {
		idx := biasedIndex(rng, cfg.P, len(gains))
		victims = append(victims, gains[idx].node)
		gains = append(gains[:idx], gains[idx+1:]...)
	}
	removeCustomers(state, victims)
	return len(victims)
}

// removalGains returns every present customer paired with the distance its
// route would lose by removing it, sorted descending by gain (index 0 is
// the worst-placed customer).
func removalGains(state *core.ALNSState) []distIdx {
	inst := state.Instance
	var gains []distIdx
	for _, r := range state.Routes {
		for j := 1; j < len(r)-1; j++ {
			node := r[j]
			if !inst.IsCustomer(node) {
				continue
			}
			prev, next := r[j-1], r[j+1]
			gain := inst.Distance(prev, node) + inst.Distance(node, next) - inst.Distance(prev, next)
			gains = append(gains, distIdx{node, gain})
		}
	}
	// Insertion sort, descending by gain.
	for i := 1; i < len(gains); i++ {
		v := gains[i]
		j := i - 1
		for j >= 0 && gains[j].d < v.d {
			gains[j+1] = gains[j]
			j--
		}
		gains[j+1] = v
	}
	return gains
}

// WorstStationRemoval removes one station visit from each of up to
// xi_station = max(1, floor(xi*len(routes))) routes, picking visits by a
// biased index into the list sorted by descending detour distance, then — only if doing so actually left the route energy-
// infeasible — repairs it by removing customers from the segment the
// station bounded, one at a time, until the route is feasible again or
// the segment is exhausted (see removeStationAndRepairSegment).
func WorstStationRemoval(rng *rand.Rand, cfg Config, state *core.ALNSState) int {
	type stationHit struct {
		routeIdx int
		pos      int
		gain     float64
	}
	inst := state.Instance
	var hits []stationHit
	for ri, r := range state.Routes {
		for j := 1; j < len(r)-1; j++ {
			node := r[j]
			if !inst.IsStation(node) {
				continue
			}
			prev, next := r[j-1], r[j+1]
			gain := inst.Distance(prev, node) + inst.Distance(node, next) - inst.Distance(prev, next)
			hits = append(hits, stationHit{ri, j, gain})
		}
	}
	if len(hits) == 0 {
		return 0
	}

	for i := 1; i < len(hits); i++ {
		v := hits[i]
		j := i - 1
		for j >= 0 && hits[j].gain < v.gain {
			hits[j+1] = hits[j]
			j--
		}
		hits[j+1] = v
	}

	xiStations := int(cfg.Xi * float64(len(state.Routes)))
	if xiStations < 1 {
		xiStations = 1
	}
	if xiStations > len(hits) {
		xiStations = len(hits)
	}

	touched := map[int]bool{}
	removed := 0
	for len(touched) < xiStations && len(hits) > 0 {
		idx := biasedIndex(rng, cfg.PStation, len(hits))
		hit := hits[idx]
		hits = append(hits[:idx], hits[idx+1:]...)
		if touched[hit.routeIdx] {
			continue
		}
		touched[hit.routeIdx] = true
		removed += removeStationAndRepairSegment(state, hit.routeIdx, hit.pos)
	}
	return removed
}

// removeStationAndRepairSegment excises the station at pos, then — if the
// route is now energy-infeasible — removes customers from the segment
// bounded by the nearest station/depot on either side of pos, one at a
// time (scanning end-to-start first, then start-to-end), re-checking
// feasibility after each removal, until the route is feasible again or the
// segment has no customer left to give up. Returns the number of customers
// removed (the station itself doesn't count).
func removeStationAndRepairSegment(state *core.ALNSState, routeIdx, pos int) int {
	inst := state.Instance
	r := state.Routes[routeIdx]

	start := pos - 1
	for start >= 0 && !(inst.IsStation(r[start]) || inst.IsDepot(r[start])) {
		start--
	}
	start++
	if start < 0 {
		start = 0
	}

	end := pos + 1
	for end < len(r) && !(inst.IsStation(r[end]) || inst.IsDepot(r[end])) {
		end++
	}
	end--
	if end > len(r)-1 {
		end = len(r) - 1
	}

	r = r.WithRemoved(pos)
	if pos < end {
		end--
	}
	if end > len(r)-1 {
		end = len(r) - 1
	}

	removedCount := 0
	for !evaluator.Evaluate(inst, r).EnergyOK {
		removedOne := false

		for i := end; i >= start; i-- {
			if i < 0 || i >= len(r) {
				continue
			}
			if inst.IsCustomer(r[i]) {
				state.Unassigned = append(state.Unassigned, r[i])
				r = r.WithRemoved(i)
				if end > len(r)-1 {
					end = len(r) - 1
				}
				removedCount++
				removedOne = true
				break
			}
		}
		if removedOne {
			continue
		}

		limit := end + 1
		if limit > len(r) {
			limit = len(r)
		}
		for i := start; i < limit; i++ {
			if inst.IsCustomer(r[i]) {
				state.Unassigned = append(state.Unassigned, r[i])
				r = r.WithRemoved(i)
				if end > len(r)-1 {
					end = len(r) - 1
				}
				removedCount++
				removedOne = true
				break
			}
		}
		if !removedOne {
			break
		}
	}

	state.Routes[routeIdx] = r
	return removedCount
}

// presentCustomers lists every customer currently assigned to a route.
func presentCustomers(state *core.ALNSState) []int {
	var out []int
	for _, r := range state.Routes {
		for _, node := range r {
			if state.Instance.IsCustomer(node) {
				out = append(out, node)
			}
		}
	}
	return out
}

// removeCustomers excises every node in victims from wherever it sits in
// state.Routes and appends it to state.Unassigned.
func removeCustomers(state *core.ALNSState, victims []int) {
	victimSet := make(map[int]bool, len(victims))
	for _, v := range victims {
		victimSet[v] = true
	}
	for i, r := range state.Routes {
		out := r[:0:0]
		for _, node := range r {
			if victimSet[node] {
				continue
			}
			out = append(out, node)
		}
		state.Routes[i] = out
	}
	state.Unassigned = append(state.Unassigned, victims...)
}
