package construct

import (
	"math"
	"time"

	"github.com/katalvlaran/evrptw/core"
)

// station, if non-negative, names the station to visit immediately before
// the customer; -1 means the customer is directly reachable.
type feasibilityEntry struct {
	station int
}

// Construct builds an initial feasible Solution for inst, or returns
// core.ErrInstanceInfeasible if no feasible set of routes could be found.
func Construct(inst *core.Instance, cfg Config) (*core.Solution, time.Duration, error) {
	start := time.Now()

	unserved := make(map[int]struct{})
	for _, c := range inst.Customers() {
		unserved[c] = struct{}{}
	}

	var routes []core.Route
	for len(unserved) > 0 {
		before := len(unserved)
		route, err := buildOneRoute(inst, cfg, unserved)
		if err != nil {
			return nil, time.Since(start), err
		}
		if !route.IsEmpty() {
			routes = append(routes, route)
		}
		if len(unserved) == before {
			// A full outer iteration made no progress: infeasible.
			return nil, time.Since(start), core.ErrInstanceInfeasible
		}
	}

	return core.NewSolution(inst, routes), time.Since(start), nil
}

// buildOneRoute runs the extension loop until it breaks, then finishes the
// route by returning to the depot (directly or via one station).
func buildOneRoute(inst *core.Instance, cfg Config, unserved map[int]struct{}) (core.Route, error) {
	rs := core.NewRouteStatus(inst)

	for {
		feas := feasibilityMap(inst, rs, unserved)

		if len(feas) == 0 {
			if inst.CanReachDepot(rs.CurrentLocation, rs.RemainingEnergy) {
				break
			}
			s, ok := inst.NearestReachableStation(rs.CurrentLocation, rs.RemainingEnergy)
			if !ok {
				break
			}
			rs.AppendStation(inst, s)
			continue
		}

		best, entry := selectNext(inst, cfg, rs, feas)

		if entry.station != -1 {
			rs.AppendStation(inst, entry.station)
		}

		// Re-check arrival still meets the customer's due time after any
		// station detour; if not, this route is done.
		arrival := rs.LastServiceEndTime + inst.Distance(rs.CurrentLocation, best)
		if arrival > inst.Node(best).Due {
			break
		}

		rs.AppendCustomer(inst, best)
		delete(unserved, best)
	}

	if err := finishRoute(inst, rs); err != nil {
		return nil, err
	}

	return rs.Route, nil
}

// feasibilityMap computes F: for each unserved customer, either directly
// reachable (entry.station == -1) or reachable via the best qualifying
// station (entry.station == that station), per spec §4.E step 2.
func feasibilityMap(inst *core.Instance, rs *core.RouteStatus, unserved map[int]struct{}) map[int]feasibilityEntry {
	feas := make(map[int]feasibilityEntry, len(unserved))

	for c := range unserved {
		eDirect := inst.EnergyConsumption(rs.CurrentLocation, c)
		if rs.RemainingEnergy-eDirect >= 0 && inst.CanReachDepot(c, rs.RemainingEnergy-eDirect) {
			feas[c] = feasibilityEntry{station: -1}
			continue
		}
		if s, ok := bestStationBeforeCustomer(inst, rs, c); ok {
			feas[c] = feasibilityEntry{station: s}
		}
	}

	return feas
}

// bestStationBeforeCustomer finds the station minimizing the added detour
// distance d(current,s)+d(s,c) among stations that: are reachable on
// current energy, leave enough energy after a full recharge to reach c,
// keep c's time window satisfiable, and leave enough energy after serving
// c to reach the depot (possibly via another station).
func bestStationBeforeCustomer(inst *core.Instance, rs *core.RouteStatus, c int) (int, bool) {
	best := -1
	bestCost := math.Inf(1)
	node := inst.Node(c)

	for _, s := range inst.Stations() {
		eToStation := inst.EnergyConsumption(rs.CurrentLocation, s)
		if eToStation > rs.RemainingEnergy {
			continue
		}
		eStationToC := inst.EnergyConsumption(s, c)
		if eStationToC > inst.E {
			continue
		}

		arrivalAtStation := rs.LastServiceEndTime + inst.Distance(rs.CurrentLocation, s)
		rechargeAmount := inst.E - maxFloat(0, rs.RemainingEnergy-eToStation)
		departStation := arrivalAtStation + inst.RechargeTime(rechargeAmount)
		arrivalAtC := departStation + inst.Distance(s, c)
		startAtC := arrivalAtC
		if node.Ready > startAtC {
			startAtC = node.Ready
		}
		if startAtC > node.Due {
			continue
		}

		leftoverAfterC := inst.E - eStationToC
		if !inst.CanReachDepot(c, leftoverAfterC) {
			continue
		}

		cost := inst.Distance(rs.CurrentLocation, s) + inst.Distance(s, c)
		if cost < bestCost || (cost == bestCost && s < best) {
			bestCost = cost
			best = s
		}
	}

	return best, best != -1
}

// selectNext applies the selection rule (spec §4.E): minimize
// distance(current,c) + w*wait, tie-break by smallest index.
func selectNext(inst *core.Instance, cfg Config, rs *core.RouteStatus, feas map[int]feasibilityEntry) (int, feasibilityEntry) {
	best := -1
	var bestEntry feasibilityEntry
	bestCost := math.Inf(1)

	for c, entry := range feas {
		d := inst.Distance(rs.CurrentLocation, c)
		wait := inst.Node(c).Ready - (rs.LastServiceEndTime + inst.TravelTime(rs.CurrentLocation, c))
		if wait < 0 {
			wait = 0
		}
		cost := d + cfg.WaitTimeWeight*wait
		if cost < bestCost || (cost == bestCost && c < best) {
			bestCost = cost
			best = c
			bestEntry = entry
		}
	}

	return best, bestEntry
}

// finishRoute closes a route by returning to the depot, directly or via a
// single reachable station, reporting infeasibility if neither works.
func finishRoute(inst *core.Instance, rs *core.RouteStatus) error {
	if rs.RemainingEnergy-inst.EnergyConsumption(rs.CurrentLocation, inst.DepotIndex) >= 0 {
		rs.AppendDepot(inst)
		return nil
	}

	s, ok := inst.NearestReachableStation(rs.CurrentLocation, rs.RemainingEnergy)
	if ok && inst.EnergyConsumption(s, inst.DepotIndex) <= inst.E {
		rs.AppendStation(inst, s)
		rs.AppendDepot(inst)
		return nil
	}

	return core.ErrInstanceInfeasible
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
