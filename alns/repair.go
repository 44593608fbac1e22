package alns

import (
	"math/rand"

	"github.com/katalvlaran/evrptw/core"
	"github.com/katalvlaran/evrptw/evaluator"
	"github.com/katalvlaran/evrptw/station"
)

// RepairOperator reinserts every customer in state.Unassigned back into
// state.Routes (opening new routes as needed), returning
// ErrRepairStalled if any customer has no feasible insertion anywhere.
type RepairOperator func(rng *rand.Rand, cfg Config, state *core.ALNSState) error

// insertionOption is one candidate placement for a single unassigned
// customer: insert at routeIdx/pos, optionally wrapped by a station splice
// described by viaStation.
type insertionOption struct {
	routeIdx   int
	pos        int
	viaStation bool
	stationsAt core.Route // full resulting route fragment, already spliced
	// cost is the marginal distance this insertion adds: the resulting
	// route's distance minus the route's distance before the insertion (0
	// minus 0 for a brand-new route, i.e. just the new route's distance).
	cost float64
}

// GreedyRepair reinserts unassigned customers one per round: for each
// customer it sorts the feasible insertions by cost and takes the
// biased-index option, then commits the customer whose picked option is
// cheapest, until none remain or no remaining customer has a feasible
// insertion.
func GreedyRepair(rng *rand.Rand, cfg Config, state *core.ALNSState) error {
	pending := state.Unassigned
	state.Unassigned = nil

	for len(pending) > 0 {
		bestCustIdx := -1
		var best insertionOption
		found := false

		for i, c := range pending {
			opts := feasibleInsertions(state, c)
			if len(opts) == 0 {
				continue
			}
			insertionSortByCost(opts)
			opt := opts[biasedIndex(rng, cfg.P, len(opts))]
			if !found || opt.cost < best.cost {
				best, bestCustIdx, found = opt, i, true
			}
		}
		if !found {
			state.Unassigned = append(state.Unassigned, pending...)
			return ErrRepairStalled
		}

		applyInsertion(state, best)
		pending = append(pending[:bestCustIdx], pending[bestCustIdx+1:]...)
	}
	return nil
}

// RegretRepair reinserts unassigned customers one per round, ranked by
// "regret": the gap between a customer's best and second-best insertion
// cost. Each round picks a customer by biased index over the list sorted
// by descending regret and inserts its best option. This prioritizes
// hard-to-place customers before easier ones absorb cheap slots.
func RegretRepair(rng *rand.Rand, cfg Config, state *core.ALNSState) error {
	pending := state.Unassigned
	state.Unassigned = nil

	for len(pending) > 0 {
		type regretCandidate struct {
			custIdx int
			best    insertionOption
			regret  float64
		}
		var candidates []regretCandidate

		for i, c := range pending {
			opts := feasibleInsertions(state, c)
			if len(opts) == 0 {
				continue
			}
			insertionSortByCost(opts)
			regret := 0.0
			if len(opts) > 1 {
				regret = opts[1].cost - opts[0].cost
			}
			candidates = append(candidates, regretCandidate{i, opts[0], regret})
		}
		if len(candidates) == 0 {
			state.Unassigned = append(state.Unassigned, pending...)
			return ErrRepairStalled
		}

		// Sort descending by regret, then biased-pick over the whole sorted
		// list (spec's biased-selection rule applied to repair as well).
		for i := 1; i < len(candidates); i++ {
			v := candidates[i]
			j := i - 1
			for j >= 0 && candidates[j].regret < v.regret {
				candidates[j+1] = candidates[j]
				j--
			}
			candidates[j+1] = v
		}
		chosen := biasedIndex(rng, cfg.P, len(candidates))
		pick := candidates[chosen]

		applyInsertion(state, pick.best)
		pending = append(pending[:pick.custIdx], pending[pick.custIdx+1:]...)
	}
	return nil
}

func insertionSortByCost(a []insertionOption) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j].cost > v.cost {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}

// cheapestInsertion is a thin wrapper over feasibleInsertions for callers
// that only need the single best option.
func cheapestInsertion(state *core.ALNSState, customer int) (insertionOption, bool) {
	opts := feasibleInsertions(state, customer)
	if len(opts) == 0 {
		return insertionOption{}, false
	}
	insertionSortByCost(opts)
	return opts[0], true
}

// feasibleInsertions enumerates every feasible placement of customer across
// all existing routes (direct insertion, or via a single station splice
// before/after), plus a brand-new route, plus — only if no existing-route
// option is feasible — a fallback new route bracketing the customer with
// two station visits (depot, s1, customer, s2, depot), per spec §4.H's
// fallback clause.
func feasibleInsertions(state *core.ALNSState, customer int) []insertionOption {
	inst := state.Instance
	var opts []insertionOption

	for ri, r := range state.Routes {
		base := r.Distance(inst)
		for p := 1; p < len(r); p++ {
			cand := r.WithInserted(p, customer)
			flags := evaluator.Evaluate(inst, cand)
			if flags.TimeOK && flags.CapacityOK && flags.EnergyOK {
				opts = append(opts, insertionOption{ri, p, false, cand, cand.Distance(inst) - base})
				continue
			}
			if !flags.TimeOK || !flags.CapacityOK {
				continue
			}
			if alt, ok := station.BestInsertion(inst, r, p, customer, true); ok {
				opts = append(opts, insertionOption{ri, p, true, alt, alt.Distance(inst) - base})
			}
			if alt, ok := station.BestInsertion(inst, r, p, customer, false); ok {
				opts = append(opts, insertionOption{ri, p, true, alt, alt.Distance(inst) - base})
			}
		}
	}

	fresh := core.Route{inst.DepotIndex, customer, inst.DepotIndex}
	if flags := evaluator.Evaluate(inst, fresh); flags.Feasible() {
		opts = append(opts, insertionOption{len(state.Routes), 1, false, fresh, fresh.Distance(inst)})
	} else if len(opts) == 0 {
		if twoStation, ok := twoStationBracket(inst, customer); ok {
			opts = append(opts, insertionOption{len(state.Routes), 1, true, twoStation, twoStation.Distance(inst)})
		}
	}

	return opts
}

// twoStationBracket builds depot->s1->customer->s2->depot, searching every
// station pair for the cheapest fully-feasible bracket — the repair
// operators' last-resort fallback when a customer cannot reach the depot
// directly from either side.
func twoStationBracket(inst *core.Instance, customer int) (core.Route, bool) {
	stations := inst.Stations()
	var best core.Route
	found := false
	for _, s1 := range stations {
		for _, s2 := range stations {
			cand := core.Route{inst.DepotIndex, s1, customer, s2, inst.DepotIndex}
			flags := evaluator.Evaluate(inst, cand)
			if !flags.Feasible() {
				continue
			}
			if !found || cand.Distance(inst) < best.Distance(inst) {
				best, found = cand, true
			}
		}
	}
	return best, found
}

// applyInsertion commits opt into state.Routes, opening a new route if
// opt.routeIdx points past the current route count.
func applyInsertion(state *core.ALNSState, opt insertionOption) {
	if opt.routeIdx >= len(state.Routes) {
		state.Routes = append(state.Routes, opt.stationsAt)
		return
	}
	state.Routes[opt.routeIdx] = opt.stationsAt
}
