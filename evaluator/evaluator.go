package evaluator

import "github.com/katalvlaran/evrptw/core"

// Flags is the result of one feasibility evaluation: three independent
// booleans, none of which short-circuits the others.
type Flags struct {
	TimeOK     bool
	CapacityOK bool
	EnergyOK   bool
}

// Feasible reports whether all three flags hold.
func (f Flags) Feasible() bool { return f.TimeOK && f.CapacityOK && f.EnergyOK }

// Evaluate performs one left-to-right traversal of route under inst,
// maintaining (time, capacity, state-of-charge, last node) and returning
// the three feasibility flags. See spec §4.C for the per-transition
// semantics; in particular a negative state-of-charge does not stop the
// traversal — the routine keeps going so time and capacity can still be
// judged, and a station visited with negative incoming SoC still performs
// a full recharge (the evaluator reports the infeasibility but does not
// pretend the vehicle stranded there).
func Evaluate(inst *core.Instance, route core.Route) Flags {
	f := Flags{TimeOK: true, CapacityOK: true, EnergyOK: true}
	if len(route) < 2 {
		return f
	}

	time := 0.0
	capacity := inst.Q
	soc := inst.E
	last := route[0]

	for i := 1; i < len(route); i++ {
		node := route[i]
		d := inst.Distance(last, node)
		e := d * inst.R
		arrival := time + d

		if soc-e < 0 {
			f.EnergyOK = false
		}

		switch {
		case inst.IsCustomer(node):
			n := inst.Node(node)
			start := arrival
			if n.Ready > start {
				start = n.Ready
			}
			end := start + n.Service
			if start > n.Due {
				f.TimeOK = false
			}
			if n.Demand > capacity {
				f.CapacityOK = false
			}
			time = end
			capacity -= n.Demand
			soc -= e

		case inst.IsStation(node):
			rechargeAmount := inst.E - maxFloat(0, soc-e)
			time = arrival + inst.RechargeTime(rechargeAmount)
			soc = inst.E

		case inst.IsDepot(node):
			time = arrival
			soc -= e
			if time > inst.Node(node).Due {
				f.TimeOK = false
			}
		}

		last = node
	}

	return f
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
