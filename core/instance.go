package core

import "math"

// Instance holds the immutable problem data for one EVRPTW run: the node
// list, vehicle parameters, and a precomputed dense N×N Euclidean distance
// matrix. All derived queries (distance, travel time, energy, recharge
// time, node classification) are O(1) lookups.
//
// Vehicle speed is fixed at 1, so travel_time(u,v) == distance(u,v).
type Instance struct {
	Nodes []Node

	DepotIndex int
	stations   map[int]struct{}
	customers  map[int]struct{}

	// Q is vehicle load capacity, E is battery capacity, R is energy
	// consumed per unit distance, G is time to recharge one unit of energy
	// (inverse recharging rate).
	Q, E, R, G float64

	dist []float64 // row-major n*n
	n    int
}

// NewInstance validates nodes and vehicle parameters and builds the dense
// distance matrix. Nodes must contain exactly one Depot; station and
// customer index sets (derived from Kind) are always disjoint by
// construction since a Node has a single Kind.
func NewInstance(nodes []Node, q, e, r, g float64) (*Instance, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyNodeList
	}

	depotIdx := -1
	stations := make(map[int]struct{})
	customers := make(map[int]struct{})
	for i, nd := range nodes {
		if nd.Index != i {
			return nil, ErrIndexOutOfRange
		}
		switch nd.Kind {
		case Depot:
			if depotIdx != -1 {
				return nil, ErrNoDepot
			}
			depotIdx = i
		case Station:
			stations[i] = struct{}{}
		case Customer:
			customers[i] = struct{}{}
		}
	}
	if depotIdx == -1 {
		return nil, ErrNoDepot
	}

	n := len(nodes)
	dist := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dx := nodes[i].X - nodes[j].X
			dy := nodes[i].Y - nodes[j].Y
			dist[i*n+j] = math.Sqrt(dx*dx + dy*dy)
		}
	}

	return &Instance{
		Nodes:      nodes,
		DepotIndex: depotIdx,
		stations:   stations,
		customers:  customers,
		Q:          q,
		E:          e,
		R:          r,
		G:          g,
		dist:       dist,
		n:          n,
	}, nil
}

// NumNodes returns the number of nodes in the instance, including the depot.
func (inst *Instance) NumNodes() int { return inst.n }

// Node returns the node at idx.
func (inst *Instance) Node(idx int) Node { return inst.Nodes[idx] }

// Distance returns the Euclidean distance between nodes u and v.
func (inst *Instance) Distance(u, v int) float64 { return inst.dist[u*inst.n+v] }

// TravelTime returns the travel time between u and v (vehicle speed is 1).
func (inst *Instance) TravelTime(u, v int) float64 { return inst.Distance(u, v) }

// EnergyConsumption returns the energy spent travelling from u to v.
func (inst *Instance) EnergyConsumption(u, v int) float64 { return inst.Distance(u, v) * inst.R }

// RechargeTime returns the time needed to recharge delta units of energy.
func (inst *Instance) RechargeTime(delta float64) float64 { return delta * inst.G }

// IsDepot reports whether idx is the depot.
func (inst *Instance) IsDepot(idx int) bool { return idx == inst.DepotIndex }

// IsStation reports whether idx is a recharging station.
func (inst *Instance) IsStation(idx int) bool {
	_, ok := inst.stations[idx]
	return ok
}

// IsCustomer reports whether idx is a customer.
func (inst *Instance) IsCustomer(idx int) bool {
	_, ok := inst.customers[idx]
	return ok
}

// Stations returns the station indices in ascending order.
func (inst *Instance) Stations() []int { return sortedKeys(inst.stations) }

// Customers returns the customer indices in ascending order.
func (inst *Instance) Customers() []int { return sortedKeys(inst.customers) }

// NumCustomers returns the number of customers in the instance.
func (inst *Instance) NumCustomers() int { return len(inst.customers) }

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	// Insertion sort is fine here: these sets are small relative to n and
	// this helper is not on any hot path (called at setup / operator-build
	// time, never inside the feasibility evaluator's inner loop).
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// CanReachDepot reports whether a node with remaining energy eps can reach
// the depot either directly, or via some station reachable on eps with
// enough energy left at the station to make a full-battery hop to the
// depot (spec §4.E "Depot reachability").
func (inst *Instance) CanReachDepot(from int, eps float64) bool {
	if inst.EnergyConsumption(from, inst.DepotIndex) <= eps {
		return true
	}
	for s := range inst.stations {
		if inst.EnergyConsumption(from, s) <= eps && inst.EnergyConsumption(s, inst.DepotIndex) <= inst.E {
			return true
		}
	}
	return false
}

// NearestReachableStation returns the station nearest to from that is
// reachable with remaining energy eps, or (-1, false) if none is.
func (inst *Instance) NearestReachableStation(from int, eps float64) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for _, s := range inst.Stations() {
		if inst.EnergyConsumption(from, s) > eps {
			continue
		}
		d := inst.Distance(from, s)
		if d < bestDist {
			bestDist = d
			best = s
		}
	}
	return best, best != -1
}
