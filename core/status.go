package core

// RouteStatus is the construction scratchpad for one in-progress route: it
// tracks the running vehicle state while the Greedy Constructor extends a
// route node by node. A RouteStatus is created per route and discarded once
// the route is finished.
type RouteStatus struct {
	CurrentLocation    int
	RemainingCapacity  float64
	RemainingEnergy    float64
	ArrivalTime        float64
	LastServiceEndTime float64
	Route              Route
	TotalDistance      float64
}

// NewRouteStatus starts a fresh RouteStatus at the depot with a full
// battery and capacity.
func NewRouteStatus(inst *Instance) *RouteStatus {
	return &RouteStatus{
		CurrentLocation:    inst.DepotIndex,
		RemainingCapacity:  inst.Q,
		RemainingEnergy:    inst.E,
		ArrivalTime:        0,
		LastServiceEndTime: 0,
		Route:              Route{inst.DepotIndex},
		TotalDistance:      0,
	}
}

// AppendCustomer moves the vehicle to c, serving it: updates capacity,
// energy, arrival/service-end time, distance, and appends c to the route.
// Callers are responsible for any feasibility checks beforehand.
func (rs *RouteStatus) AppendCustomer(inst *Instance, c int) {
	d := inst.Distance(rs.CurrentLocation, c)
	e := d * inst.R
	arrival := rs.LastServiceEndTime + d
	node := inst.Node(c)
	start := arrival
	if node.Ready > start {
		start = node.Ready
	}
	end := start + node.Service

	rs.TotalDistance += d
	rs.RemainingEnergy -= e
	rs.RemainingCapacity -= node.Demand
	rs.ArrivalTime = arrival
	rs.LastServiceEndTime = end
	rs.CurrentLocation = c
	rs.Route = append(rs.Route, c)
}

// AppendStation moves the vehicle to station s and performs a full linear
// recharge, updating time, energy, and the route accordingly.
func (rs *RouteStatus) AppendStation(inst *Instance, s int) {
	d := inst.Distance(rs.CurrentLocation, s)
	e := d * inst.R
	arrival := rs.LastServiceEndTime + d

	socAtArrival := rs.RemainingEnergy - e
	rechargeAmount := inst.E - maxFloat(0, socAtArrival)
	rechargeEnd := arrival + inst.RechargeTime(rechargeAmount)

	rs.TotalDistance += d
	rs.RemainingEnergy = inst.E
	rs.ArrivalTime = arrival
	rs.LastServiceEndTime = rechargeEnd
	rs.CurrentLocation = s
	rs.Route = append(rs.Route, s)
}

// AppendDepot closes the route by returning to the depot.
func (rs *RouteStatus) AppendDepot(inst *Instance) {
	d := inst.Distance(rs.CurrentLocation, inst.DepotIndex)
	rs.TotalDistance += d
	rs.RemainingEnergy -= d * inst.R
	rs.ArrivalTime = rs.LastServiceEndTime + d
	rs.LastServiceEndTime = rs.ArrivalTime
	rs.CurrentLocation = inst.DepotIndex
	rs.Route = append(rs.Route, inst.DepotIndex)
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
