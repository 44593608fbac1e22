package core

// Route is an ordered sequence of node indices starting and ending at the
// depot. Interior nodes are customers and/or stations; stations may repeat
// within and across routes, customers must not repeat anywhere in a
// Solution. A Route with no interior nodes is empty and must be pruned.
type Route []int

// NewEmptyRoute returns the empty route [depot, depot].
func NewEmptyRoute(depot int) Route {
	return Route{depot, depot}
}

// IsEmpty reports whether r has no interior nodes.
func (r Route) IsEmpty() bool { return len(r) <= 2 }

// Clone returns an owned, independent copy of r.
func (r Route) Clone() Route {
	out := make(Route, len(r))
	copy(out, r)
	return out
}

// Customers returns the interior customer node indices of r, in route order.
func (r Route) Customers(inst *Instance) []int {
	var out []int
	for i := 1; i < len(r)-1; i++ {
		if inst.IsCustomer(r[i]) {
			out = append(out, r[i])
		}
	}
	return out
}

// Stations returns the interior station node indices of r, in route order.
func (r Route) Stations(inst *Instance) []int {
	var out []int
	for i := 1; i < len(r)-1; i++ {
		if inst.IsStation(r[i]) {
			out = append(out, r[i])
		}
	}
	return out
}

// Distance returns the total travelled distance of r under inst.
func (r Route) Distance(inst *Instance) float64 {
	var sum float64
	for i := 0; i+1 < len(r); i++ {
		sum += inst.Distance(r[i], r[i+1])
	}
	return sum
}

// WithRemoved returns a copy of r with the element at position pos removed.
func (r Route) WithRemoved(pos int) Route {
	out := make(Route, 0, len(r)-1)
	out = append(out, r[:pos]...)
	out = append(out, r[pos+1:]...)
	return out
}

// WithInserted returns a copy of r with node inserted at position pos
// (between r[pos-1] and what was r[pos]).
func (r Route) WithInserted(pos, node int) Route {
	out := make(Route, 0, len(r)+1)
	out = append(out, r[:pos]...)
	out = append(out, node)
	out = append(out, r[pos:]...)
	return out
}
