package core

import "errors"

// Sentinel errors for the domain model. Indexing or invariant violations are
// programming errors and are never silently swallowed by callers.
var (
	// ErrNoDepot indicates the node list contains zero or more than one depot.
	ErrNoDepot = errors.New("core: instance must have exactly one depot")

	// ErrOverlappingSets indicates a node index appears in both the station
	// and customer sets.
	ErrOverlappingSets = errors.New("core: station and customer sets overlap")

	// ErrEmptyNodeList indicates NewInstance was called with no nodes.
	ErrEmptyNodeList = errors.New("core: instance has no nodes")

	// ErrIndexOutOfRange indicates a node index outside [0, NumNodes).
	ErrIndexOutOfRange = errors.New("core: node index out of range")

	// ErrInstanceInfeasible indicates construction could not place every
	// customer on a feasible route (spec §7: InstanceInfeasible).
	ErrInstanceInfeasible = errors.New("core: instance has no feasible solution")

	// ErrCustomerNotFound indicates a lookup for a customer that should be
	// present in some route failed; this is a programming error and is
	// always fatal (spec §7: CustomerNotFound).
	ErrCustomerNotFound = errors.New("core: customer not found in any route")
)
