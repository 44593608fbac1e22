// Package core defines the EVRPTW domain model: nodes, the problem Instance,
// Route and Solution, and the scratch types used while building or
// improving a solution (RouteStatus, ALNSState).
//
// The Instance is immutable once built — a dense Euclidean distance matrix
// is computed once in NewInstance and reused by every query. Route and
// Solution are plain value-ish types (slices of int / slices of Route):
// operators are expected to copy them explicitly (Route.Clone,
// Solution.Clone) rather than mutate a caller's state, matching the
// single-threaded, copy-on-write discipline described by the driver
// packages built on top of this one.
//
// No type in this package performs I/O, logging, or locking — it is a pure
// in-memory model, consumed by evaluator, station, construct, localsearch
// and alns.
package core
