// Package construct implements the Greedy Constructor (spec §4.E): it
// builds an initial feasible Solution one route at a time, proactively
// inserting recharging stations whenever a customer cannot be reached — or
// the depot cannot be reached afterward — on the vehicle's remaining
// energy.
//
// Construct never mutates the Instance and returns either a fully-served
// Solution or core.ErrInstanceInfeasible; it never partially serves a
// customer or leaves a dangling in-progress route in its result.
package construct
