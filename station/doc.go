// Package station implements the station insertion primitive (spec §4.D):
// given a route, a customer, and an insertion position, find the single
// recharging station whose insertion immediately before or after the
// customer yields the shortest fully-feasible route.
//
// The relocate local search and both ALNS repair operators go through
// BestInsertion to repair energy infeasibility rather than re-implementing
// station search (the Greedy Constructor chooses its stations with its own
// forward-looking rule and does not call it), keeping the "monotonicity of station insertion" law (spec §8) in one
// place: the primitive never returns a route that the evaluator judges
// infeasible.
package station
