// Package alns implements the Adaptive Large Neighborhood Search driver
// (spec §4.I) and the destroy (§4.G) and repair (§4.H) operators it
// orchestrates: alternating destroy+repair rounds under a simulated-
// annealing acceptance criterion, with operator weights adapted by a
// segmented-roulette-wheel selector.
//
// Every random draw in this package — operator selection, destroy
// sampling, repair's biased index, and the acceptance criterion's
// coin-flip — comes from a single *rand.Rand threaded through the whole
// run, so Run is fully deterministic given a fixed seed (spec §5, §8
// "Determinism").
package alns
