// Package evaluator implements the single feasibility evaluator shared by
// every heuristic in this repository: one left-to-right traversal of a
// route producing three independent flags (time-ok, capacity-ok,
// energy-ok).
//
// The three flags are reported separately, never short-circuited, because
// repair code reacts differently to energy-only infeasibility (recoverable
// by station insertion, see package station) versus time or capacity
// infeasibility (not recoverable by adding a station). Running Evaluate
// twice on the same route always yields the same three flags — the
// evaluator is a pure function of (Instance, Route).
package evaluator
