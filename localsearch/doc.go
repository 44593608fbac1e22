// Package localsearch implements the Relocate Local Search (spec §4.F): a
// best-improvement descent that moves single customers between routes,
// repairing energy infeasibility at the destination by station insertion
// (package station) when needed.
//
// Improve never worsens its input — local_search(s).TotalDistance <=
// s.TotalDistance always holds — because it only ever commits the single
// best strictly-improving move found in a full pass, and stops once a pass
// finds none.
package localsearch
