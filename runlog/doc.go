// Package runlog appends one JSON record per completed run to a
// newline-delimited log file, the run history collaborator used by
// cmd/evrptw after every construct/improve/solve invocation.
package runlog
