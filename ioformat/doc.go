// Package ioformat reads the instance text format and writes the solution
// text format described in the external interfaces section: plain,
// line-oriented, no nested structure, so bufio and encoding/csv cover it
// without reaching for a third-party parser.
package ioformat
