// Package runconfig loads the JSON run configuration described in the
// external interfaces section and adapts it into the typed config structs
// the construct and alns packages consume directly.
package runconfig
