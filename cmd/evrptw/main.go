// Command evrptw runs the construction heuristic, relocate local search,
// and ALNS driver against a text-format instance, optionally verifying the
// result with an external checker binary.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/evrptw/cmd/evrptw/internal/cli"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := cli.NewRootCommand(logger).Execute(); err != nil {
		logger.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}
