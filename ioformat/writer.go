package ioformat

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/evrptw/core"
)

// WriteSolution emits: a first line with the total distance, then one
// comma-separated line of node string IDs per route.
func WriteSolution(w io.Writer, inst *core.Instance, sol *core.Solution) error {
	if _, err := fmt.Fprintf(w, "%s\n", strconv.FormatFloat(sol.TotalDistance, 'f', -1, 64)); err != nil {
		return fmt.Errorf("ioformat: writing total distance: %w", err)
	}

	cw := csv.NewWriter(w)
	for _, route := range sol.Routes {
		record := make([]string, len(route))
		for i, node := range route {
			record[i] = inst.Node(node).ID
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("ioformat: writing route: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
