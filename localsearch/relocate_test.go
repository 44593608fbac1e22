package localsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evrptw/core"
	"github.com/katalvlaran/evrptw/evaluator"
	"github.com/katalvlaran/evrptw/localsearch"
)

func relocateInstance(t *testing.T) *core.Instance {
	t.Helper()
	nodes := []core.Node{
		{Index: 0, ID: "D", Kind: core.Depot, X: 0, Y: 0, Due: 1000},
		{Index: 1, ID: "a", Kind: core.Customer, X: 1, Y: 0, Demand: 1, Ready: 0, Due: 1000},
		{Index: 2, ID: "b", Kind: core.Customer, X: 2, Y: 0, Demand: 1, Ready: 0, Due: 1000},
		{Index: 3, ID: "c", Kind: core.Customer, X: 2, Y: 1, Demand: 1, Ready: 0, Due: 1000},
	}
	inst, err := core.NewInstance(nodes, 100, 1000, 1, 1)
	require.NoError(t, err)
	return inst
}

// Scenario 5: two badly-arranged routes; one relocate pass must find an
// improvement, and re-running Improve on the result is a fixed point.
func TestImprove_FindsImprovementThenFixedPoint(t *testing.T) {
	inst := relocateInstance(t)
	initial := core.NewSolution(inst, []core.Route{
		{0, 1, 2, 0},
		{0, 3, 0},
	})

	improved := localsearch.Improve(inst, initial)
	assert.Less(t, improved.TotalDistance, initial.TotalDistance)
	for _, r := range improved.Routes {
		assert.True(t, evaluator.Evaluate(inst, r).Feasible())
	}

	fixedPoint := localsearch.Improve(inst, improved)
	assert.InDelta(t, improved.TotalDistance, fixedPoint.TotalDistance, 1e-9)
}

func TestImprove_NeverWorsens(t *testing.T) {
	inst := relocateInstance(t)
	initial := core.NewSolution(inst, []core.Route{
		{0, 1, 0},
		{0, 2, 0},
		{0, 3, 0},
	})
	improved := localsearch.Improve(inst, initial)
	assert.LessOrEqual(t, improved.TotalDistance, initial.TotalDistance)
}

func TestImprove_DoesNotMutateInput(t *testing.T) {
	inst := relocateInstance(t)
	initial := core.NewSolution(inst, []core.Route{
		{0, 1, 2, 0},
		{0, 3, 0},
	})
	before := initial.TotalDistance
	_ = localsearch.Improve(inst, initial)
	assert.InDelta(t, before, initial.TotalDistance, 1e-9)
}
