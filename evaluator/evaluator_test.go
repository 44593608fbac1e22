package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evrptw/core"
	"github.com/katalvlaran/evrptw/evaluator"
)

func buildInstance(t *testing.T, e float64) *core.Instance {
	t.Helper()
	nodes := []core.Node{
		{Index: 0, ID: "D", Kind: core.Depot, X: 0, Y: 0, Due: 1000},
		{Index: 1, ID: "c1", Kind: core.Customer, X: 10, Y: 0, Demand: 1, Ready: 0, Due: 100},
		{Index: 2, ID: "c2", Kind: core.Customer, X: 0, Y: 10, Demand: 1, Ready: 0, Due: 100},
		{Index: 3, ID: "s1", Kind: core.Station, X: 5, Y: 0},
	}
	inst, err := core.NewInstance(nodes, 10, e, 1, 1)
	require.NoError(t, err)
	return inst
}

// Scenario 1: direct route is fully feasible with a large battery.
func TestEvaluate_DirectRouteFeasible(t *testing.T) {
	inst := buildInstance(t, 1000)
	route := core.Route{0, 1, 2, 0}
	f := evaluator.Evaluate(inst, route)
	assert.True(t, f.Feasible())
}

// Scenario 2: with E=25 the direct route D->c1->c2->D (~34.14) is energy
// infeasible, but recharging at the station at (5,0) between c1 and c2
// restores feasibility.
func TestEvaluate_StationForced(t *testing.T) {
	inst := buildInstance(t, 25)
	direct := core.Route{0, 1, 2, 0}
	f := evaluator.Evaluate(inst, direct)
	assert.False(t, f.EnergyOK)

	withStation := core.Route{0, 1, 3, 2, 0}
	f2 := evaluator.Evaluate(inst, withStation)
	assert.True(t, f2.Feasible())
}

func TestEvaluate_Idempotent(t *testing.T) {
	inst := buildInstance(t, 12)
	route := core.Route{0, 1, 3, 2, 0}
	f1 := evaluator.Evaluate(inst, route)
	f2 := evaluator.Evaluate(inst, route)
	assert.Equal(t, f1, f2)
}

func TestEvaluate_CapacityInfeasible(t *testing.T) {
	inst := buildInstance(t, 1000)
	// Demand 1+1=2 <= Q=10, so force infeasibility via tiny capacity instance.
	nodes := []core.Node{
		{Index: 0, ID: "D", Kind: core.Depot, X: 0, Y: 0, Due: 1000},
		{Index: 1, ID: "c1", Kind: core.Customer, X: 10, Y: 0, Demand: 5, Ready: 0, Due: 100},
	}
	small, err := core.NewInstance(nodes, 3, 1000, 1, 1)
	require.NoError(t, err)
	f := evaluator.Evaluate(small, core.Route{0, 1, 0})
	assert.False(t, f.CapacityOK)
	_ = inst
}

func TestEvaluate_TimeFeasibleWithinWindow(t *testing.T) {
	inst := buildInstance(t, 1000)
	late := core.Route{0, 1, 0}
	// due(c1)=100, distance(D,c1)=10, arrives at t=10, within window.
	f := evaluator.Evaluate(inst, late)
	assert.True(t, f.TimeOK)
}
