package alns_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evrptw/alns"
	"github.com/katalvlaran/evrptw/core"
	"github.com/katalvlaran/evrptw/evaluator"
)

func gridInstance(t *testing.T, e float64) *core.Instance {
	t.Helper()
	nodes := []core.Node{
		{Index: 0, ID: "D", Kind: core.Depot, X: 0, Y: 0, Due: 10000},
		{Index: 1, ID: "c1", Kind: core.Customer, X: 10, Y: 0, Demand: 1, Ready: 0, Due: 10000},
		{Index: 2, ID: "c2", Kind: core.Customer, X: 0, Y: 10, Demand: 1, Ready: 0, Due: 10000},
		{Index: 3, ID: "c3", Kind: core.Customer, X: 10, Y: 10, Demand: 1, Ready: 0, Due: 10000},
		{Index: 4, ID: "c4", Kind: core.Customer, X: -10, Y: 0, Demand: 1, Ready: 0, Due: 10000},
		{Index: 5, ID: "s1", Kind: core.Station, X: 5, Y: 5},
	}
	inst, err := core.NewInstance(nodes, 10, e, 1, 1)
	require.NoError(t, err)
	return inst
}

func seedSolution(t *testing.T, inst *core.Instance) *core.Solution {
	t.Helper()
	routes := []core.Route{
		{0, 1, 2, 3, 4, 0},
	}
	return core.NewSolution(inst, routes)
}

// WorstCustomerRemoval removes at least one customer, reports exactly as
// many removals as it moved into Unassigned, and only ever moves customers.
func TestWorstCustomerRemoval_RemovesOnlyCustomers(t *testing.T) {
	inst := gridInstance(t, 1000)
	sol := seedSolution(t, inst)
	state := core.NewALNSState(inst, sol)

	rng := rand.New(rand.NewSource(1))
	cfg := alns.DefaultConfig()
	cfg.Xi = 1.0 // k may then range over every present customer
	removed := alns.WorstCustomerRemoval(rng, cfg, state)

	assert.Greater(t, removed, 0)
	assert.Len(t, state.Unassigned, removed)
	for _, c := range state.Unassigned {
		assert.True(t, inst.IsCustomer(c))
	}
}

// WorstStationRemoval must re-check energy feasibility after dropping a
// station and keep removing customers from the bounded segment until the
// route is feasible again — not blindly strip exactly one neighbor.
func TestWorstStationRemoval_RepairsSegmentUntilFeasible(t *testing.T) {
	nodes := []core.Node{
		{Index: 0, ID: "D", Kind: core.Depot, X: 0, Y: 0, Due: 10000},
		{Index: 1, ID: "c1", Kind: core.Customer, X: 2, Y: 0, Demand: 1, Ready: 0, Due: 10000},
		{Index: 2, ID: "s", Kind: core.Station, X: 5, Y: 0},
		{Index: 3, ID: "c2", Kind: core.Customer, X: 7, Y: 0, Demand: 1, Ready: 0, Due: 10000},
	}
	inst, err := core.NewInstance(nodes, 10, 10, 1, 1)
	require.NoError(t, err)

	// With the station, the route is feasible; without it, the 3 units left
	// after D->c1->c2 cannot cover the 7-unit c2->D leg (verified as a
	// precondition below).
	withStation := core.Route{0, 1, 2, 3, 0}
	require.True(t, evaluator.Evaluate(inst, withStation).EnergyOK)
	withoutStation := core.Route{0, 1, 3, 0}
	require.False(t, evaluator.Evaluate(inst, withoutStation).EnergyOK)

	state := core.NewALNSState(inst, core.NewSolution(inst, []core.Route{withStation}))
	rng := rand.New(rand.NewSource(1))
	cfg := alns.DefaultConfig()

	removed := alns.WorstStationRemoval(rng, cfg, state)

	require.Len(t, state.Routes, 1)
	assert.True(t, evaluator.Evaluate(inst, state.Routes[0]).EnergyOK)
	assert.Equal(t, 1, removed)
	assert.Contains(t, state.Unassigned, 3)
}

// Scenario 4: when direct and single-station repair both fail, the repair
// operator falls back to a two-station bracket route.
func TestGreedyRepair_FallsBackToTwoStations(t *testing.T) {
	nodes := []core.Node{
		{Index: 0, ID: "D", Kind: core.Depot, X: 0, Y: 0, Due: 10000},
		{Index: 1, ID: "far", Kind: core.Customer, X: 40, Y: 0, Demand: 1, Ready: 0, Due: 10000},
		{Index: 2, ID: "s1", Kind: core.Station, X: 15, Y: 0},
		{Index: 3, ID: "s2", Kind: core.Station, X: 35, Y: 5},
	}
	// Battery covers 40 units: depot->far->depot is 80, and s1->far->s1 is
	// 50, so the only feasible brackets use s1 on one side and s2 (~7.07
	// from far, ~35.36 from the depot) on the other.
	inst, err := core.NewInstance(nodes, 10, 40, 1, 1)
	require.NoError(t, err)

	state := core.NewALNSState(inst, core.NewSolution(inst, nil))
	state.Unassigned = []int{1}

	rng := rand.New(rand.NewSource(7))
	err = alns.GreedyRepair(rng, alns.DefaultConfig(), state)
	require.NoError(t, err)
	require.Empty(t, state.Unassigned)
	require.Len(t, state.Routes, 1)
	assert.Contains(t, state.Routes[0], 2)
	assert.Contains(t, state.Routes[0], 3)
}

// Scenario 6: two Run calls with identical seeds produce identical
// statistics and identical best solutions.
func TestRun_DeterministicForFixedSeed(t *testing.T) {
	inst := gridInstance(t, 1000)
	initial := seedSolution(t, inst)

	cfg := alns.DefaultConfig()
	cfg.Seed = 42
	cfg.NumIterations = 25

	best1, stats1, err1 := alns.Run(context.Background(), inst, initial, cfg)
	require.NoError(t, err1)
	best2, stats2, err2 := alns.Run(context.Background(), inst, initial, cfg)
	require.NoError(t, err2)

	assert.InDelta(t, best1.TotalDistance, best2.TotalDistance, 1e-12)
	assert.Equal(t, best1.Routes, best2.Routes)
	require.Equal(t, len(stats1.Iterations), len(stats2.Iterations))
	for i := range stats1.Iterations {
		assert.Equal(t, stats1.Iterations[i].Destroy, stats2.Iterations[i].Destroy)
		assert.Equal(t, stats1.Iterations[i].Repair, stats2.Iterations[i].Repair)
		assert.Equal(t, stats1.Iterations[i].Outcome, stats2.Iterations[i].Outcome)
	}
}

func TestRun_RejectsInvalidConfig(t *testing.T) {
	inst := gridInstance(t, 1000)
	initial := seedSolution(t, inst)

	cfg := alns.DefaultConfig()
	cfg.SA.Method = "linear"

	_, _, err := alns.Run(context.Background(), inst, initial, cfg)
	assert.ErrorIs(t, err, alns.ErrConfigurationInvalid)
}
