package alns

import (
	"context"
	"time"

	"github.com/katalvlaran/evrptw/core"
)

var destroyOperators = []DestroyOperator{
	RandomCustomerRemoval,
	NearestCustomersRemoval,
	WorstCustomerRemoval,
	WorstStationRemoval,
}

var repairOperators = []RepairOperator{
	GreedyRepair,
	RegretRepair,
}

// Run executes the full ALNS loop over cfg.NumIterations iterations,
// starting from initial, and returns the best solution found, full
// per-iteration statistics, and an error only if the configuration itself
// is invalid or ctx is cancelled. On cancellation, checked before each
// iteration, it returns the best solution and statistics gathered so far
// together with ctx.Err().
//
// Every random draw made during the run flows through one *rand.Rand seeded
// from cfg.Seed (spec §5); no goroutine or independent substream touches it
// concurrently.
func Run(ctx context.Context, inst *core.Instance, initial *core.Solution, cfg Config) (*core.Solution, Statistics, error) {
	if err := Validate(cfg); err != nil {
		return nil, Statistics{}, err
	}

	start := time.Now()
	rng := NewRNG(cfg.Seed)
	selector := NewSelector(cfg.Selector)
	accept := NewAcceptance(cfg.SA, cfg.NumIterations)

	current := initial.Clone()
	best := initial.Clone()
	stats := Statistics{Iterations: make([]IterationRecord, 0, cfg.NumIterations)}

	for i := 0; i < cfg.NumIterations; i++ {
		select {
		case <-ctx.Done():
			stats.TotalRuntime = time.Since(start)
			return best, stats, ctx.Err()
		default:
		}

		iterStart := time.Now()
		di, ri := selector.Select(rng)

		state := core.NewALNSState(inst, current)
		destroyOperators[di](rng, cfg, state)
		if err := repairOperators[ri](rng, cfg, state); err != nil {
			// A stalled repair leaves state worse than current; reject it
			// outright without touching best/current and move on.
			selector.Record(di, ri, Rejected)
			stats.Iterations = append(stats.Iterations, IterationRecord{
				Destroy: di, Repair: ri, Outcome: Rejected,
				Objective: current.TotalDistance, Runtime: time.Since(iterStart),
			})
			continue
		}
		state.PruneEmptyRoutes()
		candidate := state.Solution()

		accepted, outcome := accept.Accept(rng, i, current.TotalDistance, candidate.TotalDistance, best.TotalDistance)
		if accepted {
			current = candidate
		}
		if outcome == Best {
			best = candidate.Clone()
		}
		selector.Record(di, ri, outcome)

		stats.Iterations = append(stats.Iterations, IterationRecord{
			Destroy: di, Repair: ri, Outcome: outcome,
			Objective: candidate.TotalDistance, Runtime: time.Since(iterStart),
		})
	}

	stats.TotalRuntime = time.Since(start)
	return best, stats, nil
}
