package alns

import (
	"math"
	"math/rand"
)

// eps guards floating-point noise when comparing objective values.
const eps = 1e-9

// Acceptance decides whether a candidate objective value replaces the
// current one, given the current iteration index.
type Acceptance struct {
	cfg   SAConfig
	total int
}

// NewAcceptance builds a simulated-annealing acceptance criterion that
// cools from StartTemperature by a factor of (1-Step) per iteration,
// floored at EndTemperature. totalIterations is stored but does not affect
// the schedule. Only "exponential" cooling is implemented; driver start-up
// already rejects any other method via Validate.
func NewAcceptance(cfg SAConfig, totalIterations int) *Acceptance {
	return &Acceptance{cfg: cfg, total: totalIterations}
}

// temperature returns T_i = StartTemperature * (1-Step)^i, floored at
// EndTemperature.
func (a *Acceptance) temperature(iteration int) float64 {
	t := a.cfg.StartTemperature * math.Pow(1-a.cfg.Step, float64(iteration))
	if t < a.cfg.EndTemperature {
		t = a.cfg.EndTemperature
	}
	return t
}

// Accept decides whether the move from currentObj to candidateObj (lower is
// better) is accepted at the given iteration, returning the outcome class
// alongside the boolean so the driver can feed weight updates directly.
func (a *Acceptance) Accept(rng *rand.Rand, iteration int, currentObj, candidateObj, bestObj float64) (bool, OutcomeClass) {
	switch {
	case candidateObj < bestObj-eps:
		return true, Best
	case candidateObj < currentObj-eps:
		return true, Better
	}

	delta := candidateObj - currentObj
	if delta <= 0 {
		return true, Accepted
	}

	t := a.temperature(iteration)
	prob := math.Exp(-delta / t)
	if rng.Float64() < prob {
		return true, Accepted
	}
	return false, Rejected
}
