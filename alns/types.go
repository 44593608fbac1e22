package alns

import (
	"errors"
	"time"
)

// Sentinel errors for the ALNS driver and its operators.
var (
	// ErrRepairStalled indicates a repair operator found zero feasible
	// options for at least one remaining unassigned customer (spec §7).
	ErrRepairStalled = errors.New("alns: repair stalled with unassigned customers remaining")

	// ErrConfigurationInvalid indicates an unknown acceptance method or an
	// out-of-range config value; fatal at startup (spec §7).
	ErrConfigurationInvalid = errors.New("alns: invalid configuration")
)

// OutcomeClass classifies one iteration's result for operator-weight
// updates (spec §4.I step 5).
type OutcomeClass int

const (
	Best OutcomeClass = iota
	Better
	Accepted
	Rejected
)

func (o OutcomeClass) String() string {
	switch o {
	case Best:
		return "best"
	case Better:
		return "better"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// SAConfig configures the simulated-annealing acceptance criterion.
type SAConfig struct {
	StartTemperature float64
	EndTemperature   float64
	Step             float64
	Method           string // only "exponential" is supported
}

// SelectorConfig configures the segmented-roulette-wheel operator selector.
type SelectorConfig struct {
	// Scores holds, in order, the score awarded for {best, better, accepted,
	// rejected} outcomes.
	Scores     [4]float64
	Decay      float64
	SegLength  int
	NumDestroy int
	NumRepair  int
}

// Config holds every ALNS driver knob from spec §6's config table.
type Config struct {
	Seed          int64
	NumIterations int
	Xi            float64
	P             float64 // biased-index exponent for customer operators
	PStation      float64 // biased-index exponent for the station operator
	SA            SAConfig
	Selector      SelectorConfig
}

// DefaultConfig returns the documented defaults, plus reasonable selector
// defaults for the four destroy / two repair operators this package ships
// (the spec leaves selector.* undocumented beyond "—", i.e. caller-supplied).
func DefaultConfig() Config {
	return Config{
		NumIterations: 1000,
		Xi:            0.2,
		P:             10,
		PStation:      6,
		SA: SAConfig{
			StartTemperature: 1000,
			EndTemperature:   1,
			Step:             1e-3,
			Method:           "exponential",
		},
		Selector: SelectorConfig{
			Scores:     [4]float64{33, 9, 13, 0},
			Decay:      0.8,
			SegLength:  100,
			NumDestroy: 4,
			NumRepair:  2,
		},
	}
}

// Validate checks internal consistency of cfg, returning
// ErrConfigurationInvalid (wrapped with the offending detail) on failure.
func Validate(cfg Config) error {
	if cfg.SA.Method != "exponential" {
		return wrapConfig("simulated_annealing.method: only \"exponential\" is supported")
	}
	if cfg.SA.StartTemperature <= cfg.SA.EndTemperature {
		return wrapConfig("simulated_annealing.start_temperature must exceed end_temperature")
	}
	if cfg.SA.EndTemperature <= 0 {
		return wrapConfig("simulated_annealing.end_temperature must be positive")
	}
	if cfg.SA.Step <= 0 || cfg.SA.Step >= 1 {
		return wrapConfig("simulated_annealing.step must be in (0,1)")
	}
	if cfg.Xi <= 0 || cfg.Xi > 1 {
		return wrapConfig("xi must be in (0,1]")
	}
	if cfg.P <= 0 {
		return wrapConfig("p must be positive")
	}
	if cfg.PStation <= 0 {
		return wrapConfig("p (station) must be positive")
	}
	if cfg.Selector.Decay < 0 || cfg.Selector.Decay > 1 {
		return wrapConfig("selector.decay must be in [0,1]")
	}
	if cfg.Selector.SegLength <= 0 {
		return wrapConfig("selector.seg_length must be positive")
	}
	if cfg.Selector.NumDestroy <= 0 || cfg.Selector.NumRepair <= 0 {
		return wrapConfig("selector.num_destroy and selector.num_repair must be positive")
	}
	if cfg.NumIterations < 0 {
		return wrapConfig("num_iterations must be non-negative")
	}
	return nil
}

func wrapConfig(detail string) error {
	return &configError{detail: detail}
}

type configError struct{ detail string }

func (e *configError) Error() string { return "alns: invalid configuration: " + e.detail }
func (e *configError) Unwrap() error { return ErrConfigurationInvalid }

// IterationRecord is one row of the per-iteration statistics log.
type IterationRecord struct {
	Destroy   int
	Repair    int
	Outcome   OutcomeClass
	Objective float64
	Runtime   time.Duration
}

// Statistics is the full record of one Run call.
type Statistics struct {
	Iterations   []IterationRecord
	TotalRuntime time.Duration
}

// OutcomeCounts tabulates, per (destroy,repair) operator pair, a 4-tuple of
// {best,better,accepted,rejected} counts.
func (s Statistics) OutcomeCounts(numDestroy, numRepair int) [][4]int {
	counts := make([][4]int, numDestroy*numRepair)
	for _, it := range s.Iterations {
		counts[it.Destroy*numRepair+it.Repair][it.Outcome]++
	}
	return counts
}
