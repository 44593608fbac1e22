package alns

import "math/rand"

// Selector implements the segmented roulette wheel: each destroy/repair
// operator pair carries a weight. Every seg_length iterations — counted
// globally, across all pairs together, not per pair — every pair's weight
// is decayed toward that segment's observed mean score in one synchronized
// update, and the segment counters reset together.
type Selector struct {
	cfg       SelectorConfig
	weights   [][]float64 // [destroy][repair]
	segScore  [][]float64
	segCount  [][]int
	iteration int
}

// NewSelector builds a selector with uniform starting weights.
func NewSelector(cfg SelectorConfig) *Selector {
	s := &Selector{
		cfg:      cfg,
		weights:  make2D(cfg.NumDestroy, cfg.NumRepair, 1),
		segScore: make2D(cfg.NumDestroy, cfg.NumRepair, 0),
		segCount: make2DInt(cfg.NumDestroy, cfg.NumRepair),
	}
	return s
}

func make2D(rows, cols int, fill float64) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = fill
		}
	}
	return out
}

func make2DInt(rows, cols int) [][]int {
	out := make([][]int, rows)
	for i := range out {
		out[i] = make([]int, cols)
	}
	return out
}

// Select draws a (destroy, repair) pair proportionally to current weights.
func (s *Selector) Select(rng *rand.Rand) (int, int) {
	total := 0.0
	for i := range s.weights {
		for j := range s.weights[i] {
			total += s.weights[i][j]
		}
	}
	r := rng.Float64() * total
	for i := range s.weights {
		for j := range s.weights[i] {
			r -= s.weights[i][j]
			if r <= 0 {
				return i, j
			}
		}
	}
	return s.cfg.NumDestroy - 1, s.cfg.NumRepair - 1
}

// Record accrues the score for outcome into the running segment total for
// (destroy, repair) and advances the shared iteration count. Once that
// count reaches seg_length, every pair's weight is updated together — a
// pair never chosen this segment (segCount==0) is left untouched rather
// than divided by zero — and the segment counters all reset at once.
func (s *Selector) Record(destroy, repair int, outcome OutcomeClass) {
	s.segScore[destroy][repair] += s.cfg.Scores[outcome]
	s.segCount[destroy][repair]++
	s.iteration++

	if s.iteration < s.cfg.SegLength {
		return
	}

	const minWeight = 1e-6
	for i := range s.weights {
		for j := range s.weights[i] {
			if s.segCount[i][j] == 0 {
				continue
			}
			mean := s.segScore[i][j] / float64(s.segCount[i][j])
			next := s.cfg.Decay*s.weights[i][j] + (1-s.cfg.Decay)*mean
			if next < minWeight {
				next = minWeight
			}
			s.weights[i][j] = next
			s.segScore[i][j] = 0
			s.segCount[i][j] = 0
		}
	}
	s.iteration = 0
}

// Weights returns a snapshot of the current weight matrix for diagnostics.
func (s *Selector) Weights() [][]float64 {
	out := make([][]float64, len(s.weights))
	for i := range s.weights {
		out[i] = append([]float64(nil), s.weights[i]...)
	}
	return out
}
