package alns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Weight updates must be synchronized on a single global iteration count,
// not triggered independently per (destroy,repair) pair: a pair recorded
// only once in a segment must still update (with "safe zero handling" for
// pairs never recorded at all) exactly when the shared counter rolls over.
func TestSelector_UpdatesAllPairsTogetherOnSharedSegment(t *testing.T) {
	cfg := SelectorConfig{
		Scores:     [4]float64{33, 9, 13, 0},
		Decay:      0.5,
		SegLength:  3,
		NumDestroy: 2,
		NumRepair:  2,
	}
	sel := NewSelector(cfg)

	before := sel.Weights()

	// Record two outcomes for pair (0,0) and one for pair (1,1); pair (0,1)
	// and (1,0) are never recorded this segment.
	sel.Record(0, 0, Best)
	sel.Record(0, 0, Better)
	sel.Record(1, 1, Accepted)

	after := sel.Weights()

	// (0,0) was recorded twice with mean (33+9)/2=21: weight should move.
	assert.NotEqual(t, before[0][0], after[0][0])
	// (1,1) was recorded once with mean 13: weight should move too.
	assert.NotEqual(t, before[1][1], after[1][1])
	// Untouched pairs must be left exactly alone (safe zero handling).
	assert.Equal(t, before[0][1], after[0][1])
	assert.Equal(t, before[1][0], after[1][0])
}

func TestSelector_DoesNotUpdateBeforeSegmentCompletes(t *testing.T) {
	cfg := SelectorConfig{
		Scores:     [4]float64{33, 9, 13, 0},
		Decay:      0.5,
		SegLength:  5,
		NumDestroy: 2,
		NumRepair:  2,
	}
	sel := NewSelector(cfg)
	before := sel.Weights()

	sel.Record(0, 0, Best)
	sel.Record(0, 0, Best)

	after := sel.Weights()
	assert.Equal(t, before, after)
}
