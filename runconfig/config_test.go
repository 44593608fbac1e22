package runconfig_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evrptw/runconfig"
)

const sampleJSON = `{
  "seed": 42,
  "num_iterations": 500,
  "xi": 0.3,
  "p": 8,
  "simulated_annealing": {
    "start_temperature": 900,
    "end_temperature": 2,
    "step": 0.002,
    "method": "exponential"
  },
  "selector": {
    "scores": [33, 9, 13, 0],
    "decay": 0.7,
    "seg_length": 50,
    "num_destroy": 4,
    "num_repair": 2
  },
  "wait_time_weight": 0.6
}`

func TestLoad_AppliesDefaultsForAbsentKeys(t *testing.T) {
	cfg, err := runconfigDecodeForTest(t, `{"seed": 1}`)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.NumIterations)
	assert.InDelta(t, 0.2, cfg.Xi, 1e-9)
	assert.InDelta(t, 0.5, cfg.WaitTimeWeight, 1e-9)
}

func TestLoad_ParsesFullDocument(t *testing.T) {
	cfg, err := runconfigDecodeForTest(t, sampleJSON)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 500, cfg.NumIterations)

	alnsCfg := cfg.ToALNSConfig()
	assert.Equal(t, 4, alnsCfg.Selector.NumDestroy)
	assert.InDelta(t, 0.3, alnsCfg.Xi, 1e-9)
}

func TestLoad_RejectsUnknownMethod(t *testing.T) {
	_, err := runconfigDecodeForTest(t, `{"simulated_annealing": {"method": "linear"}}`)
	assert.ErrorIs(t, err, runconfig.ErrConfigurationInvalid)
}

func TestLoad_RejectsOutOfRangeXi(t *testing.T) {
	_, err := runconfigDecodeForTest(t, `{"xi": 2}`)
	assert.ErrorIs(t, err, runconfig.ErrConfigurationInvalid)
}

// runconfigDecodeForTest writes body to a temp file and loads it, exercising
// the same path runconfig.Load uses in production.
func runconfigDecodeForTest(t *testing.T, body string) (runconfig.Config, error) {
	t.Helper()
	path := t.TempDir() + "/config.json"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return runconfig.Load(path)
}
