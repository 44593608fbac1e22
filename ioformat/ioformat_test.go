package ioformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evrptw/core"
	"github.com/katalvlaran/evrptw/ioformat"
)

const sampleInstance = `header
D d 0 0 0 0 1000 0
c1 c 10 0 1 0 1000 0
s1 f 5 0 0 0 0 0

/E/ 100
/Q/ 10
/r/ 1
/g/ 1
`

func TestReadInstance_ParsesNodesAndParameters(t *testing.T) {
	inst, err := ioformat.ReadInstance(strings.NewReader(sampleInstance))
	require.NoError(t, err)

	assert.Equal(t, 3, inst.NumNodes())
	assert.Equal(t, 0, inst.DepotIndex)
	assert.True(t, inst.IsCustomer(1))
	assert.True(t, inst.IsStation(2))
}

func TestReadInstance_RejectsMissingParameter(t *testing.T) {
	broken := `header
D d 0 0 0 0 1000 0

/E/ 100
/Q/ 10
/r/ 1
`
	_, err := ioformat.ReadInstance(strings.NewReader(broken))
	assert.ErrorIs(t, err, ioformat.ErrMalformedInstance)
}

func TestReadInstance_RejectsBadNodeLine(t *testing.T) {
	broken := `header
D d 0 0 0 1000 0

/E/ 100
/Q/ 10
/r/ 1
/g/ 1
`
	_, err := ioformat.ReadInstance(strings.NewReader(broken))
	assert.ErrorIs(t, err, ioformat.ErrMalformedInstance)
}

func TestWriteSolution_RoundTripsIDsAndDistance(t *testing.T) {
	inst, err := ioformat.ReadInstance(strings.NewReader(sampleInstance))
	require.NoError(t, err)

	sol := core.NewSolution(inst, []core.Route{{0, 1, 2, 0}})

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteSolution(&buf, inst, sol))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "20", lines[0])
	assert.Equal(t, "D,c1,s1,D", lines[1])
}
