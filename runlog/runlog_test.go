package runlog_test

import (
	"bufio"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evrptw/runlog"
)

func TestAppend_WritesOneJSONLinePerCall(t *testing.T) {
	path := t.TempDir() + "/runs.jsonl"

	require.NoError(t, runlog.Append(path, runlog.Record{RunID: "a", BestDistance: 10}))
	require.NoError(t, runlog.Append(path, runlog.Record{RunID: "b", BestDistance: 20}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var records []runlog.Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec runlog.Record
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}

	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].RunID)
	assert.Equal(t, "b", records[1].RunID)
}
