package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Record is one run's summary, persisted as a single JSON line.
type Record struct {
	RunID        string        `json:"run_id"`
	Instance     string        `json:"instance"`
	ConfigDigest string        `json:"config_digest"`
	BestDistance float64       `json:"best_distance"`
	Iterations   int           `json:"iterations"`
	Elapsed      time.Duration `json:"elapsed_ns"`
	Outcome      string        `json:"outcome"`
}

// Append encodes rec as one JSON line and appends it to path, creating the
// file if it does not yet exist.
func Append(path string, rec Record) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("runlog: opening %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("runlog: encoding record: %w", err)
	}
	return nil
}
