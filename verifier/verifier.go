package verifier

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Report is the parsed result of one verifier invocation.
type Report struct {
	Passed     bool
	Violations []string
}

// Run invokes binary with the instance and solution paths as arguments,
// parsing its stdout as a status line ("PASS" or "FAIL") optionally
// followed by one "violation: ..." line per constraint breach.
func Run(ctx context.Context, binary, instancePath, solutionPath string) (Report, error) {
	cmd := exec.CommandContext(ctx, binary, instancePath, solutionPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	report, parseErr := parseReport(stdout.String())
	if parseErr != nil {
		return Report{}, errors.Wrapf(parseErr, "verifier: parsing output of %s", binary)
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			// A non-zero exit is how a real verifier signals FAIL; trust the
			// parsed report over the exit code only if it actually parsed one.
			if report.Passed {
				return report, errors.Wrapf(runErr, "verifier: %s exited non-zero but reported PASS", binary)
			}
			return report, nil
		}
		return Report{}, errors.Wrapf(runErr, "verifier: running %s (stderr: %s)", binary, stderr.String())
	}

	return report, nil
}

func parseReport(output string) (Report, error) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	var report Report
	sawStatus := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch {
		case !sawStatus && line == "PASS":
			report.Passed = true
			sawStatus = true
		case !sawStatus && line == "FAIL":
			report.Passed = false
			sawStatus = true
		case strings.HasPrefix(line, "violation:"):
			report.Violations = append(report.Violations, strings.TrimSpace(strings.TrimPrefix(line, "violation:")))
		}
	}
	if !sawStatus {
		return Report{}, errors.New("verifier: output missing PASS/FAIL status line")
	}
	return report, scanner.Err()
}
