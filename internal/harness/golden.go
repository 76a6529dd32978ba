package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TraceSnapshot captures the complete trace of a case execution.
type TraceSnapshot struct {
	CaseName string       `json:"case_name"`
	Pass     bool         `json:"pass"`
	Trace    []TraceEvent `json:"trace"`
}

// MarshalSnapshot renders a result as indented JSON with a trailing newline.
// The output is deterministic: trace order is check order and outcomes
// contain no maps.
func MarshalSnapshot(caseName string, result *Result) ([]byte, error) {
	data, err := json.MarshalIndent(TraceSnapshot{
		CaseName: caseName,
		Pass:     result.Pass,
		Trace:    result.Trace,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// RunWithGolden executes a case and compares the trace against a golden file.
// The golden file is stored in testdata/golden/{case.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the case is invalid.
// Test failure (via goldie) occurs if the trace doesn't match the golden file.
func RunWithGolden(t *testing.T, c *Case) (*Result, error) {
	t.Helper()

	result, err := Run(c)
	if err != nil {
		return nil, err
	}

	if err := AssertGolden(t, c.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against a golden file without
// re-running the case.
func AssertGolden(t *testing.T, caseName string, result *Result) error {
	t.Helper()

	data, err := MarshalSnapshot(caseName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, caseName, data)

	return nil
}
