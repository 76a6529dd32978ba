package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCase_Fixtures(t *testing.T) {
	for _, name := range []string{"basics", "properties"} {
		t.Run(name, func(t *testing.T) {
			c, err := LoadCase(filepath.Join("testdata", "cases", name+".yaml"))
			require.NoError(t, err)
			assert.Equal(t, name, c.Name)
			assert.NotEmpty(t, c.Checks)
		})
	}
}

func TestRun_PropertiesCasePasses(t *testing.T) {
	c, err := LoadCase(filepath.Join("testdata", "cases", "properties.yaml"))
	require.NoError(t, err)

	result, err := Run(c)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.Len(t, result.Trace, len(c.Checks))

	for i, event := range result.Trace {
		assert.Equal(t, int64(i+1), event.Seq)
	}
}

func TestRunWithGolden_Basics(t *testing.T) {
	c, err := LoadCase(filepath.Join("testdata", "cases", "basics.yaml"))
	require.NoError(t, err)

	result, err := RunWithGolden(t, c)
	require.NoError(t, err)
	assert.True(t, result.Pass)
}

func TestRun_FailedExpectationIsRecorded(t *testing.T) {
	src := `
name: wrong
description: deliberately wrong expectations
checks:
  - op: factors
    n: 12
    expect: [2, 6]
  - op: is_prime
    n: 91
    expect: true
  - op: first
    n: 3
    expect: [2, 3, 5]
`
	c, err := ParseCase([]byte(src))
	require.NoError(t, err)

	result, err := Run(c)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "checks[0]")
	assert.Contains(t, result.Errors[0], "Expected: [2 6]")
	assert.Contains(t, result.Errors[0], "Actual: [2 2 3]")
	assert.Contains(t, result.Errors[1], "checks[1]")

	// Execution continues past failures.
	require.Len(t, result.Trace, 3)
	assert.Equal(t, []int64{2, 3, 5}, result.Trace[2].Outcome)
}

func TestRun_InvalidCaseReturnsError(t *testing.T) {
	_, err := Run(&Case{Name: "empty", Description: "no checks"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checks list is required")
}

func TestParseCase_Validation(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "unknown top-level field",
			src:     "name: a\ndescription: b\nchecks: [{op: agree, from: 2, to: 3}]\nextra: 1\n",
			wantErr: "field extra not found",
		},
		{
			name:    "unknown check field",
			src:     "name: a\ndescription: b\nchecks: [{op: agree, from: 2, to: 3, limit: 4}]\n",
			wantErr: "field limit not found",
		},
		{
			name:    "missing name",
			src:     "description: b\nchecks: [{op: agree, from: 2, to: 3}]\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			src:     "name: a\nchecks: [{op: agree, from: 2, to: 3}]\n",
			wantErr: "description is required",
		},
		{
			name:    "missing op",
			src:     "name: a\ndescription: b\nchecks: [{n: 3}]\n",
			wantErr: "op is required",
		},
		{
			name:    "unknown op",
			src:     "name: a\ndescription: b\nchecks: [{op: nth, n: 3}]\n",
			wantErr: `unknown op "nth"`,
		},
		{
			name:    "missing expect",
			src:     "name: a\ndescription: b\nchecks: [{op: factors, n: 12}]\n",
			wantErr: "expect is required for factors",
		},
		{
			name:    "wrong expect shape",
			src:     "name: a\ndescription: b\nchecks: [{op: is_prime, n: 7, expect: [7]}]\n",
			wantErr: "expect must be a bool",
		},
		{
			name:    "pair with three members",
			src:     "name: a\ndescription: b\nchecks: [{op: twins, n: 10, expect: [[3, 5, 7]]}]\n",
			wantErr: "exactly two members",
		},
		{
			name:    "reversed range",
			src:     "name: a\ndescription: b\nchecks: [{op: agree, from: 10, to: 2}]\n",
			wantErr: "must not exceed",
		},
		{
			name:    "roundtrip below two",
			src:     "name: a\ndescription: b\nchecks: [{op: roundtrip, from: 1, to: 2}]\n",
			wantErr: "at least 2",
		},
		{
			name:    "range op with expect",
			src:     "name: a\ndescription: b\nchecks: [{op: agree, from: 2, to: 3, expect: true}]\n",
			wantErr: "takes no expect",
		},
		{
			name:    "agree up to max int64",
			src:     "name: a\ndescription: b\nchecks: [{op: agree, from: 9223372036854775800, to: 9223372036854775807}]\n",
			wantErr: "to must be less than 9223372036854775807",
		},
		{
			name:    "roundtrip up to max int64",
			src:     "name: a\ndescription: b\nchecks: [{op: roundtrip, from: 9223372036854775806, to: 9223372036854775807}]\n",
			wantErr: "to must be less than 9223372036854775807",
		},
		{
			name:    "negative sieve bound",
			src:     "name: a\ndescription: b\nchecks: [{op: sieve, n: -1, expect: []}]\n",
			wantErr: "n must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCase([]byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadCase_MissingFile(t *testing.T) {
	_, err := LoadCase(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read case file")
}

func TestLoadCase_FromTempDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twins.yaml")
	src := "name: twins\ndescription: small twins\nchecks:\n  - op: twins\n    n: 5\n    expect: [[3, 5]]\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	c, err := LoadCase(path)
	require.NoError(t, err)

	result, err := Run(c)
	require.NoError(t, err)
	assert.True(t, result.Pass)
}
