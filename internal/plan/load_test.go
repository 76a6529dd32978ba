package plan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, []int64{2, 17, 25, 97, 100, 101, 997}, p.Check)
	assert.Equal(t, 100, p.SieveLimit)
	assert.Equal(t, 20, p.FirstCount)
	assert.Equal(t, []int64{12, 60, 100, 315, 1001}, p.Factorize)
	assert.Equal(t, int64(982451653), p.Benchmark)
	assert.Equal(t, 50, p.TwinLimit)
}

func TestDefault_ReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Check[0] = 4
	a.SieveLimit = 1

	b := Default()
	assert.Equal(t, int64(2), b.Check[0])
	assert.Equal(t, 100, b.SieveLimit)
}

func TestParse_EmptyFileKeepsDefaults(t *testing.T) {
	p, err := Parse("empty.cue", []byte(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestParse_Overrides(t *testing.T) {
	src := `
check:       [7, 8, 9]
sieve_limit: 30
twin_limit:  0
`
	p, err := Parse("plan.cue", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, []int64{7, 8, 9}, p.Check)
	assert.Equal(t, 30, p.SieveLimit)
	assert.Equal(t, 0, p.TwinLimit, "explicit zero overrides the default")
	assert.Equal(t, 20, p.FirstCount, "unset field keeps default")
	assert.Equal(t, []int64{12, 60, 100, 315, 1001}, p.Factorize)
	assert.Equal(t, int64(982451653), p.Benchmark)
}

func TestParse_CUEExpressions(t *testing.T) {
	src := `
first_count: 5 * 2
benchmark:   2147483647
factorize:   [for n in [2, 3, 4] {n * 10}]
`
	p, err := Parse("plan.cue", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, 10, p.FirstCount)
	assert.Equal(t, int64(2147483647), p.Benchmark)
	assert.Equal(t, []int64{20, 30, 40}, p.Factorize)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code string
	}{
		{"syntax error", "check: [1, 2", ErrCodeParse},
		{"negative sieve limit", "sieve_limit: -1", ErrCodeSchema},
		{"negative first count", "first_count: -20", ErrCodeSchema},
		{"unknown field", "sieve_limt: 10", ErrCodeSchema},
		{"wrong type", `check: ["seven"]`, ErrCodeSchema},
		{"not concrete", "sieve_limit: int", ErrCodeSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("plan.cue", []byte(tt.src))
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "expected *LoadError, got %T", err)
			assert.Equal(t, tt.code, loadErr.Code)
			assert.Contains(t, err.Error(), tt.code)
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.cue")
	require.NoError(t, os.WriteFile(path, []byte("first_count: 3\n"), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, p.FirstCount)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.cue"))
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
	assert.Contains(t, err.Error(), "plan file not found")
}

func TestLoadError_Format(t *testing.T) {
	err := &LoadError{Code: ErrCodeSchema, Message: "bad value"}
	assert.Equal(t, "E103: bad value", err.Error())
}
