package harness

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/primes/internal/prime"
)

// AssertionError is returned when a check's outcome does not match its
// expectation.
type AssertionError struct {
	Op       string // check operation
	Input    string // the n (or range) the check ran on
	Expected string // human-readable expected outcome
	Actual   string // human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "assertion failed: %s(%s)\n", e.Op, e.Input)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// IsAssertionError reports whether err is, or wraps, an AssertionError.
func IsAssertionError(err error) bool {
	var ae *AssertionError
	return errors.As(err, &ae)
}

func assertBool(c *Check, want, got bool) error {
	if want == got {
		return nil
	}
	return &AssertionError{
		Op:       c.Op,
		Input:    strconv.FormatInt(c.N, 10),
		Expected: strconv.FormatBool(want),
		Actual:   strconv.FormatBool(got),
	}
}

func assertInts(c *Check, want, got []int64) error {
	if slices.Equal(want, got) {
		return nil
	}
	return &AssertionError{
		Op:       c.Op,
		Input:    strconv.FormatInt(c.N, 10),
		Expected: fmt.Sprint(want),
		Actual:   fmt.Sprint(got),
	}
}

func assertPairs(c *Check, want, got []prime.Pair) error {
	if slices.Equal(want, got) {
		return nil
	}
	return &AssertionError{
		Op:       c.Op,
		Input:    strconv.FormatInt(c.N, 10),
		Expected: formatPairs(want),
		Actual:   formatPairs(got),
	}
}

func formatPairs(pairs []prime.Pair) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("(%d, %d)", p.Low, p.High)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
