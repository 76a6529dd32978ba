package harness

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/primes/internal/prime"
)

// Case defines a verification case.
type Case struct {
	// Name uniquely identifies this case. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this case validates.
	Description string `yaml:"description"`

	// Checks are executed in order.
	Checks []Check `yaml:"checks"`
}

// Check is a single operation with its expectation.
type Check struct {
	// Op selects the operation; see the Op constants.
	Op string `yaml:"op"`

	// N is the argument of point checks.
	N int64 `yaml:"n,omitempty"`

	// From and To bound range checks (inclusive).
	From int64 `yaml:"from,omitempty"`
	To   int64 `yaml:"to,omitempty"`

	// Expect holds the expected outcome. Its shape depends on Op, so it is
	// kept as a raw node and decoded once Op is known.
	Expect yaml.Node `yaml:"expect,omitempty"`
}

// Check operations.
const (
	OpIsPrime   = "is_prime"
	OpSieve     = "sieve"
	OpFirst     = "first"
	OpFactors   = "factors"
	OpTwins     = "twins"
	OpAgree     = "agree"
	OpRoundTrip = "roundtrip"
)

// isRangeOp reports whether op works on [From, To] rather than N.
func isRangeOp(op string) bool {
	return op == OpAgree || op == OpRoundTrip
}

// LoadCase reads and parses a case YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}
	return ParseCase(data)
}

// ParseCase parses and validates case YAML.
func ParseCase(data []byte) (*Case, error) {
	// Parse YAML with strict field validation (catches typos like "check:" vs "checks:")
	var c Case
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateCase(&c); err != nil {
		return nil, fmt.Errorf("invalid case: %w", err)
	}

	return &c, nil
}

// validateCase checks that required fields are present and that every
// expectation decodes into the shape its op requires.
func validateCase(c *Case) error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}

	if c.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(c.Checks) == 0 {
		return fmt.Errorf("checks list is required and must be non-empty")
	}

	for i := range c.Checks {
		if err := validateCheck(i, &c.Checks[i]); err != nil {
			return err
		}
	}

	return nil
}

// validateCheck validates a single check based on its op.
func validateCheck(index int, c *Check) error {
	if c.Op == "" {
		return fmt.Errorf("checks[%d]: op is required", index)
	}

	switch c.Op {
	case OpIsPrime:
		if _, err := c.expectBool(); err != nil {
			return fmt.Errorf("checks[%d]: %w", index, err)
		}
	case OpSieve, OpFirst, OpFactors:
		if c.Op != OpFactors && c.N < 0 {
			return fmt.Errorf("checks[%d]: n must be non-negative for %s", index, c.Op)
		}
		if _, err := c.expectInts(); err != nil {
			return fmt.Errorf("checks[%d]: %w", index, err)
		}
	case OpTwins:
		if c.N < 0 {
			return fmt.Errorf("checks[%d]: n must be non-negative for twins", index)
		}
		if _, err := c.expectPairs(); err != nil {
			return fmt.Errorf("checks[%d]: %w", index, err)
		}
	case OpAgree, OpRoundTrip:
		if c.From > c.To {
			return fmt.Errorf("checks[%d]: from (%d) must not exceed to (%d)", index, c.From, c.To)
		}
		if c.To == math.MaxInt64 {
			return fmt.Errorf("checks[%d]: to must be less than %d", index, int64(math.MaxInt64))
		}
		if c.Op == OpRoundTrip && c.From < 2 {
			return fmt.Errorf("checks[%d]: from must be at least 2 for roundtrip", index)
		}
		if c.Expect.Kind != 0 {
			return fmt.Errorf("checks[%d]: %s takes no expect", index, c.Op)
		}
	default:
		return fmt.Errorf("checks[%d]: unknown op %q", index, c.Op)
	}

	return nil
}

func (c *Check) expectBool() (bool, error) {
	if c.Expect.Kind == 0 {
		return false, fmt.Errorf("expect is required for %s", c.Op)
	}
	var v bool
	if err := c.Expect.Decode(&v); err != nil {
		return false, fmt.Errorf("expect must be a bool for %s: %w", c.Op, err)
	}
	return v, nil
}

func (c *Check) expectInts() ([]int64, error) {
	if c.Expect.Kind == 0 {
		return nil, fmt.Errorf("expect is required for %s", c.Op)
	}
	v := []int64{}
	if err := c.Expect.Decode(&v); err != nil {
		return nil, fmt.Errorf("expect must be a list of integers for %s: %w", c.Op, err)
	}
	return v, nil
}

func (c *Check) expectPairs() ([]prime.Pair, error) {
	if c.Expect.Kind == 0 {
		return nil, fmt.Errorf("expect is required for %s", c.Op)
	}
	var raw [][]int
	if err := c.Expect.Decode(&raw); err != nil {
		return nil, fmt.Errorf("expect must be a list of [low, high] pairs for %s: %w", c.Op, err)
	}
	pairs := make([]prime.Pair, 0, len(raw))
	for i, p := range raw {
		if len(p) != 2 {
			return nil, fmt.Errorf("expect[%d] must have exactly two members, got %d", i, len(p))
		}
		pairs = append(pairs, prime.Pair{Low: p[0], High: p[1]})
	}
	return pairs, nil
}
