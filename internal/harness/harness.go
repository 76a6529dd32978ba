package harness

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/roach88/primes/internal/prime"
)

// Run executes every check of a case and returns the result.
//
// The case is validated first; a case that fails validation returns an
// error and no result. Failed expectations do not stop the run: each one is
// recorded in Result.Errors and the remaining checks still execute.
func Run(c *Case) (*Result, error) {
	if err := validateCase(c); err != nil {
		return nil, fmt.Errorf("invalid case: %w", err)
	}

	result := NewResult()
	var seq int64

	for i := range c.Checks {
		check := &c.Checks[i]
		seq++

		input := strconv.FormatInt(check.N, 10)
		if isRangeOp(check.Op) {
			input = fmt.Sprintf("%d..%d", check.From, check.To)
		}

		outcome, err := runCheck(check)
		result.AddTrace(seq, check.Op, input, outcome)
		if err != nil {
			result.AddError(fmt.Sprintf("checks[%d]: %v", i, err))
		}

		slog.Debug("check executed",
			"case", c.Name,
			"seq", seq,
			"op", check.Op,
			"input", input,
			"pass", err == nil,
		)
	}

	return result, nil
}

// runCheck executes one check and compares its outcome with the expectation.
// The outcome is returned even when the comparison fails.
func runCheck(c *Check) (any, error) {
	switch c.Op {
	case OpIsPrime:
		want, err := c.expectBool()
		if err != nil {
			return nil, err
		}
		got := prime.IsPrimeTrial(c.N)
		return got, assertBool(c, want, got)

	case OpSieve:
		want, err := c.expectInts()
		if err != nil {
			return nil, err
		}
		got := widen(prime.Sieve(int(c.N)))
		return got, assertInts(c, want, got)

	case OpFirst:
		want, err := c.expectInts()
		if err != nil {
			return nil, err
		}
		got := widen(prime.GenerateN(int(c.N)))
		return got, assertInts(c, want, got)

	case OpFactors:
		want, err := c.expectInts()
		if err != nil {
			return nil, err
		}
		got := prime.Factors(c.N)
		return got, assertInts(c, want, got)

	case OpTwins:
		want, err := c.expectPairs()
		if err != nil {
			return nil, err
		}
		got := prime.TwinPrimes(int(c.N))
		return got, assertPairs(c, want, got)

	case OpAgree:
		return checkAgreement(c)

	case OpRoundTrip:
		return checkRoundTrip(c)
	}

	return nil, fmt.Errorf("unknown op %q", c.Op)
}

// checkAgreement verifies that both trial-division tests and the sieve
// classify every n in [From, To] identically.
func checkAgreement(c *Check) (RangeSummary, error) {
	summary := RangeSummary{}

	inSieve := make(map[int64]bool)
	for _, p := range prime.Sieve(int(c.To)) {
		inSieve[int64(p)] = true
	}

	for n := c.From; n <= c.To; n++ {
		summary.Checked++
		trial := prime.IsPrime(n)
		optimized := prime.IsPrimeOptimized(n)
		sieved := inSieve[n]

		if trial != optimized || trial != sieved {
			return summary, &AssertionError{
				Op:       c.Op,
				Input:    strconv.FormatInt(n, 10),
				Expected: "IsPrime, IsPrimeOptimized and Sieve agree",
				Actual: fmt.Sprintf("IsPrime=%t IsPrimeOptimized=%t Sieve=%t",
					trial, optimized, sieved),
			}
		}
		if trial {
			summary.Primes++
		}
	}

	return summary, nil
}

// checkRoundTrip verifies that for every n in [From, To] the factors are
// prime, ascending, and multiply back to n.
func checkRoundTrip(c *Check) (RangeSummary, error) {
	summary := RangeSummary{}

	for n := c.From; n <= c.To; n++ {
		summary.Checked++
		factors := prime.Factors(n)
		if len(factors) == 1 {
			summary.Primes++
		}

		product := int64(1)
		for i, f := range factors {
			if !prime.IsPrime(f) {
				return summary, &AssertionError{
					Op:       c.Op,
					Input:    strconv.FormatInt(n, 10),
					Expected: "every factor is prime",
					Actual:   fmt.Sprintf("factor %d of %v is composite", f, factors),
				}
			}
			if i > 0 && factors[i-1] > f {
				return summary, &AssertionError{
					Op:       c.Op,
					Input:    strconv.FormatInt(n, 10),
					Expected: "factors in ascending order",
					Actual:   fmt.Sprint(factors),
				}
			}
			product *= f
		}

		if product != n {
			return summary, &AssertionError{
				Op:       c.Op,
				Input:    strconv.FormatInt(n, 10),
				Expected: fmt.Sprintf("product of factors equals %d", n),
				Actual:   fmt.Sprintf("product of %v is %d", factors, product),
			}
		}
	}

	return summary, nil
}

func widen(values []int) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = int64(v)
	}
	return out
}
