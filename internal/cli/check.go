package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/primes/internal/prime"
)

// CheckResult is the outcome of one primality test.
type CheckResult struct {
	N     int64 `json:"n"`
	Prime bool  `json:"prime"`
}

// Factorization is the prime factorization of one number.
type Factorization struct {
	N       int64   `json:"n"`
	Factors []int64 `json:"factors"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <n>...",
		Short: "Test numbers for primality",
		Long: `Test each argument for primality using trial division by 6k±1
candidates. Arguments are 64-bit integers, so values whose square exceeds
the 32-bit range are handled without overflow.

Example:
  primes check 97 100 982451653
  primes check 2147483647 --format json`,
		Args:          commandArgs(cobra.MinimumNArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runCheck(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	values, err := parseIntArgs("number", args)
	if err != nil {
		return commandError(formatter, ErrCodeInvalidArgument, err)
	}

	results := make([]CheckResult, 0, len(values))
	for _, n := range values {
		results = append(results, CheckResult{N: n, Prime: prime.IsPrimeTrial(n)})
	}
	slog.Debug("primality checked", "count", len(results))

	if formatter.IsJSON() {
		return formatter.Success(results)
	}
	for _, r := range results {
		fmt.Fprintf(formatter.Writer, "%d is %s\n", r.N, verdict(r.Prime))
	}
	return nil
}

// NewFactorCommand creates the factor command.
func NewFactorCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factor <n>...",
		Short: "Print prime factorizations",
		Long: `Print the prime factorization of each argument in ascending order,
with multiplicity. Numbers <= 1 have no prime factors.

Example:
  primes factor 12 60 1001
  primes factor 600851475143 --format json`,
		Args:          commandArgs(cobra.MinimumNArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFactor(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runFactor(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	values, err := parseIntArgs("number", args)
	if err != nil {
		return commandError(formatter, ErrCodeInvalidArgument, err)
	}

	results := make([]Factorization, 0, len(values))
	for _, n := range values {
		results = append(results, Factorization{N: n, Factors: prime.Factors(n)})
	}
	slog.Debug("factorized", "count", len(results))

	if formatter.IsJSON() {
		return formatter.Success(results)
	}
	for _, r := range results {
		writeFactors(formatter.Writer, r.N, r.Factors)
	}
	return nil
}

// commandError reports err through the formatter when emitting JSON, so
// scripted callers always receive an envelope, and returns err unchanged.
func commandError(f *OutputFormatter, code string, err error) error {
	if f.IsJSON() {
		_ = f.Error(code, err.Error(), nil)
	}
	return err
}
