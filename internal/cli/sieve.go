package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/primes/internal/prime"
	"github.com/roach88/primes/internal/timing"
)

// SieveResult is the output of the sieve command.
type SieveResult struct {
	Limit         int   `json:"limit"`
	Primes        []int `json:"primes"`
	Count         int   `json:"count"`
	ElapsedMicros int64 `json:"elapsed_us"`
}

// NewSieveCommand creates the sieve command.
func NewSieveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sieve <limit>",
		Short: "List all primes up to a limit",
		Long: `List every prime <= limit using the Sieve of Eratosthenes, with the
count and the time taken in microseconds.

The sieve allocates limit+1 flags; there is no cap on limit.

Example:
  primes sieve 100
  primes sieve 1000000 --format json`,
		Args:          commandArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSieve(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runSieve(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	limit, err := parseBoundArg("limit", arg)
	if err != nil {
		return commandError(formatter, ErrCodeInvalidArgument, err)
	}

	result := sieveTimed(opts, limit)

	if formatter.IsJSON() {
		return formatter.Success(result)
	}
	writeSieve(formatter.Writer, result)
	return nil
}

// sieveTimed runs the sieve under the configured clock.
func sieveTimed(opts *RootOptions, limit int) SieveResult {
	var primes []int
	elapsed := timing.Measure(opts.clock(), func() {
		primes = prime.Sieve(limit)
	})

	result := SieveResult{
		Limit:         limit,
		Primes:        primes,
		Count:         len(primes),
		ElapsedMicros: timing.Micros(elapsed),
	}
	slog.Debug("sieve complete", "limit", limit, "count", result.Count, "elapsed_us", result.ElapsedMicros)
	return result
}

func writeSieve(w io.Writer, r SieveResult) {
	writePrimes(w, r.Primes)
	fmt.Fprintf(w, "📊 Total: %d primes\n", r.Count)
	writeElapsed(w, "⏱️  Time:", r.ElapsedMicros)
}
