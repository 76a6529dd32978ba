package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/primes/internal/prime"
)

// TwinsResult is the output of the twins command.
type TwinsResult struct {
	Limit int          `json:"limit"`
	Pairs []prime.Pair `json:"pairs"`
}

// NewTwinsCommand creates the twins command.
func NewTwinsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "twins <limit>",
		Short: "List twin primes up to a limit",
		Long: `List every pair of primes (p, p+2) with p+2 <= limit.

Example:
  primes twins 50`,
		Args:          commandArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTwins(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runTwins(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	limit, err := parseBoundArg("limit", arg)
	if err != nil {
		return commandError(formatter, ErrCodeInvalidArgument, err)
	}

	result := TwinsResult{Limit: limit, Pairs: prime.TwinPrimes(limit)}
	slog.Debug("twin primes found", "limit", limit, "pairs", len(result.Pairs))

	if formatter.IsJSON() {
		return formatter.Success(result)
	}
	writeTwins(formatter.Writer, result)
	return nil
}

func writeTwins(w io.Writer, r TwinsResult) {
	fmt.Fprintf(w, "🔗 Twin Primes up to %d:\n", r.Limit)
	fmt.Fprintln(w, "Twin primes are pairs of primes that differ by 2.")
	writePairs(w, r.Pairs)
}
