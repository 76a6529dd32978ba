package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/primes/internal/prime"
)

// FirstResult is the output of the first command.
type FirstResult struct {
	Count  int   `json:"count"`
	Primes []int `json:"primes"`
}

// NewFirstCommand creates the first command.
func NewFirstCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "first <count>",
		Short: "Generate the first N primes",
		Long: `Generate the first count primes by testing successive integers
starting at 2. There is no cap on count; large values simply take longer.

Example:
  primes first 20`,
		Args:          commandArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFirst(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runFirst(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	count, err := parseBoundArg("count", arg)
	if err != nil {
		return commandError(formatter, ErrCodeInvalidArgument, err)
	}

	result := FirstResult{Count: count, Primes: prime.GenerateN(count)}
	slog.Debug("primes generated", "count", count)

	if formatter.IsJSON() {
		return formatter.Success(result)
	}
	writePrimes(formatter.Writer, result.Primes)
	return nil
}
