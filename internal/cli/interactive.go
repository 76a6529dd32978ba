package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/primes/internal/prime"
)

const (
	firstPrompt = "Enter a number to check if it's prime (0 to exit): "
	nextPrompt  = "\nEnter another number (0 to exit): "
)

// NewInteractiveCommand creates the interactive command.
func NewInteractiveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Check numbers typed on standard input",
		Long: `Read whitespace-separated integers from standard input and report
whether each is prime, with the factorization of composites.

Entering 0, reaching end of input or typing something that is not an
integer ends the session.

Example:
  primes interactive
  echo "7 12 0" | primes interactive`,
		Args:          commandArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractiveCommand(rootOpts, cmd)
		},
	}
	return cmd
}

func runInteractiveCommand(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)
	if formatter.IsJSON() {
		return commandError(formatter, ErrCodeUnsupported,
			NewExitError(ExitCommandError, "interactive mode supports text output only"))
	}

	out := cmd.OutOrStdout()
	RunInteractive(commandContext(cmd), cmd.InOrStdin(), out)
	writeFacts(out)
	return nil
}

// RunInteractive reads integers from in until 0, end of input or a token
// that is not an integer, answering each on out. A token with a numeric
// prefix such as "12abc" is answered for 12 and then ends the session. It
// returns how many numbers were answered. Bad input ends the session quietly;
// it is never an error.
func RunInteractive(ctx context.Context, in io.Reader, out io.Writer) int {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	fmt.Fprint(out, firstPrompt)

	answered := 0
	for ctx.Err() == nil && scanner.Scan() {
		token := scanner.Text()
		n, rest, err := leadingInt(token)
		if err != nil {
			slog.Debug("interactive session ended", "reason", "not an integer", "token", token)
			break
		}
		if n == 0 {
			break
		}

		answer(out, n)
		answered++
		fmt.Fprint(out, nextPrompt)

		if rest != "" {
			slog.Debug("interactive session ended", "reason", "not an integer", "token", rest)
			break
		}
	}

	slog.Debug("interactive session closed", "answered", answered)
	return answered
}

// leadingInt parses the optionally signed decimal prefix of token and returns
// the unparsed remainder: "12abc" yields 12 and "abc".
func leadingInt(token string) (int64, string, error) {
	end := 0
	if end < len(token) && (token[end] == '-' || token[end] == '+') {
		end++
	}
	digits := end
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, token, fmt.Errorf("no digits in %q", token)
	}
	n, err := strconv.ParseInt(token[:end], 10, 64)
	if err != nil {
		return 0, token, err
	}
	return n, token[end:], nil
}

func answer(out io.Writer, n int64) {
	if n < 0 {
		fmt.Fprintln(out, "Please enter a positive number.")
		return
	}

	isPrime := prime.IsPrime(n)
	if isPrime {
		fmt.Fprintf(out, "%d is PRIME ✅\n", n)
	} else {
		fmt.Fprintf(out, "%d is NOT PRIME ❌\n", n)
	}

	if !isPrime && n > 1 {
		writeFactors(out, n, prime.Factors(n))
	}
}

func writeFacts(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "🎯 Prime Number Facts:")
	fmt.Fprintln(out, "• There are infinitely many prime numbers (Euclid's theorem)")
	fmt.Fprintln(out, "• 2 is the only even prime number")
	fmt.Fprintln(out, "• All primes > 3 are of the form 6k±1")
	fmt.Fprintln(out, "• The largest known prime has over 24 million digits!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Thank you for exploring prime numbers! 🚀")
}

// commandContext returns the command's context, or Background when the
// command is executed without one (as in tests calling Execute directly).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
