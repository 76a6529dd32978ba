package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/primes/internal/timing"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Clock allows overriding the clock used for timing output (for testing).
	// If nil, defaults to timing.SystemClock.
	Clock timing.Clock

	// TraceIDs allows overriding the trace ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	TraceIDs TraceIDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the primes CLI.
//
// Invoked without a subcommand it runs the demo walkthrough.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	demoOpts := &DemoOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   "primes",
		Short: "primes - primality testing and factorization",
		Long: `Educational demonstrations of classic prime number algorithms:
trial division, the 6k±1 optimization, the Sieve of Eratosthenes,
sequential prime generation, twin primes and prime factorization.

Run without a subcommand to walk through the full demo.`,
		Args:          commandArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			configureLogging(opts, cmd)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(demoOpts, cmd)
		},
	}

	// Usage errors from cobra itself exit like any other command error.
	cmd.SetFlagErrorFunc(flagError)

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Demo flags are mirrored on the root so that `primes --plan x.cue` works.
	addDemoFlags(cmd, demoOpts)

	// Add subcommands
	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewSieveCommand(opts))
	cmd.AddCommand(NewFirstCommand(opts))
	cmd.AddCommand(NewFactorCommand(opts))
	cmd.AddCommand(NewTwinsCommand(opts))
	cmd.AddCommand(NewInteractiveCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// configureLogging installs the default slog logger. Logs go to the
// command's stderr so they never interleave with results on stdout.
func configureLogging(opts *RootOptions, cmd *cobra.Command) {
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// clock returns the configured clock or the system clock.
func (o *RootOptions) clock() timing.Clock {
	if o.Clock == nil {
		return timing.SystemClock{}
	}
	return o.Clock
}

// newFormatter builds the output formatter for one command invocation.
// JSON responses are stamped with a fresh trace ID, which is also logged so
// output can be correlated with diagnostics.
func (o *RootOptions) newFormatter(cmd *cobra.Command) *OutputFormatter {
	f := &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
	if f.IsJSON() {
		gen := o.TraceIDs
		if gen == nil {
			gen = UUIDv7Generator{}
		}
		f.TraceID = gen.Generate()
		slog.Debug("command started", "command", cmd.Name(), "trace_id", f.TraceID)
	}
	return f
}
