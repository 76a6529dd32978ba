package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/primes/internal/plan"
	"github.com/roach88/primes/internal/prime"
	"github.com/roach88/primes/internal/timing"
)

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	*RootOptions
	PlanPath      string
	NoInteractive bool
}

// BenchmarkResult is the timed 64-bit primality test of the demo.
type BenchmarkResult struct {
	N             int64 `json:"n"`
	Prime         bool  `json:"prime"`
	ElapsedMicros int64 `json:"elapsed_us"`
}

// DemoReport collects the results of every demo section.
type DemoReport struct {
	Checks         []CheckResult   `json:"checks"`
	Sieve          SieveResult     `json:"sieve"`
	First          FirstResult     `json:"first"`
	Factorizations []Factorization `json:"factorizations"`
	Benchmark      BenchmarkResult `json:"benchmark"`
	Twins          TwinsResult     `json:"twins"`
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DemoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through every algorithm",
		Long: `Walk through every algorithm with example inputs: primality checks,
the Sieve of Eratosthenes, the first N primes, factorizations, a timed
64-bit primality test and twin primes, followed by an interactive prompt.

The example inputs come from a CUE plan file when --plan is given:

  check:       [2, 17, 25, 97, 100, 101, 997]
  sieve_limit: 100
  first_count: 20
  factorize:   [12, 60, 100, 315, 1001]
  benchmark:   982451653
  twin_limit:  50

With --format json the report is printed as JSON and the interactive
prompt is skipped.

Example:
  primes demo
  primes demo --plan ./plan.cue --no-interactive`,
		Args:          commandArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, cmd)
		},
	}

	addDemoFlags(cmd, opts)

	return cmd
}

func addDemoFlags(cmd *cobra.Command, opts *DemoOptions) {
	cmd.Flags().StringVar(&opts.PlanPath, "plan", "", "path to a CUE demo plan")
	cmd.Flags().BoolVar(&opts.NoInteractive, "no-interactive", false, "skip the interactive prompt")
}

func runDemo(opts *DemoOptions, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	p := plan.Default()
	if opts.PlanPath != "" {
		loaded, err := plan.Load(opts.PlanPath)
		if err != nil {
			return commandError(formatter, ErrCodePlanLoad,
				WrapExitError(ExitCommandError, "failed to load plan", err))
		}
		p = loaded
		slog.Debug("plan loaded", "path", opts.PlanPath)
	}

	report := buildDemoReport(opts.RootOptions, p)

	if formatter.IsJSON() {
		return formatter.Success(report)
	}

	out := formatter.Writer
	writeDemo(out, report)

	if !opts.NoInteractive {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "6️⃣ Interactive Prime Checker:")
		RunInteractive(commandContext(cmd), cmd.InOrStdin(), out)
	}
	writeFacts(out)
	return nil
}

// buildDemoReport computes every section. Sections that report time are
// measured with the configured clock, in section order.
func buildDemoReport(opts *RootOptions, p *plan.Plan) *DemoReport {
	report := &DemoReport{
		Checks:         make([]CheckResult, 0, len(p.Check)),
		Factorizations: make([]Factorization, 0, len(p.Factorize)),
	}

	for _, n := range p.Check {
		report.Checks = append(report.Checks, CheckResult{N: n, Prime: prime.IsPrime(n)})
	}

	report.Sieve = sieveTimed(opts, p.SieveLimit)

	report.First = FirstResult{Count: p.FirstCount, Primes: prime.GenerateN(p.FirstCount)}

	for _, n := range p.Factorize {
		report.Factorizations = append(report.Factorizations, Factorization{N: n, Factors: prime.Factors(n)})
	}

	var isPrime bool
	elapsed := timing.Measure(opts.clock(), func() {
		isPrime = prime.IsPrimeTrial(p.Benchmark)
	})
	report.Benchmark = BenchmarkResult{
		N:             p.Benchmark,
		Prime:         isPrime,
		ElapsedMicros: timing.Micros(elapsed),
	}
	slog.Debug("benchmark complete", "n", p.Benchmark, "elapsed_us", report.Benchmark.ElapsedMicros)

	report.Twins = TwinsResult{Limit: p.TwinLimit, Pairs: prime.TwinPrimes(p.TwinLimit)}

	return report
}

func writeDemo(w io.Writer, r *DemoReport) {
	fmt.Fprintln(w, "🔢 PRIME NUMBERS - Comprehensive Demo")
	fmt.Fprintln(w, "=============================================")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "1️⃣ Prime Check Demo:")
	for _, c := range r.Checks {
		fmt.Fprintf(w, "%d is %s\n", c.N, verdict(c.Prime))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "2️⃣ Sieve of Eratosthenes - Primes up to %d:\n", r.Sieve.Limit)
	writeSieve(w, r.Sieve)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "3️⃣ First %d Prime Numbers:\n", r.First.Count)
	writePrimes(w, r.First.Primes)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "4️⃣ Prime Factorization Demo:")
	for _, f := range r.Factorizations {
		writeFactors(w, f.N, f.Factors)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "5️⃣ Performance Comparison:")
	fmt.Fprintf(w, "Testing primality of %s...\n", groupDigits(r.Benchmark.N))
	fmt.Fprintf(w, "Result: %d is %s\n", r.Benchmark.N, verdict(r.Benchmark.Prime))
	writeElapsed(w, "Time taken:", r.Benchmark.ElapsedMicros)

	fmt.Fprintln(w)
	writeTwins(w, r.Twins)
}
