package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/primes/internal/harness"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	Update bool   // regenerate golden files
	Filter string // case filter (glob pattern)
}

// CaseResult holds the result of a single case execution.
type CaseResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Code   string   `json:"code,omitempty"` // set when the case file could not be loaded
	Errors []string `json:"errors,omitempty"`
}

// VerifyResult holds the overall verification result.
type VerifyResult struct {
	Cases  []CaseResult `json:"cases"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Total  int          `json:"total"`
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify <cases-dir>",
		Short: "Run YAML verification cases",
		Long: `Run verification cases against the prime algorithms.

Each *.yaml or *.yml file under cases-dir is one case. When a golden file
exists at golden/<name>.golden next to the case file, where <name> is the
case's name field, the execution trace must also match it byte for byte.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (invalid paths, etc.)

Examples:
  primes verify ./cases
  primes verify ./cases --filter "factor*"
  primes verify ./cases --update
  primes verify ./cases --format json`,
		Args:          commandArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter cases by glob pattern")

	return cmd
}

func runVerify(opts *VerifyOptions, casesDir string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	info, err := os.Stat(casesDir)
	if os.IsNotExist(err) {
		return commandError(formatter, ErrCodeNotFound,
			NewExitError(ExitCommandError, fmt.Sprintf("cases directory not found: %s", casesDir)))
	}
	if err != nil {
		return commandError(formatter, ErrCodeNotFound,
			WrapExitError(ExitCommandError, "error accessing cases directory", err))
	}
	if !info.IsDir() {
		return commandError(formatter, ErrCodeNotFound,
			NewExitError(ExitCommandError, fmt.Sprintf("not a directory: %s", casesDir)))
	}

	caseFiles, err := findCaseFiles(casesDir, opts.Filter)
	if err != nil {
		return commandError(formatter, ErrCodeInvalidArgument,
			WrapExitError(ExitCommandError, "failed to find cases", err))
	}

	result := VerifyResult{
		Cases: make([]CaseResult, 0, len(caseFiles)),
		Total: len(caseFiles),
	}

	if len(caseFiles) == 0 {
		if formatter.IsJSON() {
			return formatter.Success(result)
		}
		fmt.Fprintln(formatter.Writer, "No cases found.")
		return nil
	}

	for _, caseFile := range caseFiles {
		caseResult := verifyCase(caseFile, opts, formatter)
		result.Cases = append(result.Cases, caseResult)

		if caseResult.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if formatter.IsJSON() {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(formatter.Writer)
		fmt.Fprintf(formatter.Writer, "Results: %d passed, %d failed, %d total\n",
			result.Passed, result.Failed, result.Total)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d cases failed", result.Failed, result.Total))
	}
	return nil
}

// findCaseFiles finds all YAML case files in a directory, skipping golden
// directories.
func findCaseFiles(dir string, filter string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if info.Name() == "golden" {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

// verifyCase executes a single case and returns the result.
func verifyCase(caseFile string, opts *VerifyOptions, f *OutputFormatter) CaseResult {
	fail := func(name string, errs ...string) CaseResult {
		if !f.IsJSON() {
			fmt.Fprintf(f.Writer, "✗ %s\n", name)
			for _, e := range errs {
				fmt.Fprintf(f.Writer, "  %s\n", indent(e))
			}
		}
		return CaseResult{Name: name, Pass: false, Errors: errs}
	}
	pass := func(name, note string) CaseResult {
		if !f.IsJSON() {
			fmt.Fprintf(f.Writer, "✓ %s%s\n", name, note)
		}
		return CaseResult{Name: name, Pass: true}
	}

	c, err := harness.LoadCase(caseFile)
	if err != nil {
		r := fail(filepath.Base(caseFile), fmt.Sprintf("load error: %v", err))
		r.Code = ErrCodeCaseLoad
		return r
	}

	result, err := harness.Run(c)
	if err != nil {
		return fail(c.Name, fmt.Sprintf("execution error: %v", err))
	}
	f.VerboseLog("ran %s: %d checks", c.Name, len(result.Trace))

	snapshot, err := harness.MarshalSnapshot(c.Name, result)
	if err != nil {
		return fail(c.Name, fmt.Sprintf("failed to marshal trace: %v", err))
	}

	goldenPath := goldenFilePath(caseFile, c.Name)

	if opts.Update {
		if err := writeGoldenFile(goldenPath, snapshot); err != nil {
			return fail(c.Name, fmt.Sprintf("failed to update golden file: %v", err))
		}
		if !result.Pass {
			return fail(c.Name, result.Errors...)
		}
		return pass(c.Name, " (golden updated)")
	}

	if !result.Pass {
		return fail(c.Name, result.Errors...)
	}

	golden, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) {
		// No golden file - assertion-based validation only
		return pass(c.Name, "")
	}
	if err != nil {
		return fail(c.Name, fmt.Sprintf("golden comparison failed: %v", err))
	}
	if !bytes.Equal(golden, snapshot) {
		return fail(c.Name, "trace does not match golden file (run with --update to regenerate)")
	}

	return pass(c.Name, "")
}

// goldenFilePath returns the path to the golden file for a case. Golden
// files are named after the case, as harness.RunWithGolden names them.
func goldenFilePath(caseFile, caseName string) string {
	return filepath.Join(filepath.Dir(caseFile), "golden", caseName+".golden")
}

// writeGoldenFile writes a trace snapshot, creating the golden directory.
func writeGoldenFile(path string, snapshot []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}
	return os.WriteFile(path, snapshot, 0644)
}

// indent aligns continuation lines of multi-line messages under the first.
func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}
