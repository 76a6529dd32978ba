package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// parseIntArg parses a base-10 int64 command argument.
func parseIntArg(name, s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, WrapExitError(ExitCommandError,
			fmt.Sprintf("invalid %s %q: must be an integer", name, s), err)
	}
	return n, nil
}

// parseIntArgs parses every argument with parseIntArg.
func parseIntArgs(name string, args []string) ([]int64, error) {
	values := make([]int64, 0, len(args))
	for _, arg := range args {
		n, err := parseIntArg(name, arg)
		if err != nil {
			return nil, err
		}
		values = append(values, n)
	}
	return values, nil
}

// parseBoundArg parses a non-negative bound that must fit an int.
func parseBoundArg(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, WrapExitError(ExitCommandError,
			fmt.Sprintf("invalid %s %q: must be an integer", name, s), err)
	}
	if n < 0 {
		return 0, NewExitError(ExitCommandError,
			fmt.Sprintf("invalid %s %d: must be non-negative", name, n))
	}
	return n, nil
}

// commandArgs wraps a cobra argument validator so that argument count
// errors exit with ExitCommandError rather than ExitFailure.
func commandArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, "invalid arguments", err)
		}
		return nil
	}
}

// flagError reports flag parse failures (unknown flags, bad values) as
// command errors.
func flagError(cmd *cobra.Command, err error) error {
	return WrapExitError(ExitCommandError, "invalid flags", err)
}
