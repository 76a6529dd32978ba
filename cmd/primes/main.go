// Command primes demonstrates primality testing, the Sieve of Eratosthenes,
// prime generation, twin primes and prime factorization.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/primes/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
