package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/primes/internal/prime"
)

// grouped renders n with thousands separators: 982451653 -> "982,451,653".
var grouped = message.NewPrinter(language.English)

func groupDigits(n int64) string {
	return grouped.Sprintf("%d", n)
}

func joinInts[T prime.Integer](values []T, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, sep)
}

func verdict(isPrime bool) string {
	if isPrime {
		return "PRIME"
	}
	return "NOT PRIME"
}

func writePrimes(w io.Writer, primes []int) {
	fmt.Fprintf(w, "Primes: %s\n", joinInts(primes, ", "))
}

func writeFactors(w io.Writer, n int64, factors []int64) {
	if len(factors) == 0 {
		fmt.Fprintf(w, "Prime factors of %d: (none)\n", n)
		return
	}
	fmt.Fprintf(w, "Prime factors of %d: %s\n", n, joinInts(factors, " × "))
}

func writePairs(w io.Writer, pairs []prime.Pair) {
	if len(pairs) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("(%d, %d)", p.Low, p.High)
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}

func writeElapsed(w io.Writer, label string, micros int64) {
	fmt.Fprintf(w, "%s %d microseconds\n", label, micros)
}
