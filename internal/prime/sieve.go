package prime

// Sieve returns every prime <= n in ascending order using the Sieve of
// Eratosthenes. It returns an empty slice for n < 2.
//
// The marking array holds n+1 entries and lives only for the duration of the
// call. There is no cap on n: memory grows linearly with it, and n must be
// less than math.MaxInt so that n+1 entries can be allocated.
func Sieve(n int) []int {
	if n < 2 {
		return []int{}
	}

	composite := make([]bool, n+1)
	composite[0], composite[1] = true, true

	for p := 2; p <= n/p; p++ {
		if composite[p] {
			continue
		}
		for multiple := p * p; multiple <= n; multiple += p {
			composite[multiple] = true
		}
	}

	primes := make([]int, 0, estimateCount(n))
	for i := 2; i <= n; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}
	return primes
}

// estimateCount returns a capacity hint for the number of primes <= n,
// derived from n / ln(n) with some headroom.
func estimateCount(n int) int {
	if n < 16 {
		return 8
	}
	bits := 0
	for v := n; v > 0; v >>= 1 {
		bits++
	}
	// ln(n) is about 0.69 * bits; n/(0.6*bits) slightly overestimates pi(n).
	return n * 5 / (3 * bits)
}
