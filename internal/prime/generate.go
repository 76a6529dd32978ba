package prime

import "iter"

// All yields every prime in ascending order, found by testing successive
// integers from 2 with IsPrime. The sequence never ends on its own.
func All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for candidate := 2; ; candidate++ {
			if IsPrime(candidate) && !yield(candidate) {
				return
			}
		}
	}
}

// GenerateN returns the first n primes in ascending order.
// It returns an empty slice for n <= 0.
func GenerateN(n int) []int {
	if n <= 0 {
		return []int{}
	}
	primes := make([]int, 0, n)
	for p := range All() {
		primes = append(primes, p)
		if len(primes) == n {
			break
		}
	}
	return primes
}

// Pair is a twin-prime pair: two primes that differ by exactly 2.
type Pair struct {
	Low  int `json:"low" yaml:"low"`
	High int `json:"high" yaml:"high"`
}

// TwinPrimes returns every pair (i, i+2) with 2 <= i <= limit-2 where both
// members are prime, ordered by i.
func TwinPrimes(limit int) []Pair {
	pairs := []Pair{}
	for i := 2; i <= limit-2; i++ {
		if IsPrime(i) && IsPrime(i+2) {
			pairs = append(pairs, Pair{Low: i, High: i + 2})
		}
	}
	return pairs
}
