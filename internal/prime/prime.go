package prime

import "math"

// Integer is the set of fixed-width integer types the primality tests and
// factorization accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IsPrime reports whether n is prime.
//
// After rejecting n <= 1, multiples of 2 and multiples of 3, only divisors of
// the form 6k-1 and 6k+1 are tried, since every prime above 3 has that form.
func IsPrime[T Integer](n T) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := T(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// IsPrimeTrial is the 64-bit rendition of IsPrime, suitable for inputs whose
// square exceeds the 32-bit range.
func IsPrimeTrial(n int64) bool {
	return IsPrime(n)
}

// IsPrimeOptimized reports whether n is prime by trying 2 and then every odd
// divisor up to the integer square root of n.
func IsPrimeOptimized[T Integer](n T) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	limit := ISqrt(n)
	for i := T(3); i <= limit; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// ISqrt returns the largest r with r*r <= n. It returns 0 for n <= 0.
func ISqrt[T Integer](n T) T {
	if n <= 0 {
		return 0
	}
	// float64 loses precision above 2^53; correct the estimate in both directions.
	r := T(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}
