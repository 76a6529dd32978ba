package prime

// Factors returns the prime factorization of n in ascending order, with
// multiplicity: Factors(12) is [2 2 3]. It returns an empty slice for n <= 1.
//
// The odd trial-divisor bound is checked against the remaining cofactor, which
// shrinks every time a factor is divided out.
func Factors[T Integer](n T) []T {
	factors := []T{}
	if n <= 1 {
		return factors
	}

	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}

	for i := T(3); i <= n/i; i += 2 {
		for n%i == 0 {
			factors = append(factors, i)
			n /= i
		}
	}

	// Whatever survives trial division is itself prime.
	if n > 2 {
		factors = append(factors, n)
	}
	return factors
}
