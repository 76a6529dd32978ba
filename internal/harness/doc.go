// Package harness runs verification cases against the prime algorithms.
//
// A case is a YAML file naming a list of checks. Each check invokes one
// operation from package prime and compares the outcome with an expectation:
//
//	name: small-factors
//	description: factorization examples
//	checks:
//	  - op: factors
//	    n: 60
//	    expect: [2, 2, 3, 5]
//	  - op: agree
//	    from: 2
//	    to: 10000
//
// # Operations
//
//   - is_prime:  IsPrimeTrial(n), expect is a bool
//   - sieve:     Sieve(n), expect is a list of primes
//   - first:     GenerateN(n), expect is a list of primes
//   - factors:   Factors(n), expect is a list of factors
//   - twins:     TwinPrimes(n), expect is a list of [low, high] pairs
//   - agree:     IsPrime, IsPrimeOptimized and sieve membership agree on [from, to]
//   - roundtrip: for every n in [from, to], factors multiply back to n and are prime
//
// Range checks carry no expectation; the property itself is the assertion.
//
// Every executed check appends a TraceEvent with a monotonically increasing
// seq. Traces are deterministic and can be compared against golden files
// with RunWithGolden.
package harness
