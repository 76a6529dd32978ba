// Package prime implements classic primality tests and factorization.
//
// Every function is pure: output depends only on input, nothing is shared
// between calls, and no function prints.
//
// # Algorithms
//
//   - IsPrime: trial division by 6k±1 candidates up to the square root.
//   - IsPrimeOptimized: trial division by odd candidates up to ISqrt(n).
//   - Sieve: Sieve of Eratosthenes, O(n log log n) time and O(n) space.
//   - All / GenerateN: successive integers filtered through IsPrime.
//   - Factors: repeated division, bound checked against the shrinking remainder.
//   - TwinPrimes: pairs (p, p+2) with both members prime.
//
// # Integer widths
//
// IsPrime, IsPrimeOptimized and Factors are generic over Integer, so the
// 32-bit and 64-bit renditions share one body. Loop bounds are written as
// i <= n/i so that no intermediate product can overflow the type's range.
//
// Neither GenerateN nor Sieve caps its input. Asking for an enormous count or
// bound runs for as long, and allocates as much, as the request implies.
package prime
