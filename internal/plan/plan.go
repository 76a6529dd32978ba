// Package plan describes the inputs of the demo walkthrough and loads them
// from CUE files.
//
// A plan file is a plain CUE struct. Every field is optional; fields left
// out keep the value from Default:
//
//	check:       [2, 17, 25, 97, 100, 101, 997]
//	sieve_limit: 100
//	first_count: 20
//	factorize:   [12, 60, 100, 315, 1001]
//	benchmark:   982451653
//	twin_limit:  50
//
// The file is unified with a closed schema, so unknown fields and negative
// limits are rejected before any value is decoded.
package plan

// Plan holds the inputs of each demo section.
type Plan struct {
	// Check lists the numbers tested for primality in the first section.
	Check []int64 `json:"check"`

	// SieveLimit is the inclusive upper bound handed to the sieve.
	SieveLimit int `json:"sieve_limit"`

	// FirstCount is how many primes the sequential generator produces.
	FirstCount int `json:"first_count"`

	// Factorize lists the numbers shown with their prime factorization.
	Factorize []int64 `json:"factorize"`

	// Benchmark is the number timed with the 64-bit primality test.
	Benchmark int64 `json:"benchmark"`

	// TwinLimit is the inclusive upper bound of the twin-prime search.
	TwinLimit int `json:"twin_limit"`
}

// Default returns the plan used when no plan file is given.
func Default() *Plan {
	return &Plan{
		Check:      []int64{2, 17, 25, 97, 100, 101, 997},
		SieveLimit: 100,
		FirstCount: 20,
		Factorize:  []int64{12, 60, 100, 315, 1001},
		Benchmark:  982451653,
		TwinLimit:  50,
	}
}
