package testutil

// FixedIDGenerator returns the same trace ID every time.
//
// Commands stamp JSON responses with a trace ID; tests that compare output
// byte for byte need that ID to be stable.
//
// Thread-safety: FixedIDGenerator is stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a generator that always returns id.
//
// If id is empty, Generate() returns "test-trace-default".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-trace-default"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed trace ID.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
