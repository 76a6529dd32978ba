package harness

// TraceEvent records one executed check.
type TraceEvent struct {
	Seq     int64  `json:"seq"`
	Op      string `json:"op"`
	Input   string `json:"input"` // "12" for point checks, "2..10000" for range checks
	Outcome any    `json:"outcome"`
}

// RangeSummary is the outcome recorded for agree and roundtrip checks.
type RangeSummary struct {
	Checked int `json:"checked"`
	Primes  int `json:"primes"`
}

// Result is the outcome of running a case.
type Result struct {
	// Pass is true if every check matched its expectation.
	Pass bool `json:"pass"`

	// Trace contains one event per executed check, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains one message per failed check.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends an executed check to the trace.
func (r *Result) AddTrace(seq int64, op, input string, outcome any) {
	r.Trace = append(r.Trace, TraceEvent{
		Seq:     seq,
		Op:      op,
		Input:   input,
		Outcome: outcome,
	})
}
