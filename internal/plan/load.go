package plan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// Error codes for plan loading failures.
const (
	ErrCodeNotFound     = "E101" // plan file missing or unreadable
	ErrCodeParse        = "E102" // not valid CUE
	ErrCodeSchema       = "E103" // valid CUE that violates #Plan
	ErrCodeDecodeFailed = "E104" // schema-valid value that could not be decoded
)

// schemaSource is unified with every plan file. #Plan is a definition, so it
// is closed: a misspelt field is an error, not a silently ignored value.
const schemaSource = `
#Plan: {
	check?:       [...int]
	sieve_limit?: int & >=0
	first_count?: int & >=0
	factorize?:   [...int]
	benchmark?:   int
	twin_limit?:  int & >=0
}
`

// LoadError represents an error that occurred while loading a plan file.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// fileFields mirrors the plan file. Pointers and nil slices distinguish
// fields that were left out from fields explicitly set to zero.
type fileFields struct {
	Check      []int64 `json:"check"`
	SieveLimit *int    `json:"sieve_limit"`
	FirstCount *int    `json:"first_count"`
	Factorize  []int64 `json:"factorize"`
	Benchmark  *int64  `json:"benchmark"`
	TwinLimit  *int    `json:"twin_limit"`
}

// Load reads a CUE plan file and merges it over Default.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("plan file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading plan file: %v", err)}
	}
	return Parse(path, data)
}

// Parse compiles CUE source, validates it against the plan schema and merges
// it over Default. filename is used only in error positions.
func Parse(filename string, src []byte) (*Plan, error) {
	ctx := cuecontext.New()

	value := ctx.CompileBytes(src, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, loadErrorFromCUE(ErrCodeParse, err)
	}

	schema := ctx.CompileString(schemaSource, cue.Filename("plan-schema.cue")).
		LookupPath(cue.ParsePath("#Plan"))
	if err := schema.Err(); err != nil {
		// The schema is a constant; failing here is a programming error.
		return nil, fmt.Errorf("compiling plan schema: %w", err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, loadErrorFromCUE(ErrCodeSchema, err)
	}

	var fields fileFields
	if err := unified.Decode(&fields); err != nil {
		return nil, loadErrorFromCUE(ErrCodeDecodeFailed, err)
	}

	return merge(Default(), &fields), nil
}

func merge(p *Plan, f *fileFields) *Plan {
	if f.Check != nil {
		p.Check = f.Check
	}
	if f.SieveLimit != nil {
		p.SieveLimit = *f.SieveLimit
	}
	if f.FirstCount != nil {
		p.FirstCount = *f.FirstCount
	}
	if f.Factorize != nil {
		p.Factorize = f.Factorize
	}
	if f.Benchmark != nil {
		p.Benchmark = *f.Benchmark
	}
	if f.TwinLimit != nil {
		p.TwinLimit = *f.TwinLimit
	}
	return p
}

// loadErrorFromCUE keeps the first CUE error and its position.
func loadErrorFromCUE(code string, err error) *LoadError {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: code, Message: err.Error()}
	}

	first := errs[0]
	loadErr := &LoadError{Code: code, Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		loadErr.Pos = positions[0]
	}
	return loadErr
}
