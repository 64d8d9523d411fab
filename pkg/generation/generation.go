// Package generation defines the provider-agnostic types for one-shot text
// generation: sampling parameters, requests, results, and the [Generator]
// interface with its middleware.
package generation

import (
	"context"
	"encoding/json"
)

// Default sampling values applied to zero-valued Params fields.
const (
	DefaultMaxLength   = 100
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9
	DefaultDoSample    = true
)

// Params holds the generation knobs of a single request.
// The zero value is valid; zero fields mean "use the default".
type Params struct {
	MaxLength   int
	Temperature float64
	TopP        float64
	DoSample    *bool // nil means DefaultDoSample.
}

// WithDefaults returns a copy of p with every unset field replaced by its
// default. DoSample is always non-nil in the result.
func (p Params) WithDefaults() Params {
	if p.MaxLength == 0 {
		p.MaxLength = DefaultMaxLength
	}
	if p.Temperature == 0 {
		p.Temperature = DefaultTemperature
	}
	if p.TopP == 0 {
		p.TopP = DefaultTopP
	}
	if p.DoSample == nil {
		p.DoSample = Bool(DefaultDoSample)
	}

	return p
}

// Bool returns a pointer to v, for use with Params.DoSample.
func Bool(v bool) *bool { return &v }

// Request is a single generation call.
type Request struct {
	Prompt   string
	Endpoint string // Hosted model endpoint; empty selects the generator's default.
	Params   Params
}

// Kind tells which field of a Result carries the output.
type Kind int

const (
	// KindText means the generated text was extracted into Result.Text.
	KindText Kind = iota
	// KindRaw means the response had no recognizable generated text and
	// Result.Raw holds the payload as received.
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Result is the successful outcome of a generation call. Failures are
// reported through the error return of Generate, never through Result.
type Result struct {
	Kind     Kind
	Endpoint string          // Endpoint the request was sent to.
	Text     string          // Set when Kind is KindText. May legitimately be empty.
	Raw      json.RawMessage // Set when Kind is KindRaw. Not guaranteed to be valid JSON.
}

// String returns the text for KindText results and the raw payload otherwise.
func (r Result) String() string {
	if r.Kind == KindText {
		return r.Text
	}

	return string(r.Raw)
}

// Generator performs one text generation request.
type Generator interface {
	Generate(ctx context.Context, req Request) (Result, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(ctx context.Context, req Request) (Result, error)

// Generate calls the underlying function.
func (f GeneratorFunc) Generate(ctx context.Context, req Request) (Result, error) {
	return f(ctx, req)
}
