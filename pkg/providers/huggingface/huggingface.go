// Package huggingface provides a Generator implementation for the Hugging
// Face Inference API text-generation task.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/germanamz/integra/pkg/generation"
	"github.com/germanamz/integra/pkg/modeladapter"
)

// DefaultBaseURL is the public Inference API models root.
const DefaultBaseURL = "https://api-inference.huggingface.co/models"

var _ generation.Generator = (*Adapter)(nil)

// Adapter implements generation.Generator for the Hugging Face Inference API.
type Adapter struct {
	modeladapter.ModelAdapter
	DefaultEndpoint string // Used when a request names no endpoint.
}

// New creates an Adapter configured for the Inference API.
// The baseURL should be DefaultBaseURL or a compatible root (no trailing slash).
func New(baseURL, apiKey, defaultEndpoint string) *Adapter {
	a := &Adapter{DefaultEndpoint: defaultEndpoint}
	a.BaseURL = baseURL
	a.Auth = modeladapter.Auth{Key: apiKey}

	return a
}

// Generate sends one text-generation request and extracts the generated text
// from the response. Responses that carry no recognizable generated text are
// returned as KindRaw results rather than errors.
func (a *Adapter) Generate(ctx context.Context, req generation.Request) (generation.Result, error) {
	endpoint := req.Endpoint
	if endpoint == "" {
		endpoint = a.DefaultEndpoint
	}
	if endpoint == "" {
		return generation.Result{}, fmt.Errorf("huggingface: no model endpoint")
	}

	body, err := a.PostJSON(ctx, "/"+endpoint, buildRequest(req))
	if err != nil {
		return generation.Result{}, fmt.Errorf("huggingface: %w", err)
	}

	res := extract(body)
	res.Endpoint = endpoint

	return res, nil
}

// --- request types ---

type apiRequest struct {
	Inputs     string        `json:"inputs"`
	Parameters apiParameters `json:"parameters"`
}

type apiParameters struct {
	MaxLength      int     `json:"max_length"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"top_p"`
	DoSample       bool    `json:"do_sample"`
	ReturnFullText bool    `json:"return_full_text"`
}

// --- conversion helpers ---

func buildRequest(req generation.Request) apiRequest {
	p := req.Params.WithDefaults()

	return apiRequest{
		Inputs: req.Prompt,
		Parameters: apiParameters{
			MaxLength:   p.MaxLength,
			Temperature: p.Temperature,
			TopP:        p.TopP,
			DoSample:    *p.DoSample,
			// Only the continuation, never an echo of the prompt.
			ReturnFullText: false,
		},
	}
}

// extract applies the three-tier lookup: generated_text of the first list
// element, else the first element itself, else the whole body.
func extract(body []byte) generation.Result {
	raw := generation.Result{Kind: generation.KindRaw, Raw: json.RawMessage(body)}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return raw
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil || len(items) == 0 {
		return raw
	}

	first := items[0]

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(first, &obj); err == nil {
		if gt, ok := obj["generated_text"]; ok && string(gt) != "null" {
			var text string
			if err := json.Unmarshal(gt, &text); err == nil {
				return generation.Result{Kind: generation.KindText, Text: text}
			}
		}
	}

	return generation.Result{Kind: generation.KindRaw, Raw: first}
}
