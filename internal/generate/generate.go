// Package generate owns the prompt contract with the text-generation
// provider and the untrusted-text-to-graph pipeline: strip fences, parse
// JSON, validate, lint. It never returns a partially valid graph.
package generate

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/soyoon/agentgraph/internal/graph"
	"github.com/soyoon/agentgraph/internal/llmtext"
	"github.com/soyoon/agentgraph/internal/prompts"
	"google.golang.org/genai"

	adkmodel "google.golang.org/adk/model"
)

// Result is the outcome of one generation attempt. Exactly one of Graph or
// Errors is populated: validation problems are data, not Go errors, so a
// caller can render them inline.
type Result struct {
	Graph  *graph.AgentGraph `json:"graph"`
	Errors []string          `json:"errors,omitempty"`
}

// Valid reports whether the attempt produced a usable graph.
func (r Result) Valid() bool { return r.Graph != nil }

// Generator converts free-text business scenarios into validated agent
// graphs via an external LLM.
type Generator struct {
	llm   adkmodel.LLM
	model string
}

// New creates a Generator that uses the given LLM and model name.
func New(llm adkmodel.LLM, model string) *Generator {
	return &Generator{llm: llm, model: model}
}

// Model returns the model name used by the generator.
func (g *Generator) Model() string { return g.model }

// Generate sends the scenario text to the provider and turns the raw reply
// into a validated graph. Transport failures come back on the error channel;
// malformed JSON and schema violations come back inside the Result so the
// prior valid graph on the caller's side is never corrupted.
func (g *Generator) Generate(ctx context.Context, scenarioText string) (Result, error) {
	requestID := newRequestID()

	req := &adkmodel.LLMRequest{
		Model: g.model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(prompts.GraphCreate(), genai.RoleUser),
		},
		Contents: []*genai.Content{
			genai.NewContentFromText(scenarioText, genai.RoleUser),
		},
	}

	var resp *adkmodel.LLMResponse
	for r, err := range g.llm.GenerateContent(ctx, req, false) {
		if err != nil {
			return Result{}, fmt.Errorf("generate graph: %w", err)
		}
		resp = r
	}
	if resp == nil || resp.Content == nil {
		return Result{}, fmt.Errorf("generate graph: empty response")
	}

	return g.fromRawText(llmtext.ExtractText(resp), requestID), nil
}

// fromRawText runs the untrusted-text pipeline on a raw provider reply.
// Split out from Generate so the parse/validate path is testable without a
// provider.
func (g *Generator) fromRawText(raw, requestID string) Result {
	stripped, err := llmtext.StripMarkdownJSON(raw)
	if err != nil {
		slog.Warn("graph generation returned no JSON", "request", requestID, "raw_len", len(raw))
		return Result{Errors: []string{"response was not valid JSON"}}
	}

	var candidate any
	if err := json.Unmarshal([]byte(stripped), &candidate); err != nil {
		slog.Warn("graph generation returned malformed JSON", "request", requestID, "err", err)
		return Result{Errors: []string{"response was not valid JSON"}}
	}

	validated, errs := graph.Validate(candidate)
	if len(errs) > 0 {
		slog.Warn("generated graph failed validation", "request", requestID, "violations", len(errs))
		return Result{Errors: graph.ErrorStrings(errs)}
	}

	// The chain-of-thought is diagnostic only: log it, then build the
	// canonical graph without it.
	if validated.Reasoning != "" {
		slog.Info("generation reasoning", "request", requestID, "scenario", validated.Scenario, "reasoning", validated.Reasoning)
	}
	canonical := validated.WithoutReasoning()
	canonical.Warnings = append(canonical.Warnings, graph.Lint(&canonical)...)
	return Result{Graph: &canonical}
}

// newRequestID generates a random ID that ties one generation attempt's log
// lines together.
func newRequestID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return "gen-" + hex.EncodeToString(b)
}
