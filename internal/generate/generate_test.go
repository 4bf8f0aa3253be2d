package generate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/soyoon/agentgraph/internal/model"
)

// fakeLLM spins up an OpenAI-compatible endpoint that always replies with
// the given assistant text.
func fakeLLM(t *testing.T, reply string) *Generator {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": reply}, "finish_reason": "stop"},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	llm := model.NewOpenAILLM("test-key", model.WithOpenAIBaseURL(server.URL))
	return New(llm, "gpt-4o")
}

const validGraphJSON = `{
	"reasoning": "single hub with a researcher spoke",
	"version": "1.0",
	"scenario": "expansion",
	"nodes": [
		{"id": "orc", "label": "Coordinator", "type": "Orchestrator", "description": "hub"},
		{"id": "res", "label": "Researcher", "type": "Researcher", "description": "finds data"},
		{"id": "val", "label": "Reviewer", "type": "Validator", "description": "checks output"},
		{"id": "hum", "label": "Approver", "type": "Human", "description": "final say"}
	],
	"edges": [
		{"id": "e1", "source": "orc", "target": "res", "kind": "control"},
		{"id": "e2", "source": "res", "target": "orc", "kind": "data"},
		{"id": "e3", "source": "orc", "target": "val", "kind": "control"},
		{"id": "e4", "source": "val", "target": "orc", "kind": "data"},
		{"id": "e5", "source": "orc", "target": "hum", "kind": "control"},
		{"id": "e6", "source": "hum", "target": "orc", "kind": "event"}
	]
}`

func TestGenerate_Success(t *testing.T) {
	gen := fakeLLM(t, validGraphJSON)
	result, err := gen.Generate(context.Background(), "Expand into two new markets")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !result.Valid() {
		t.Fatalf("expected valid result, got errors: %v", result.Errors)
	}
	if len(result.Graph.Nodes) != 4 || len(result.Graph.Edges) != 6 {
		t.Errorf("graph shape: %d nodes, %d edges", len(result.Graph.Nodes), len(result.Graph.Edges))
	}
	if result.Graph.Reasoning != "" {
		t.Error("reasoning must be stripped from the canonical graph")
	}
	if len(result.Graph.Warnings) != 0 {
		t.Errorf("clean hub-and-spoke graph should lint clean, got %v", result.Graph.Warnings)
	}
}

func TestGenerate_StripsMarkdownFences(t *testing.T) {
	gen := fakeLLM(t, "Sure! ```json\n"+validGraphJSON+"\n```")
	result, err := gen.Generate(context.Background(), "whatever")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !result.Valid() {
		t.Fatalf("fenced reply should validate, got errors: %v", result.Errors)
	}
}

func TestGenerate_Refusal(t *testing.T) {
	gen := fakeLLM(t, "I cannot comply.")
	result, err := gen.Generate(context.Background(), "whatever")
	if err != nil {
		t.Fatalf("refusals are validation data, not transport errors: %v", err)
	}
	if result.Valid() {
		t.Fatal("expected invalid result")
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "valid JSON") {
		t.Errorf("want single invalid-JSON error, got %v", result.Errors)
	}
}

func TestGenerate_TruncatedJSON(t *testing.T) {
	gen := fakeLLM(t, `{"version": "1.0", "scenario": "x", "nodes": [`)
	result, err := gen.Generate(context.Background(), "whatever")
	if err != nil {
		t.Fatal(err)
	}
	if result.Valid() || len(result.Errors) != 1 {
		t.Errorf("truncated JSON is the single synthetic parse error, got %v", result.Errors)
	}
}

func TestGenerate_SchemaViolations(t *testing.T) {
	gen := fakeLLM(t, `{"version":"1.0","scenario":"x",
		"nodes":[{"id":"a","label":"A","type":"Wizard","description":"d"}],
		"edges":[{"id":"e1","source":"a","target":"zzz","kind":"control"}]}`)
	result, err := gen.Generate(context.Background(), "whatever")
	if err != nil {
		t.Fatal(err)
	}
	if result.Valid() {
		t.Fatal("expected schema failure")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("want both violations surfaced together, got %v", result.Errors)
	}
	joined := strings.Join(result.Errors, "; ")
	if !strings.Contains(joined, "nodes[0].type") || !strings.Contains(joined, "edges[0].target") {
		t.Errorf("errors must locate their fields: %v", result.Errors)
	}
}

func TestGenerate_LintWarningsAttached(t *testing.T) {
	// Valid schema but only two nodes and no return edges.
	gen := fakeLLM(t, `{"version":"1.0","scenario":"x",
		"nodes":[{"id":"orc","label":"O","type":"Orchestrator","description":"d"},
		         {"id":"res","label":"R","type":"Researcher","description":"d"}],
		"edges":[{"id":"e1","source":"orc","target":"res","kind":"control"}]}`)
	result, err := gen.Generate(context.Background(), "whatever")
	if err != nil {
		t.Fatal(err)
	}
	if !result.Valid() {
		t.Fatalf("lint findings must not fail validation: %v", result.Errors)
	}
	if len(result.Graph.Warnings) == 0 {
		t.Error("expected advisory warnings on a degenerate topology")
	}
}

func TestGenerate_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream on fire", http.StatusInternalServerError)
	}))
	defer server.Close()

	gen := New(model.NewOpenAILLM("k", model.WithOpenAIBaseURL(server.URL)), "gpt-4o")
	if _, err := gen.Generate(context.Background(), "whatever"); err == nil {
		t.Fatal("transport failures use the error channel")
	}
}
