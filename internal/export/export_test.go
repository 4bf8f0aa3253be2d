package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/soyoon/agentgraph/internal/graph"
)

func TestGraphJSON_StripsReasoning(t *testing.T) {
	g := &graph.AgentGraph{
		Version:   "1.0",
		Scenario:  "launch",
		Reasoning: "secret chain of thought",
		Nodes: []graph.AgentNode{
			{ID: "orc", Label: "O", Type: graph.NodeTypeOrchestrator, Description: "hub"},
		},
		Edges: []graph.AgentEdge{},
	}
	data, err := GraphJSON(g)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "secret chain of thought") {
		t.Error("export leaked the reasoning field")
	}
	if g.Reasoning == "" {
		t.Error("export must not mutate its input")
	}

	var roundTrip graph.AgentGraph
	if err := json.Unmarshal(data, &roundTrip); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if roundTrip.Scenario != "launch" {
		t.Errorf("scenario lost: %+v", roundTrip)
	}
}

func TestGraphJSON_Deterministic(t *testing.T) {
	g := &graph.AgentGraph{Version: "1.0", Scenario: "x",
		Nodes: []graph.AgentNode{{ID: "a", Label: "A", Type: graph.NodeTypeHuman, Description: "d"}}}
	first, _ := GraphJSON(g)
	second, _ := GraphJSON(g)
	if !bytes.Equal(first, second) {
		t.Error("equal inputs must export identical bytes")
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(&graph.AgentGraph{Scenario: "launch"}); got != "agent-graph-launch.json" {
		t.Errorf("got %q", got)
	}
	if got := Filename(&graph.AgentGraph{}); got != "agent-graph.json" {
		t.Errorf("got %q", got)
	}
}
