package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/soyoon/agentgraph/internal/graph"
)

func fixture() (*graph.AgentGraph, map[string]graph.Position) {
	g := &graph.AgentGraph{
		Version:  "1.0",
		Scenario: "onboarding",
		Nodes: []graph.AgentNode{
			{ID: "orc", Label: "Coordinator", Type: graph.NodeTypeOrchestrator, Description: "hub"},
			{ID: "res", Label: "Researcher", Type: graph.NodeTypeResearcher, Description: "spoke"},
		},
		Edges: []graph.AgentEdge{
			{ID: "e1", Source: "orc", Target: "res", Kind: graph.EdgeKindControl, Label: "assign"},
			{ID: "e2", Source: "res", Target: "orc", Kind: graph.EdgeKindData, Condition: "confidence > 0.8"},
			{ID: "e3", Source: "res", Target: "orc", Kind: graph.EdgeKindEvent},
		},
	}
	positions := map[string]graph.Position{
		"orc": {X: 0, Y: 104},
		"res": {X: 376, Y: 0},
	}
	return g, positions
}

func TestTransform_Nodes(t *testing.T) {
	g, positions := fixture()
	d := Transform(g, positions)

	if len(d.Nodes) != 2 || len(d.Edges) != 3 {
		t.Fatalf("got %d nodes / %d edges", len(d.Nodes), len(d.Edges))
	}
	if d.Nodes[0].Position != (graph.Position{X: 0, Y: 104}) {
		t.Errorf("orc position: %v", d.Nodes[0].Position)
	}
	if d.Nodes[0].Data.Label != "Coordinator" {
		t.Error("full node payload must be carried for detail panels")
	}
}

func TestTransform_MissingPositionFallsBackToOrigin(t *testing.T) {
	g, _ := fixture()
	d := Transform(g, map[string]graph.Position{"orc": {X: 5, Y: 5}})
	if d.Nodes[1].Position != (graph.Position{}) {
		t.Errorf("res should fall back to origin, got %v", d.Nodes[1].Position)
	}
}

func TestTransform_EdgeStyles(t *testing.T) {
	g, positions := fixture()
	d := Transform(g, positions)

	byID := map[string]Edge{}
	for _, e := range d.Edges {
		byID[e.ID] = e
	}

	if byID["e1"].Animated {
		t.Error("control edges render static")
	}
	if !byID["e2"].Animated || !byID["e3"].Animated {
		t.Error("data and event edges are animated")
	}
	if byID["e1"].Style == byID["e2"].Style || byID["e2"].Style == byID["e3"].Style {
		t.Error("each kind has a distinct style profile")
	}
	if byID["e1"].Style.DashArray != "" {
		t.Error("control edges use a solid stroke")
	}
	if byID["e2"].Condition != "confidence > 0.8" || byID["e1"].Label != "assign" {
		t.Error("label and condition pass through for display")
	}
}

func TestTransform_Idempotent(t *testing.T) {
	g, positions := fixture()

	first, err := json.Marshal(Transform(g, positions))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(Transform(g, positions))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two transforms of equal inputs must serialize identically")
	}
}

func TestTransform_DoesNotMutateGraph(t *testing.T) {
	g, positions := fixture()
	before, _ := json.Marshal(g)
	Transform(g, positions)
	after, _ := json.Marshal(g)
	if !bytes.Equal(before, after) {
		t.Error("transform mutated the graph")
	}
}
