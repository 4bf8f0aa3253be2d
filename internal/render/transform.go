// Package render converts a validated agent graph plus layout coordinates
// into generic diagram primitives. The transform is pure: equal inputs
// always produce equal output, so re-rendering is idempotent.
package render

import (
	"github.com/soyoon/agentgraph/internal/graph"
)

// Node is a renderable node for any graph-drawing surface. Data carries the
// full original payload for downstream detail panels.
type Node struct {
	ID       string          `json:"id"`
	Position graph.Position  `json:"position"`
	Data     graph.AgentNode `json:"data"`
}

// EdgeStyle is a fixed per-kind stroke/marker/label profile.
type EdgeStyle struct {
	Stroke      string `json:"stroke"`
	DashArray   string `json:"dashArray,omitempty"`
	MarkerColor string `json:"markerColor"`
	LabelColor  string `json:"labelColor"`
}

// Edge is a renderable edge. Animated is true for data and event edges;
// control edges render static.
type Edge struct {
	ID        string         `json:"id"`
	Source    string         `json:"source"`
	Target    string         `json:"target"`
	Kind      graph.EdgeKind `json:"kind"`
	Style     EdgeStyle      `json:"style"`
	Animated  bool           `json:"animated"`
	Label     string         `json:"label,omitempty"`
	Condition string         `json:"condition,omitempty"`
}

// Diagram is the complete render output for one graph.
type Diagram struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

var edgeStyles = map[graph.EdgeKind]EdgeStyle{
	graph.EdgeKindControl: {Stroke: "#64748b", MarkerColor: "#64748b", LabelColor: "#475569"},
	graph.EdgeKindData:    {Stroke: "#3b82f6", DashArray: "6 3", MarkerColor: "#3b82f6", LabelColor: "#1d4ed8"},
	graph.EdgeKindEvent:   {Stroke: "#f59e0b", DashArray: "2 4", MarkerColor: "#f59e0b", LabelColor: "#b45309"},
}

// Style returns the fixed style profile for an edge kind. Unknown kinds
// (impossible for a validated graph) fall back to the control profile.
func Style(kind graph.EdgeKind) EdgeStyle {
	if s, ok := edgeStyles[kind]; ok {
		return s
	}
	return edgeStyles[graph.EdgeKindControl]
}

// Transform builds the diagram for a validated graph. A node missing from
// the position map falls back to the origin; the graph itself is never
// mutated.
func Transform(g *graph.AgentGraph, positions map[string]graph.Position) Diagram {
	d := Diagram{
		Nodes: make([]Node, len(g.Nodes)),
		Edges: make([]Edge, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		d.Nodes[i] = Node{
			ID:       n.ID,
			Position: positions[n.ID], // zero value is the origin fallback
			Data:     n,
		}
	}
	for i, e := range g.Edges {
		d.Edges[i] = Edge{
			ID:        e.ID,
			Source:    e.Source,
			Target:    e.Target,
			Kind:      e.Kind,
			Style:     Style(e.Kind),
			Animated:  e.Kind == graph.EdgeKindData || e.Kind == graph.EdgeKindEvent,
			Label:     e.Label,
			Condition: e.Condition,
		}
	}
	return d
}
