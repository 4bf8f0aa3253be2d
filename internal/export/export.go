// Package export serializes validated graphs for download. Exports are pure
// functions of their inputs; rasterizing the rendered diagram is the
// rendering surface's concern, not handled here.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/soyoon/agentgraph/internal/graph"
)

// GraphJSON returns the indented canonical JSON for a graph. The reasoning
// field is always stripped: exports never leak chain-of-thought.
func GraphJSON(g *graph.AgentGraph) ([]byte, error) {
	canonical := g.WithoutReasoning()
	data, err := json.MarshalIndent(canonical, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode graph %q: %w", g.Scenario, err)
	}
	return append(data, '\n'), nil
}

// Filename suggests a download filename for a graph export.
func Filename(g *graph.AgentGraph) string {
	if g.Scenario == "" {
		return "agent-graph.json"
	}
	return "agent-graph-" + g.Scenario + ".json"
}
