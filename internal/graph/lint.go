package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/expr-lang/expr"
)

// Lint inspects a validated graph for topology-quality problems that the
// generator was instructed to avoid but that are not schema violations:
// hub-and-spoke shape, edge-kind coverage, node count, and edge condition
// expressions that do not compile. The result is advisory; Lint never
// fails a graph.
func Lint(g *AgentGraph) []string {
	var warnings []string

	var hubs []string
	for _, n := range g.Nodes {
		if n.Type == NodeTypeOrchestrator {
			hubs = append(hubs, n.ID)
		}
	}
	switch {
	case len(hubs) == 0:
		warnings = append(warnings, "graph has no Orchestrator node")
	case len(hubs) > 1:
		warnings = append(warnings, fmt.Sprintf("graph has %d Orchestrator nodes; expected exactly one hub", len(hubs)))
	}

	if len(g.Nodes) < 4 || len(g.Nodes) > 7 {
		warnings = append(warnings, fmt.Sprintf("graph has %d nodes; expected between 4 and 7", len(g.Nodes)))
	}

	// Every spoke should have at least one edge back to an orchestrator.
	if len(hubs) > 0 {
		hubSet := make(map[string]bool, len(hubs))
		for _, id := range hubs {
			hubSet[id] = true
		}
		returning := map[string]bool{}
		for _, e := range g.Edges {
			if hubSet[e.Target] {
				returning[e.Source] = true
			}
		}
		var orphans []string
		for _, n := range g.Nodes {
			if n.Type != NodeTypeOrchestrator && !returning[n.ID] {
				orphans = append(orphans, n.ID)
			}
		}
		if len(orphans) > 0 {
			sort.Strings(orphans)
			warnings = append(warnings, fmt.Sprintf("spoke nodes with no edge back to the orchestrator: %s", strings.Join(orphans, ", ")))
		}
	}

	kinds := map[EdgeKind]bool{}
	for _, e := range g.Edges {
		kinds[e.Kind] = true
	}
	var missing []string
	for _, k := range EdgeKinds {
		if !kinds[k] {
			missing = append(missing, string(k))
		}
	}
	if len(missing) > 0 && len(g.Edges) > 0 {
		warnings = append(warnings, fmt.Sprintf("edge kinds not used: %s", strings.Join(missing, ", ")))
	}

	for _, e := range g.Edges {
		if e.Condition == "" {
			continue
		}
		// Compile without an environment so unknown identifiers are allowed;
		// only syntax problems are flagged.
		if _, err := expr.Compile(e.Condition); err != nil {
			warnings = append(warnings, fmt.Sprintf("edge %q: condition %q does not compile: %v", e.ID, e.Condition, err))
		}
	}

	return warnings
}
