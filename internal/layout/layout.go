// Package layout computes 2D coordinates for agent graph nodes using a
// deterministic layered left-to-right layout. Saved positions, when present,
// always win over the automatic layout.
package layout

import (
	"sort"

	"github.com/soyoon/agentgraph/internal/graph"
)

// Fixed bounding box applied to every node regardless of content length.
// Bump positions.SchemaVersion when changing these.
const (
	NodeWidth  = 256
	NodeHeight = 160
	RankSep    = 120 // horizontal gap between rank columns
	NodeSep    = 48  // vertical gap between nodes in a column
)

// Layout returns the top-left coordinate of every node's bounding box.
//
// A non-empty saved map is returned as-is with no partial fill: nodes absent
// from it fall back to the origin downstream (see render.Transform). The
// automatic layout runs only when saved is nil or empty. It ranks nodes by
// longest path from the sources (edges point rightward), keeps the input
// order within each rank, and centers shorter columns vertically. Output is
// deterministic for a given node/edge set and no two boxes overlap.
func Layout(nodes []graph.AgentNode, edges []graph.AgentEdge, saved map[string]graph.Position) map[string]graph.Position {
	if len(saved) > 0 {
		out := make(map[string]graph.Position, len(saved))
		for id, p := range saved {
			out[id] = p
		}
		return out
	}
	return autoLayout(nodes, edges)
}

func autoLayout(nodes []graph.AgentNode, edges []graph.AgentEdge) map[string]graph.Position {
	known := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		known[n.ID] = true
	}

	children := map[string][]string{}
	inDegree := make(map[string]int, len(nodes))
	for _, n := range nodes {
		inDegree[n.ID] = 0
	}
	for _, e := range edges {
		// Unknown endpoints and self-loops contribute nothing to ranking.
		if !known[e.Source] || !known[e.Target] || e.Source == e.Target {
			continue
		}
		children[e.Source] = append(children[e.Source], e.Target)
		inDegree[e.Target]++
	}

	// Longest-path ranks via Kahn's algorithm with a sorted queue, so equal
	// inputs always rank identically.
	rank := make(map[string]int, len(nodes))
	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)
	ranked := make(map[string]bool, len(nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		ranked[id] = true
		for _, c := range children[id] {
			if r := rank[id] + 1; r > rank[c] {
				rank[c] = r
			}
			inDegree[c]--
			if inDegree[c] == 0 {
				queue = append(queue, c)
			}
		}
		sort.Strings(queue)
	}

	// Cycle members never reach the queue; pin them to rank 0 in id order so
	// the layout stays total and deterministic.
	var unranked []string
	for _, n := range nodes {
		if !ranked[n.ID] {
			unranked = append(unranked, n.ID)
		}
	}
	sort.Strings(unranked)
	for _, id := range unranked {
		rank[id] = 0
	}

	// Group into columns preserving input order, which keeps the generator's
	// narrative order stable between renders.
	columns := map[int][]string{}
	maxRank := 0
	seen := map[string]bool{}
	for _, n := range nodes {
		if seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		r := rank[n.ID]
		columns[r] = append(columns[r], n.ID)
		if r > maxRank {
			maxRank = r
		}
	}

	tallest := 0
	for _, col := range columns {
		if len(col) > tallest {
			tallest = len(col)
		}
	}

	positions := make(map[string]graph.Position, len(nodes))
	for r := 0; r <= maxRank; r++ {
		col := columns[r]
		// Center shorter columns against the tallest one.
		offset := float64(tallest-len(col)) * (NodeHeight + NodeSep) / 2
		for i, id := range col {
			positions[id] = graph.Position{
				X: float64(r) * (NodeWidth + RankSep),
				Y: offset + float64(i)*(NodeHeight+NodeSep),
			}
		}
	}
	return positions
}
