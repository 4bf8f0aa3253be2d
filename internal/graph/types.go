package graph

// NodeType classifies an agent node. Orchestrator is the stateful hub;
// every other type is a spoke invoked by it.
type NodeType string

const (
	NodeTypeOrchestrator NodeType = "Orchestrator"
	NodeTypeResearcher   NodeType = "Researcher"
	NodeTypeIntegrator   NodeType = "Integrator"
	NodeTypeCodeExecutor NodeType = "CodeExecutor"
	NodeTypeValidator    NodeType = "Validator"
	NodeTypeHuman        NodeType = "Human"
)

// NodeTypes lists the closed set of valid node types.
var NodeTypes = []NodeType{
	NodeTypeOrchestrator,
	NodeTypeResearcher,
	NodeTypeIntegrator,
	NodeTypeCodeExecutor,
	NodeTypeValidator,
	NodeTypeHuman,
}

// EdgeKind classifies an edge between agents.
type EdgeKind string

const (
	EdgeKindControl EdgeKind = "control" // command / sequencing
	EdgeKindData    EdgeKind = "data"    // artifact hand-off
	EdgeKindEvent   EdgeKind = "event"   // async notification
)

// EdgeKinds lists the closed set of valid edge kinds.
var EdgeKinds = []EdgeKind{EdgeKindControl, EdgeKindData, EdgeKindEvent}

// AgentGraph is the aggregate root for a hub-and-spoke agent architecture.
// It is constructed once per generate or sample-load action and replaced
// wholesale on regeneration; node positions live outside it, keyed by Scenario.
type AgentGraph struct {
	Version  string      `json:"version" yaml:"version"`
	Scenario string      `json:"scenario" yaml:"scenario"`
	Nodes    []AgentNode `json:"nodes" yaml:"nodes"`
	Edges    []AgentEdge `json:"edges" yaml:"edges"`
	Notes    []string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	Warnings []string    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	// Reasoning carries the generator's chain-of-thought. It is logged for
	// diagnostics and stripped before the graph is treated as canonical.
	Reasoning string `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`
}

type AgentNode struct {
	ID              string       `json:"id" yaml:"id"`
	Label           string       `json:"label" yaml:"label"`
	Type            NodeType     `json:"type" yaml:"type"`
	Description     string       `json:"description" yaml:"description"`
	Model           string       `json:"model,omitempty" yaml:"model,omitempty"`
	Temperature     *float64     `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	Tools           []string     `json:"tools,omitempty" yaml:"tools,omitempty"`
	Inputs          []string     `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs         []string     `json:"outputs,omitempty" yaml:"outputs,omitempty"`
	Triggers        []string     `json:"triggers,omitempty" yaml:"triggers,omitempty"`
	EventsPublished []string     `json:"eventsPublished,omitempty" yaml:"eventsPublished,omitempty"`
	Policies        *NodePolicy  `json:"policies,omitempty" yaml:"policies,omitempty"`
	Metrics         *NodeMetrics `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	UI              *NodeUI      `json:"ui,omitempty" yaml:"ui,omitempty"`
}

type AgentEdge struct {
	ID        string   `json:"id" yaml:"id"`
	Source    string   `json:"source" yaml:"source"`
	Target    string   `json:"target" yaml:"target"`
	Kind      EdgeKind `json:"kind" yaml:"kind"`
	Label     string   `json:"label,omitempty" yaml:"label,omitempty"`
	Condition string   `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// NodePolicy holds optional runtime policy hints for a node.
type NodePolicy struct {
	Retries     *int     `json:"retries,omitempty" yaml:"retries,omitempty"`
	TimeoutSec  *float64 `json:"timeoutSec,omitempty" yaml:"timeoutSec,omitempty"`
	Concurrency *int     `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`
}

// NodeMetrics holds optional fabricated performance figures for a node.
type NodeMetrics struct {
	P50LatencyMs  *float64 `json:"p50LatencyMs,omitempty" yaml:"p50LatencyMs,omitempty"`
	SuccessRate   *float64 `json:"successRate,omitempty" yaml:"successRate,omitempty"`
	CostPerRunUSD *float64 `json:"costPerRunUSD,omitempty" yaml:"costPerRunUSD,omitempty"`
}

// NodeUI is a free-form rendering hint supplied by the generator. It is
// distinct from the layout engine's computed position.
type NodeUI struct {
	X     *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y     *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Color string   `json:"color,omitempty" yaml:"color,omitempty"`
	Icon  string   `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Position is the top-left corner of a node's bounding box.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// WithoutReasoning returns a copy of g with the reasoning field cleared.
// The original value is not mutated.
func (g AgentGraph) WithoutReasoning() AgentGraph {
	g.Reasoning = ""
	return g
}

// NodeIDs returns the set of node ids declared in the graph.
func (g *AgentGraph) NodeIDs() map[string]bool {
	ids := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		ids[n.ID] = true
	}
	return ids
}
