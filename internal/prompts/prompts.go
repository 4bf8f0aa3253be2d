// Package prompts holds the embedded system prompts that steer graph
// generation. The prompt content is a static asset: its rules (hub-and-spoke
// shape, edge-kind coverage, node count) are advisory to the generator and
// surfaced as lint warnings, not schema validation.
package prompts

import (
	_ "embed"
)

//go:embed graph-create.md
var graphCreate string

// GraphCreate returns the system prompt for generating an agent graph from a
// free-text business scenario.
func GraphCreate() string {
	return graphCreate
}
