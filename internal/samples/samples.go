// Package samples provides embedded known-good agent graphs used as a
// fallback when generation fails and as fixtures for demos. Every sample
// passes the same validator as model output, so a corrupt asset fails
// loudly instead of rendering garbage.
package samples

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/soyoon/agentgraph/internal/graph"
)

//go:embed *.yaml
var embedded embed.FS

// Names lists the available sample graphs in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(embedded, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

// Load reads and validates a sample graph by name.
func Load(name string) (*graph.AgentGraph, error) {
	data, err := fs.ReadFile(embedded, name+".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown sample %q", name)
	}

	var candidate any
	if err := yaml.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("parse sample %q: %w", name, err)
	}
	g, errs := graph.Validate(candidate)
	if len(errs) > 0 {
		return nil, fmt.Errorf("sample %q is not a valid graph: %s", name, graph.ErrorStrings(errs)[0])
	}
	return g, nil
}
