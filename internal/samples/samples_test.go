package samples

import (
	"testing"

	"github.com/soyoon/agentgraph/internal/graph"
)

func TestNames(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("expected embedded samples")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}

func TestLoad_AllSamplesValidateCleanly(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			g, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q): %v", name, err)
			}
			if g.Scenario != name {
				t.Errorf("scenario %q should match the sample name %q", g.Scenario, name)
			}
			if g.Reasoning != "" {
				t.Error("samples must not carry a reasoning field")
			}
			// Samples double as demo fixtures, so they should also lint clean.
			if warnings := graph.Lint(g); len(warnings) != 0 {
				t.Errorf("sample lints dirty: %v", warnings)
			}
		})
	}
}

func TestLoad_UnknownSample(t *testing.T) {
	if _, err := Load("does-not-exist"); err == nil {
		t.Fatal("expected error for unknown sample")
	}
}
