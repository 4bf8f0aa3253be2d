// Package positions persists manual layout overrides keyed by scenario.
// It is a best-effort cache, not a durability guarantee: saves never fail
// the caller and any unreadable entry is treated as a miss, degrading to
// "re-run automatic layout next time".
package positions

import (
	"context"

	"github.com/soyoon/agentgraph/internal/graph"
)

// SchemaVersion tags every persisted key. Bump it whenever node dimensions
// or the layout algorithm change; stale entries under old versions are swept
// by each backend's constructor so old geometry is never replayed.
const SchemaVersion = "v3"

const keyPrefix = "agentgraph-layout"

// Key builds the storage key for a scenario under the current schema version.
func Key(scenario string) string {
	return KeyVersioned(SchemaVersion, scenario)
}

// KeyVersioned builds a storage key under an explicit schema version.
func KeyVersioned(version, scenario string) string {
	return keyPrefix + "-" + version + "-" + scenario
}

// Store saves and loads scenario-keyed position maps. Save is best-effort
// and must not surface storage failures; Load returns nil for a missing or
// unreadable entry. Writes are last-writer-wins.
type Store interface {
	Save(ctx context.Context, scenario string, positions map[string]graph.Position)
	Load(ctx context.Context, scenario string) map[string]graph.Position
}
