package positions

import (
	"context"
	"strings"
	"sync"

	"github.com/soyoon/agentgraph/internal/graph"
)

// MemoryStore is an in-process Store. It mirrors the versioned-key scheme of
// the durable backends so the sweep is observable in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]map[string]graph.Position
}

// NewMemoryStore creates an empty in-memory store, sweeping any entries
// whose key carries a previous schema version.
func NewMemoryStore(seed map[string]map[string]graph.Position) *MemoryStore {
	s := &MemoryStore{entries: map[string]map[string]graph.Position{}}
	current := keyPrefix + "-" + SchemaVersion + "-"
	for key, positions := range seed {
		if strings.HasPrefix(key, current) {
			s.entries[key] = clonePositions(positions)
		}
	}
	return s
}

func (s *MemoryStore) Save(_ context.Context, scenario string, positions map[string]graph.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[Key(scenario)] = clonePositions(positions)
}

func (s *MemoryStore) Load(_ context.Context, scenario string) map[string]graph.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[Key(scenario)]
	if !ok {
		return nil
	}
	return clonePositions(entry)
}

func clonePositions(in map[string]graph.Position) map[string]graph.Position {
	out := make(map[string]graph.Position, len(in))
	for id, p := range in {
		out[id] = p
	}
	return out
}
