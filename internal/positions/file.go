package positions

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/soyoon/agentgraph/internal/graph"
)

// FileStore persists one JSON file per versioned key under a base directory.
type FileStore struct {
	baseDir string
}

// NewFileStore creates the base directory if needed and sweeps files written
// under previous schema versions.
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create positions dir: %w", err)
	}
	s := &FileStore{baseDir: baseDir}
	s.sweep()
	return s, nil
}

func (s *FileStore) Save(_ context.Context, scenario string, positions map[string]graph.Position) {
	data, err := json.Marshal(positions)
	if err != nil {
		slog.Warn("positions save skipped", "scenario", scenario, "err", err)
		return
	}
	if err := os.WriteFile(s.path(scenario), data, 0o644); err != nil {
		slog.Warn("positions save failed", "scenario", scenario, "err", err)
	}
}

func (s *FileStore) Load(_ context.Context, scenario string) map[string]graph.Position {
	data, err := os.ReadFile(s.path(scenario))
	if err != nil {
		return nil
	}
	var positions map[string]graph.Position
	if err := json.Unmarshal(data, &positions); err != nil {
		// Malformed cache entries are a miss, never an error.
		slog.Warn("positions entry unreadable, treating as miss", "scenario", scenario, "err", err)
		return nil
	}
	return positions
}

func (s *FileStore) path(scenario string) string {
	// Scenarios are free text; escape them so they are filename-safe.
	return filepath.Join(s.baseDir, Key(url.PathEscape(scenario))+".json")
}

// sweep removes entries persisted under any schema version other than the
// current one.
func (s *FileStore) sweep() {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return
	}
	current := keyPrefix + "-" + SchemaVersion + "-"
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, keyPrefix+"-") {
			continue
		}
		if strings.HasPrefix(name, current) {
			continue
		}
		if err := os.Remove(filepath.Join(s.baseDir, name)); err != nil {
			slog.Warn("positions sweep failed for entry", "name", name, "err", err)
		}
	}
}
