package positions

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/soyoon/agentgraph/internal/db"
	"github.com/soyoon/agentgraph/internal/graph"
)

// PostgresStore keeps position maps in the layout_positions table as JSONB.
type PostgresStore struct {
	db *db.DB
}

// NewPostgresStore sweeps rows persisted under previous schema versions and
// returns the store. The sweep itself is best-effort.
func NewPostgresStore(ctx context.Context, database *db.DB) *PostgresStore {
	s := &PostgresStore{db: database}
	current := keyPrefix + "-" + SchemaVersion + "-%"
	stale := keyPrefix + "-%"
	res, err := database.Pool.ExecContext(ctx,
		`DELETE FROM layout_positions WHERE cache_key LIKE $1 AND cache_key NOT LIKE $2`,
		stale, current)
	if err != nil {
		slog.Warn("positions sweep failed", "err", err)
		return s
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		slog.Info("swept stale layout positions", "rows", n, "version", SchemaVersion)
	}
	return s
}

func (s *PostgresStore) Save(ctx context.Context, scenario string, positions map[string]graph.Position) {
	data, err := json.Marshal(positions)
	if err != nil {
		slog.Warn("positions save skipped", "scenario", scenario, "err", err)
		return
	}
	_, err = s.db.Pool.ExecContext(ctx, `
		INSERT INTO layout_positions (id, cache_key, positions, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (cache_key) DO UPDATE SET positions = $3, updated_at = NOW()`,
		uuid.NewString(), Key(scenario), data)
	if err != nil {
		slog.Warn("positions save failed", "scenario", scenario, "err", err)
	}
}

func (s *PostgresStore) Load(ctx context.Context, scenario string) map[string]graph.Position {
	var data []byte
	err := s.db.Pool.QueryRowContext(ctx,
		`SELECT positions FROM layout_positions WHERE cache_key = $1`, Key(scenario)).Scan(&data)
	if err != nil {
		return nil
	}
	var positions map[string]graph.Position
	if err := json.Unmarshal(data, &positions); err != nil {
		slog.Warn("positions entry unreadable, treating as miss", "scenario", scenario, "err", err)
		return nil
	}
	return positions
}
