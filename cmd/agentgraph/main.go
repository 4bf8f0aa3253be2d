package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/soyoon/agentgraph/internal/api"
	"github.com/soyoon/agentgraph/internal/config"
	"github.com/soyoon/agentgraph/internal/db"
	"github.com/soyoon/agentgraph/internal/generate"
	"github.com/soyoon/agentgraph/internal/model"
	"github.com/soyoon/agentgraph/internal/positions"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serve()
		return
	}
	fmt.Println("agentgraph v0.1.0")
	fmt.Println("Usage: agentgraph serve")
}

func serve() {
	// Local overrides for provider keys; absence is fine.
	godotenv.Load()

	cfg, err := config.LoadDefault()
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}

	store, err := buildStore(context.Background(), cfg)
	if err != nil {
		slog.Error("position store error", "err", err)
		os.Exit(1)
	}

	srv := api.NewServer(buildGenerator(cfg), store)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	slog.Info("starting agentgraph server", "addr", addr, "positions", cfg.Positions.Backend)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}

// buildGenerator returns nil when no usable provider is configured; the
// API then serves layout and samples without generation.
func buildGenerator(cfg *config.Config) *generate.Generator {
	name := cfg.Generate.Provider
	providerCfg, ok := cfg.Providers[name]
	if !ok {
		slog.Warn("generate provider not configured; generation disabled", "provider", name)
		return nil
	}
	llm, ok := model.BuildLLM(name, providerCfg)
	if !ok {
		slog.Warn("unsupported provider type; generation disabled", "provider", name, "type", providerCfg.Type)
		return nil
	}
	slog.Info("generation enabled", "provider", name, "model", cfg.Generate.Model)
	return generate.New(llm, cfg.Generate.Model)
}

func buildStore(ctx context.Context, cfg *config.Config) (positions.Store, error) {
	switch cfg.Positions.Backend {
	case "memory":
		return positions.NewMemoryStore(nil), nil
	case "file", "":
		return positions.NewFileStore(cfg.Positions.Dir)
	case "postgres":
		database, err := db.New(ctx, cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		if err := database.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		return positions.NewPostgresStore(ctx, database), nil
	default:
		return nil, fmt.Errorf("unknown positions backend %q", cfg.Positions.Backend)
	}
}
