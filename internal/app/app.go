// Package app wires the analyzer object graph: configuration, logger,
// PostgreSQL pool, suffix registry, and the engine service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/prakritlab/prakrit-morph/internal/adapter/postgres"
	"github.com/prakritlab/prakrit-morph/internal/adapter/postgres/attested"
	"github.com/prakritlab/prakrit-morph/internal/adapter/postgres/feedback"
	"github.com/prakritlab/prakrit-morph/internal/config"
	"github.com/prakritlab/prakrit-morph/internal/domain"
	"github.com/prakritlab/prakrit-morph/internal/engine"
	"github.com/prakritlab/prakrit-morph/internal/registry"
)

// App is the assembled analyzer. Embedding callers construct it once at
// startup and hand Analyzer to whatever surface they serve.
type App struct {
	Config   *config.Config
	Log      *slog.Logger
	Pool     *pgxpool.Pool
	Registry *registry.Registry
	Analyzer *engine.Service
}

// New loads configuration and builds the full analyzer: logger, suffix
// registry (embedded table or the configured file), database pool, store
// adapters, and the engine service.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting analyzer",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	reg, err := loadRegistry(cfg.Analyzer)
	if err != nil {
		return nil, err
	}
	logger.Info("suffix registry loaded",
		slog.Int("noun_entries", reg.Len(domain.WordClassNoun)),
		slog.Int("verb_entries", reg.Len(domain.WordClassVerb)),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	analyzer := engine.NewService(
		logger,
		reg,
		attested.New(pool),
		feedback.New(pool),
		engine.Config{
			TopK:       cfg.Analyzer.TopK,
			MaxMatches: cfg.Analyzer.MaxMatches,
		},
	)

	return &App{
		Config:   cfg,
		Log:      logger,
		Pool:     pool,
		Registry: reg,
		Analyzer: analyzer,
	}, nil
}

// Close releases the App's resources.
func (a *App) Close() {
	a.Pool.Close()
}

func loadRegistry(cfg config.AnalyzerConfig) (*registry.Registry, error) {
	if cfg.SuffixTable == "" {
		return registry.Default()
	}
	f, err := os.Open(cfg.SuffixTable)
	if err != nil {
		return nil, fmt.Errorf("open suffix table: %w", err)
	}
	defer f.Close()
	return registry.Load(f)
}
