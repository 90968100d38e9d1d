package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/heartmarshall/nutrigym-backend/internal/adapter/kv"
	"github.com/heartmarshall/nutrigym-backend/internal/adapter/postgres"
	pgkv "github.com/heartmarshall/nutrigym-backend/internal/adapter/postgres/kv"
	"github.com/heartmarshall/nutrigym-backend/internal/adapter/postgres/migrations"
	"github.com/heartmarshall/nutrigym-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/nutrigym-backend/internal/config"
)

// kvStore is the key-value substrate behind the persistence mirror.
type kvStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// pgStore adds a pool ping to the postgres kv repo.
type pgStore struct {
	*pgkv.Repo
	pool *pgxpool.Pool
}

func (s pgStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// resources holds what Run must release on exit.
type resources struct {
	pool    *pgxpool.Pool
	closers []func()
}

func (r *resources) close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

// openDatabase connects to PostgreSQL and applies pending migrations.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	n, err := migrations.Up(ctx, db, logger)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	logger.InfoContext(ctx, "database ready", slog.Int("migrations_applied", n))
	return pool, nil
}

// openStorage selects the kv substrate named by cfg.Storage.Driver.
func openStorage(ctx context.Context, cfg *config.Config, res *resources, logger *slog.Logger) (kvStore, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		logger.WarnContext(ctx, "using in-memory storage; the journal is lost on exit")
		return kv.NewMemory(), nil

	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.Storage.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		res.closers = append(res.closers, func() {
			if err := store.Close(); err != nil {
				logger.Error("close sqlite", slog.String("error", err.Error()))
			}
		})
		return store, nil

	case config.DriverPostgres:
		return pgStore{Repo: pgkv.New(res.pool), pool: res.pool}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// Migrate applies pending PostgreSQL migrations and exits.
func Migrate(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)
	if cfg.Database.DSN == "" {
		return fmt.Errorf("app.Migrate: database.dsn is required")
	}

	pool, err := openDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("app.Migrate: %w", err)
	}
	pool.Close()
	return nil
}
