// Package kv implements the key-value substrate on a PostgreSQL table.
package kv

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/nutrigym-backend/internal/adapter/postgres"
)

const table = "kv"

// Repo stores string values by key in the kv table.
type Repo struct {
	q   postgres.Querier
	now func() time.Time
}

// New creates a new kv repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q, now: time.Now}
}

// Get returns the value for key. ok is false when the key is absent.
func (r *Repo) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := postgres.Builder().
		Select("value").
		From(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	if err := r.q.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, postgres.MapError(err, "kv", key)
	}
	return value, true, nil
}

// Set upserts value under key.
func (r *Repo) Set(ctx context.Context, key, value string) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, value, r.now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "kv", key)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *Repo) Delete(ctx context.Context, key string) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "kv", key)
	}
	return nil
}
