package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueKey returns a kv key that does not collide with other tests.
func UniqueKey(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedProfile inserts a profiles row. A nil activo stores NULL.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, activo *bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO profiles (id, activo) VALUES ($1, $2)`,
		id, activo,
	)
	if err != nil {
		t.Fatalf("SeedProfile: %v", err)
	}
	return id
}
