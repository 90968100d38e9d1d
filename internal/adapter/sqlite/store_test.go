package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, path string) *Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := Open(context.Background(), path, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_Lifecycle(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, ":memory:")
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "nutrigym_logsByDate")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "nutrigym_logsByDate", "{}"))
	require.NoError(t, s.Set(ctx, "nutrigym_logsByDate", `{"2024-03-15":{}}`))

	v, ok, err := s.Get(ctx, "nutrigym_logsByDate")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"2024-03-15":{}}`, v)

	require.NoError(t, s.Delete(ctx, "nutrigym_logsByDate"))
	_, ok, err = s.Get(ctx, "nutrigym_logsByDate")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SurvivesReopen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nutrigym.db")
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	first, err := Open(ctx, path, logger)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "nutrigym_profile_active", "true"))
	require.NoError(t, first.Close())

	second := newTestStore(t, path)
	v, ok, err := second.Get(ctx, "nutrigym_profile_active")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestStore_ClosedDatabase(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := Open(context.Background(), ":memory:", logger)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.Error(t, s.Set(context.Background(), "k", "v"))
}
