// Package profile reads account entitlement from the profiles table.
package profile

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/nutrigym-backend/internal/adapter/postgres"
)

// Repo answers entitlement lookups.
type Repo struct {
	q postgres.Querier
}

// New creates a new profile repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Entitled reports whether the profile row for userID has activo = true.
// A missing row returns an error wrapping domain.ErrNotFound; NULL is false.
func (r *Repo) Entitled(ctx context.Context, userID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder().
		Select("activo").
		From("profiles").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return false, err
	}

	var activo pgtype.Bool
	if err := r.q.QueryRow(ctx, query, args...).Scan(&activo); err != nil {
		return false, postgres.MapError(err, "profile", userID.String())
	}
	return activo.Valid && activo.Bool, nil
}
