package repository

import (
	"context"

	"meeting-rooms/internal/domain/user"
	"meeting-rooms/internal/infra"
	"meeting-rooms/internal/infra/query"
	"meeting-rooms/internal/pkg/pgconv"
)

type UserQueries interface {
	FindUserByEmail(ctx context.Context, db query.DBTX, email string) (query.User, error)
}

type UserReadStore struct {
	queries UserQueries
	db      query.DBTX
}

func NewUserReadStore(queries UserQueries, db query.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, login)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return user.Reconstruct(row.ID, row.Name, row.Email, row.PasswordHash, pgconv.TimeFromTimestamp(row.CreatedAt)), nil
}
