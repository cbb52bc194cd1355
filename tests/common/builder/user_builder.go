//go:build unit || e2e

package builder

import (
	"time"

	"meeting-rooms/internal/domain/user"
	"meeting-rooms/internal/infra/query"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    1,
		Name:  "John Doe",
		Email: "john@nexus.com",
		// bcrypt of "password123"
		PasswordHash: "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A.",
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() *user.User {
	return user.Reconstruct(u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt)
}

func (u *UserBuilder) BuildInfra() query.User {
	return query.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    pgtype.Timestamp{Time: u.CreatedAt, Valid: true},
	}
}
