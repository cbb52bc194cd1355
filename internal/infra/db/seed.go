package db

import (
	"context"
	"log/slog"

	"meeting-rooms/internal/domain/room"
	"meeting-rooms/internal/infra/query"
	"meeting-rooms/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DemoUser is an account created by the provisioning command.
type DemoUser struct {
	Name     string
	Email    string
	Password string
}

var DemoUsers = []DemoUser{
	{Name: "John Doe", Email: "john@nexus.com", Password: "password123"},
	{Name: "Jane Smith", Email: "jane@nexus.com", Password: "password123"},
}

type Seeder struct {
	pool    *pgxpool.Pool
	queries *query.Queries
	logger  *slog.Logger
}

func NewSeeder(pool *pgxpool.Pool, queries *query.Queries, logger *slog.Logger) *Seeder {
	return &Seeder{pool: pool, queries: queries, logger: logger}
}

// SeedRooms inserts the catalog only when the rooms table is empty.
func (s *Seeder) SeedRooms(ctx context.Context, rooms []room.Room) (int, error) {
	return RunInTx(ctx, s.pool, func(tx query.DBTX) (int, error) {
		count, err := s.queries.CountRooms(ctx, tx)
		if err != nil {
			return 0, errs.Wrap(err, "failed to count rooms")
		}
		if count > 0 {
			s.logger.Info("rooms already seeded", slog.Int64("count", count))
			return 0, nil
		}

		for _, r := range rooms {
			if _, err := s.queries.InsertRoom(ctx, tx, query.InsertRoomParams{
				Name:         r.Name,
				Capacity:     r.Capacity,
				Location:     r.Location,
				PricePerHour: r.PricePerHour,
			}); err != nil {
				return 0, errs.Wrapf(err, "failed to insert room %q", r.Name)
			}
		}
		s.logger.Info("rooms seeded", slog.Int("count", len(rooms)))
		return len(rooms), nil
	})
}

// SeedUsers upserts users by email. encode turns a plaintext password into the
// stored credential (bcrypt hash or plaintext, depending on deployment mode).
// With reset, existing users are removed first.
func (s *Seeder) SeedUsers(ctx context.Context, users []DemoUser, encode func(string) (string, error), reset bool) (int, error) {
	return RunInTx(ctx, s.pool, func(tx query.DBTX) (int, error) {
		if reset {
			removed, err := s.queries.DeleteAllUsers(ctx, tx)
			if err != nil {
				return 0, errs.Wrap(err, "failed to reset users")
			}
			s.logger.Info("users reset", slog.Int64("removed", removed))
		}

		for _, u := range users {
			credential, err := encode(u.Password)
			if err != nil {
				return 0, errs.Wrapf(err, "failed to encode password for %s", u.Email)
			}
			id, err := s.queries.UpsertUser(ctx, tx, query.UpsertUserParams{
				Name:         u.Name,
				Email:        u.Email,
				PasswordHash: credential,
			})
			if err != nil {
				return 0, errs.Wrapf(err, "failed to upsert user %s", u.Email)
			}
			s.logger.Info("user ready", slog.Int64("id", id), slog.String("email", u.Email))
		}
		return len(users), nil
	})
}
