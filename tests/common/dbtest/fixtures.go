//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"meeting-rooms/internal/domain/room"
	"meeting-rooms/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// CreateTestUser upserts a user with a bcrypt-hashed DefaultPassword and returns its id.
func CreateTestUser(t *testing.T, db DBLike, name, email string) int64 {
	t.Helper()

	hash, err := password.HashPassword(DefaultPassword)
	require.NoError(t, err)

	var id int64
	err = db.QueryRow(context.Background(), `
		INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, password_hash = EXCLUDED.password_hash
		RETURNING id`, name, email, hash).Scan(&id)
	require.NoError(t, err)

	return id
}

// RoomIDByName looks up a seeded room.
func RoomIDByName(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), "SELECT id FROM rooms WHERE name = $1", name).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountBookings(t *testing.T, db DBLike, roomID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM bookings WHERE room_id = $1", roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

// CreateTestBooking inserts a booking row directly and returns its id.
func CreateTestBooking(t *testing.T, db DBLike, userID, roomID int64, date string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO bookings (user_id, room_id, room_name, date, total_price)
		SELECT $1, id, name, $3::date, price_per_hour FROM rooms WHERE id = $2
		RETURNING id`, userID, roomID, date).Scan(&id)
	require.NoError(t, err)
	return id
}

// inserts the room catalog needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	for _, r := range room.Seed {
		if _, err := pool.Exec(ctx,
			"INSERT INTO rooms (name, capacity, location, price_per_hour) VALUES ($1, $2, $3, $4)",
			r.Name, r.Capacity, r.Location, r.PricePerHour); err != nil {
			return err
		}
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
