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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx, so fixtures can seed
// inside a test transaction as well as against the pool.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, name, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, strings.Split(email, "@")[0], role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

func CreateTestEvent(t *testing.T, db DBLike, title string, capacity int, priceCents int64, startAt, finishAt time.Time) uuid.UUID {
	t.Helper()

	eventID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO events (id, title, capacity, price_cents, start_at, finish_at) VALUES ($1, $2, $3, $4, $5, $6)",
		eventID, title, capacity, priceCents, startAt, finishAt)
	require.NoError(t, err)

	return eventID
}

// CreateTestBooking inserts an active booking directly, bypassing billing.
func CreateTestBooking(t *testing.T, db DBLike, userID, eventID uuid.UUID, seats int, ticket int) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	chargeID := "pi_seed_" + bookingID.String()[:8]
	_, err := db.Exec(context.Background(),
		`INSERT INTO bookings (id, user_id, event_id, charge_id, seats, total_cents, ticket, active)
		 SELECT $1, $2, $3, $4, $5, e.price_cents * $5, $6, true FROM events e WHERE e.id = $3`,
		bookingID, userID, eventID, chargeID, seats, ticket)
	require.NoError(t, err)

	return bookingID
}

func CountActiveSeats(t *testing.T, db DBLike, eventID uuid.UUID) int {
	t.Helper()

	var seats int
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(SUM(seats), 0) FROM bookings WHERE event_id = $1 AND active", eventID).Scan(&seats)
	require.NoError(t, err)
	return seats
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
