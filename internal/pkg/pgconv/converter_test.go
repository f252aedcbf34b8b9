//go:build unit

package pgconv_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/KingCastle/Javan/internal/pkg/errs"
	"github.com/KingCastle/Javan/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestStringPtrRoundTrip(t *testing.T) {
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(nil)))

	charge := "pi_123"
	got := pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(&charge))
	if assert.NotNil(t, got) {
		assert.Equal(t, charge, *got)
	}
}

func TestTimeToPgtype(t *testing.T) {
	now := time.Date(2026, 4, 1, 19, 30, 0, 0, time.UTC)
	ts := pgconv.TimeToPgtype(now)
	assert.True(t, ts.Valid)
	assert.Equal(t, now, ts.Time)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(errs.Wrap(sql.ErrNoRows, "find booking")))
	assert.False(t, pgconv.IsNoRows(errs.New("timeout")))
}

func TestSQLStateAndRetryable(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		state     string
		retryable bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, state: "40001", retryable: true},
		{name: "wrapped deadlock", err: errs.Wrap(&pgconn.PgError{Code: "40P01"}, "lock event"), state: "40P01", retryable: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, state: "23505"},
		{name: "not a server error", err: errs.New("dial tcp: refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.state, pgconv.SQLState(tt.err))
			assert.Equal(t, tt.retryable, pgconv.IsRetryable(tt.err))
		})
	}
}
