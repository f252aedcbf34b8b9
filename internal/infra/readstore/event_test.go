//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"github.com/KingCastle/Javan/internal/infra"
	sqlc "github.com/KingCastle/Javan/internal/infra/sqlc/generated"
	"github.com/KingCastle/Javan/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEventReadQueries struct {
	mock.Mock
}

func (m *MockEventReadQueries) FindEventWithSeats(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindEventWithSeatsRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindEventWithSeatsRow), args.Error(1)
}

func (m *MockEventReadQueries) ListUpcomingEvents(ctx context.Context, db sqlc.DBTX, since pgtype.Timestamptz) ([]sqlc.ListUpcomingEventsRow, error) {
	args := m.Called(ctx, db, since)
	return args.Get(0).([]sqlc.ListUpcomingEventsRow), args.Error(1)
}

func TestEventFindByID(t *testing.T) {
	row := builder.NewEventBuilder().WithCapacity(80).WithBookedSeats(25).BuildInfraWithSeats()

	tests := []struct {
		name       string
		id         uuid.UUID
		mockReturn sqlc.FindEventWithSeatsRow
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "success - seats aggregated", id: row.ID, mockReturn: row},
		{name: "event not found", id: uuid.New(), mockReturn: sqlc.FindEventWithSeatsRow{}, mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", id: row.ID, mockReturn: sqlc.FindEventWithSeatsRow{}, mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockEventReadQueries)
			mockQueries.On("FindEventWithSeats", mock.Anything, mock.Anything, tt.id).Return(tt.mockReturn, tt.mockError)

			readStore := NewEventReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.id)

			if tt.wantKind != "" {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, 80, view.Capacity)
				assert.Equal(t, 25, view.BookedSeats)
				assert.Equal(t, tt.mockReturn.Title, view.Title)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestEventListFinishingSince(t *testing.T) {
	since := time.Date(2026, 7, 1, 23, 0, 0, 0, time.UTC)
	rows := []sqlc.ListUpcomingEventsRow{
		{ID: uuid.New(), Title: "Opera", Capacity: 120, BookedSeats: 118},
		{ID: uuid.New(), Title: "Ballet", Capacity: 60},
	}

	mockQueries := new(MockEventReadQueries)
	mockQueries.On("ListUpcomingEvents", mock.Anything, mock.Anything, pgtype.Timestamptz{Time: since, Valid: true}).Return(rows, nil)

	readStore := NewEventReadStore(mockQueries, nil)

	views, err := readStore.ListFinishingSince(context.Background(), since)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Opera", views[0].Title)
	assert.Equal(t, 118, views[0].BookedSeats)
	assert.Equal(t, 0, views[1].BookedSeats)
	mockQueries.AssertExpectations(t)
}
