//go:build unit

package readstore

import (
	"context"
	"testing"

	"github.com/KingCastle/Javan/internal/infra"
	sqlc "github.com/KingCastle/Javan/internal/infra/sqlc/generated"
	"github.com/KingCastle/Javan/internal/usecase/queries"
	"github.com/KingCastle/Javan/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingReadQueries struct {
	mock.Mock
}

func (m *MockBookingReadQueries) FindBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindBookingByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindBookingByIDRow), args.Error(1)
}

func (m *MockBookingReadQueries) ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.ListBookingsRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListBookingsRow), args.Error(1)
}

func (m *MockBookingReadQueries) CountBookings(ctx context.Context, db sqlc.DBTX) (int64, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingReadQueries) ListBookingsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserParams) ([]sqlc.ListBookingsByUserRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListBookingsByUserRow), args.Error(1)
}

func (m *MockBookingReadQueries) CountBookingsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(int64), args.Error(1)
}

func TestBookingFindByID(t *testing.T) {
	row := builder.NewBookingBuilder().WithTicket(2468).BuildInfra()
	refundedRow := builder.NewBookingBuilder().AsRefunded("re_99").BuildInfra()

	tests := []struct {
		name       string
		id         uuid.UUID
		mockReturn sqlc.FindBookingByIDRow
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "success - active booking", id: row.ID, mockReturn: row},
		{name: "success - refunded booking", id: refundedRow.ID, mockReturn: refundedRow},
		{name: "booking not found", id: uuid.New(), mockReturn: sqlc.FindBookingByIDRow{}, mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", id: row.ID, mockReturn: sqlc.FindBookingByIDRow{}, mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockBookingReadQueries)
			mockQueries.On("FindBookingByID", mock.Anything, mock.Anything, tt.id).Return(tt.mockReturn, tt.mockError)

			readStore := NewBookingReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.id)

			if tt.wantKind != "" {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn.ID, view.ID)
				assert.Equal(t, int(tt.mockReturn.Ticket), view.Ticket)
				assert.Equal(t, tt.mockReturn.UserEmail, view.UserEmail)
				assert.Equal(t, tt.mockReturn.EventTitle, view.EventTitle)
				assert.Equal(t, tt.mockReturn.Active, view.Active)
				assert.Equal(t, tt.mockReturn.RefundID.Valid, view.RefundID != nil)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestBookingList(t *testing.T) {
	filter := queries.BookingListFilter{SortBy: "ticket", Desc: false, Limit: 50, Offset: 100}
	row := builder.NewBookingBuilder().BuildInfra()

	mockQueries := new(MockBookingReadQueries)
	mockQueries.On("ListBookings", mock.Anything, mock.Anything, sqlc.ListBookingsParams{
		SortBy:     "ticket",
		SortDesc:   false,
		PageLimit:  50,
		PageOffset: 100,
	}).Return([]sqlc.ListBookingsRow{sqlc.ListBookingsRow(row)}, nil)
	mockQueries.On("CountBookings", mock.Anything, mock.Anything).Return(int64(101), nil)

	readStore := NewBookingReadStore(mockQueries, nil)

	views, err := readStore.List(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, row.ID, views[0].ID)

	total, err := readStore.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(101), total)

	mockQueries.AssertExpectations(t)
}

func TestBookingListByUser(t *testing.T) {
	userID := uuid.New()
	row := builder.NewBookingBuilder().WithUserID(userID).BuildInfra()

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("ListBookingsByUser", mock.Anything, mock.Anything, sqlc.ListBookingsByUserParams{
			UserID:     userID,
			SortBy:     "created_at",
			SortDesc:   true,
			PageLimit:  20,
			PageOffset: 0,
		}).Return([]sqlc.ListBookingsByUserRow{sqlc.ListBookingsByUserRow(row)}, nil)
		mockQueries.On("CountBookingsByUser", mock.Anything, mock.Anything, userID).Return(int64(1), nil)

		readStore := NewBookingReadStore(mockQueries, nil)

		views, err := readStore.ListByUser(context.Background(), userID, queries.BookingListFilter{SortBy: "created_at", Desc: true, Limit: 20})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, userID, views[0].UserID)

		total, err := readStore.CountByUser(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("ListBookingsByUser", mock.Anything, mock.Anything, mock.Anything).Return([]sqlc.ListBookingsByUserRow(nil), assert.AnError)

		readStore := NewBookingReadStore(mockQueries, nil)

		views, err := readStore.ListByUser(context.Background(), userID, queries.BookingListFilter{})
		assert.Nil(t, views)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
