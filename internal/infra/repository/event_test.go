//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KingCastle/Javan/internal/infra"
	"github.com/KingCastle/Javan/internal/infra/repository"
	"github.com/KingCastle/Javan/tests/common/builder"
	repositorymock "github.com/KingCastle/Javan/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventRepository_LockForBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success: locked row carries the active seat sum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewEventRepository(mockQueries, mockDB)

		eb := builder.NewEventBuilder().WithCapacity(40)
		row := eb.BuildInfra()
		gomock.InOrder(
			mockQueries.EXPECT().LockEventForBooking(ctx, mockDB, row.ID).Return(row, nil),
			mockQueries.EXPECT().SumActiveSeatsForEvent(ctx, mockDB, row.ID).Return(int32(33), nil),
		)

		ev, err := repo.LockForBooking(ctx, mockDB, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, ev.ID())
		assert.Equal(t, 40, ev.Capacity())
		assert.Equal(t, 33, ev.BookedSeats())
		assert.Equal(t, 7, ev.SeatsRemaining())
		assert.WithinDuration(t, eb.StartAt, ev.StartAt(), time.Second)
	})

	t.Run("error: event not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewEventRepository(mockQueries, mockDB)
		id := uuid.New()

		mockQueries.EXPECT().LockEventForBooking(ctx, mockDB, id).Return(builder.NewEventBuilder().BuildInfra(), pgx.ErrNoRows)

		ev, err := repo.LockForBooking(ctx, mockDB, id)

		assert.Nil(t, ev)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: seat sum fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewEventRepository(mockQueries, mockDB)
		row := builder.NewEventBuilder().BuildInfra()

		mockQueries.EXPECT().LockEventForBooking(ctx, mockDB, row.ID).Return(row, nil)
		mockQueries.EXPECT().SumActiveSeatsForEvent(ctx, mockDB, row.ID).Return(int32(0), errors.New("lock timeout"))

		_, err := repo.LockForBooking(ctx, mockDB, row.ID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
