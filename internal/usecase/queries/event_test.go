//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/KingCastle/Javan/internal/infra"
	"github.com/KingCastle/Javan/internal/pkg/clock"
	"github.com/KingCastle/Javan/internal/pkg/config"
	"github.com/KingCastle/Javan/internal/usecase/queries"
	"github.com/KingCastle/Javan/tests/common/builder"
	queriesmock "github.com/KingCastle/Javan/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newEventQueries(t *testing.T, now time.Time) (queries.EventQueries, *queriesmock.MockEventReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockEventReadStore(ctrl)
	return queries.NewEventQueries(store, clock.NewMockClock(now), config.NewTestConfig()), store
}

func TestEventQueriesListUpcoming(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	// 00:30 in London is still the previous day in UTC
	now := time.Date(2026, 7, 2, 0, 30, 0, 0, london)
	startOfDay := time.Date(2026, 7, 2, 0, 0, 0, 0, london)

	q, store := newEventQueries(t, now)

	upcoming := builder.NewEventBuilder().
		WithCapacity(50).
		WithBookedSeats(12).
		WithSchedule(now.AddDate(0, 0, 3), now.AddDate(0, 0, 3).Add(2*time.Hour)).
		BuildReadModel()
	soldOut := builder.NewEventBuilder().
		WithCapacity(10).
		WithBookedSeats(10).
		WithSchedule(now.AddDate(0, 0, 5), now.AddDate(0, 0, 5).Add(2*time.Hour)).
		BuildReadModel()

	store.EXPECT().
		ListFinishingSince(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, since time.Time) ([]*queries.EventView, error) {
			assert.True(t, since.Equal(startOfDay), "since = %s", since)
			return []*queries.EventView{upcoming, soldOut}, nil
		})

	got, err := q.ListUpcoming(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 38, got[0].SeatsRemaining)
	assert.False(t, got[0].Expired)
	assert.Equal(t, 0, got[1].SeatsRemaining)
}

func TestEventQueriesGetByID(t *testing.T) {
	now := time.Date(2026, 7, 2, 12, 0, 0, 0, time.UTC)

	t.Run("finished yesterday is expired", func(t *testing.T) {
		q, store := newEventQueries(t, now)
		view := builder.NewEventBuilder().
			WithSchedule(now.AddDate(0, 0, -1).Add(-3*time.Hour), now.AddDate(0, 0, -1)).
			BuildReadModel()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetByID(context.Background(), view.ID)

		require.NoError(t, err)
		assert.True(t, got.Expired)
	})

	t.Run("finishing later today is not expired", func(t *testing.T) {
		q, store := newEventQueries(t, now)
		view := builder.NewEventBuilder().
			WithSchedule(now.Add(-time.Hour), now.Add(5*time.Hour)).
			BuildReadModel()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetByID(context.Background(), view.ID)

		require.NoError(t, err)
		assert.False(t, got.Expired)
	})

	t.Run("missing event", func(t *testing.T) {
		q, store := newEventQueries(t, now)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("event not found", nil, infra.KindNotFound))

		_, err := q.GetByID(context.Background(), id)

		assert.ErrorIs(t, err, queries.ErrEventNotFound)
	})
}
