//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KingCastle/Javan/internal/infra"
	"github.com/KingCastle/Javan/internal/infra/repository"
	sqlc "github.com/KingCastle/Javan/internal/infra/sqlc/generated"
	"github.com/KingCastle/Javan/internal/usecase/shared"
	repositorymock "github.com/KingCastle/Javan/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newNotificationRepo(t *testing.T) (*repository.NotificationRepository, *repositorymock.MockNotificationWriteQueries, *mockDBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	return repository.NewNotificationRepository(mockQueries, mockDB), mockQueries, mockDB
}

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2026, 6, 1, 10, 1, 0, 0, time.UTC)

	t.Run("success: job queued in the caller's transaction", func(t *testing.T) {
		repo, mockQueries, _ := newNotificationRepo(t)
		tx := &mockDBTX{}
		id := uuid.New()

		mockQueries.EXPECT().
			CreateNotificationJob(ctx, tx, sqlc.CreateNotificationJobParams{
				Kind:    "booking.admin_alert",
				Topic:   "topic-1",
				Payload: []byte(`{"seats":2}`),
				RunAt:   pgtype.Timestamptz{Time: runAt, Valid: true},
				Status:  repository.JobStatusQueued,
			}).
			Return(id, nil)

		got, err := repo.CreateJob(ctx, tx, "booking.admin_alert", "topic-1", []byte(`{"seats":2}`), runAt)

		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		repo, mockQueries, mockDB := newNotificationRepo(t)
		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))

		got, err := repo.CreateJob(ctx, mockDB, "booking.admin_alert", "topic-1", nil, runAt)

		assert.Equal(t, uuid.Nil, got)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestNotificationRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	lease := now.Add(5 * time.Minute)

	t.Run("success: rows become jobs", func(t *testing.T) {
		repo, mockQueries, mockDB := newNotificationRepo(t)
		row := sqlc.NotificationJobs{
			ID:       uuid.New(),
			Kind:     "booking.user_confirmation",
			Topic:    "b-1",
			Payload:  []byte(`{}`),
			Attempts: 2,
			Status:   repository.JobStatusQueued,
		}
		mockQueries.EXPECT().
			ClaimDueNotificationJobs(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error) {
				assert.True(t, arg.DueBefore.Time.Equal(now))
				assert.True(t, arg.LeaseUntil.Time.Equal(lease))
				assert.Equal(t, int32(25), arg.BatchSize)
				return []sqlc.NotificationJobs{row}, nil
			})

		jobs, err := repo.ClaimDue(ctx, now, lease, 25)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, row.ID, jobs[0].ID)
		assert.Equal(t, shared.NotificationBookingConfirmation, jobs[0].Kind)
		assert.Equal(t, 2, jobs[0].Attempts)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		repo, mockQueries, mockDB := newNotificationRepo(t)
		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, gomock.Any()).Return(nil, errors.New("database connection error"))

		_, err := repo.ClaimDue(ctx, now, lease, 25)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestNotificationRepository_MarkSent(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "success: job settled", affected: 1, want: true},
		{name: "success: already settled elsewhere", affected: 0, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newNotificationRepo(t)
			id := uuid.New()
			mockQueries.EXPECT().MarkNotificationJobSent(ctx, mockDB, id).Return(tc.affected, nil)

			ok, err := repo.MarkSent(ctx, id)

			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestNotificationRepository_RecordFailure(t *testing.T) {
	ctx := context.Background()
	retryAt := time.Date(2026, 6, 1, 10, 4, 0, 0, time.UTC)

	repo, mockQueries, mockDB := newNotificationRepo(t)
	id := uuid.New()
	mockQueries.EXPECT().
		RecordNotificationJobFailure(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.RecordNotificationJobFailureParams) (int64, error) {
			assert.Equal(t, id, arg.ID)
			assert.Equal(t, repository.JobStatusFailed, arg.Status)
			assert.Equal(t, "smtp: 550 mailbox unavailable", arg.LastError.String)
			assert.True(t, arg.RunAt.Time.Equal(retryAt))
			return 1, nil
		})

	err := repo.RecordFailure(ctx, id, repository.JobStatusFailed, "smtp: 550 mailbox unavailable", retryAt)

	require.NoError(t, err)
}
