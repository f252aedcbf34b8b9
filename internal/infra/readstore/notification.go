package readstore

import (
	"context"

	"github.com/KingCastle/Javan/internal/infra"
	sqlc "github.com/KingCastle/Javan/internal/infra/sqlc/generated"
	"github.com/KingCastle/Javan/internal/pkg/pgconv"
	"github.com/KingCastle/Javan/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadQueries interface {
	FindNotificationJobByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.NotificationJobs, error)
	ListNotificationJobsByTopic(ctx context.Context, db sqlc.DBTX, topic string) ([]sqlc.NotificationJobs, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *NotificationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.NotificationJobView, error) {
	row, err := s.queries.FindNotificationJobByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("notification job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find notification job", err)
	}

	return toNotificationJobViewFromRow(row), nil
}

// ListByTopic returns every job raised for one booking, oldest first.
func (s *NotificationReadStore) ListByTopic(ctx context.Context, topic string) ([]*queries.NotificationJobView, error) {
	rows, err := s.queries.ListNotificationJobsByTopic(ctx, s.db, topic)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notification jobs", err)
	}

	result := make([]*queries.NotificationJobView, len(rows))
	for i, row := range rows {
		result[i] = toNotificationJobViewFromRow(row)
	}
	return result, nil
}

func toNotificationJobViewFromRow(row sqlc.NotificationJobs) *queries.NotificationJobView {
	view := &queries.NotificationJobView{
		ID:        row.ID,
		Kind:      row.Kind,
		Topic:     row.Topic,
		Payload:   row.Payload,
		RunAt:     row.RunAt.Time,
		Attempts:  int(row.Attempts),
		Status:    row.Status,
		LastError: pgconv.StringPtrFromPgtype(row.LastError),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
	return view
}
