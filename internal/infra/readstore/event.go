package readstore

import (
	"context"
	"time"

	"github.com/KingCastle/Javan/internal/infra"
	sqlc "github.com/KingCastle/Javan/internal/infra/sqlc/generated"
	"github.com/KingCastle/Javan/internal/pkg/pgconv"
	"github.com/KingCastle/Javan/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventReadQueries interface {
	FindEventWithSeats(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindEventWithSeatsRow, error)
	ListUpcomingEvents(ctx context.Context, db sqlc.DBTX, since pgtype.Timestamptz) ([]sqlc.ListUpcomingEventsRow, error)
}

type EventReadStore struct {
	queries EventReadQueries
	db      sqlc.DBTX
}

func NewEventReadStore(queries EventReadQueries, db sqlc.DBTX) *EventReadStore {
	return &EventReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	row, err := r.queries.FindEventWithSeats(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}

	return &queries.EventView{
		ID:          row.ID,
		Title:       row.Title,
		Capacity:    int(row.Capacity),
		PriceCents:  row.PriceCents,
		StartAt:     row.StartAt.Time,
		FinishAt:    row.FinishAt.Time,
		BookedSeats: int(row.BookedSeats),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}, nil
}

func (r *EventReadStore) ListFinishingSince(ctx context.Context, since time.Time) ([]*queries.EventView, error) {
	rows, err := r.queries.ListUpcomingEvents(ctx, r.db, pgconv.TimeToPgtype(since))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming events", err)
	}

	result := make([]*queries.EventView, len(rows))
	for i, row := range rows {
		result[i] = &queries.EventView{
			ID:          row.ID,
			Title:       row.Title,
			Capacity:    int(row.Capacity),
			PriceCents:  row.PriceCents,
			StartAt:     row.StartAt.Time,
			FinishAt:    row.FinishAt.Time,
			BookedSeats: int(row.BookedSeats),
			CreatedAt:   row.CreatedAt.Time,
			UpdatedAt:   row.UpdatedAt.Time,
		}
	}
	return result, nil
}
