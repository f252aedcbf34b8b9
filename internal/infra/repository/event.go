package repository

import (
	"context"

	"github.com/KingCastle/Javan/internal/domain/event"
	"github.com/KingCastle/Javan/internal/infra"
	"github.com/KingCastle/Javan/internal/infra/repository/converter"
	sqlc "github.com/KingCastle/Javan/internal/infra/sqlc/generated"
	"github.com/KingCastle/Javan/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=event.go -destination=../../../tests/mock/repository/event_mock.go -package=repositorymock

type EventWriteQueries interface {
	LockEventForBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Events, error)
	SumActiveSeatsForEvent(ctx context.Context, db sqlc.DBTX, eventID uuid.UUID) (int32, error)
}

type EventRepository struct {
	queries EventWriteQueries
	db      sqlc.DBTX
}

func NewEventRepository(queries EventWriteQueries, db sqlc.DBTX) *EventRepository {
	return &EventRepository{
		queries: queries,
		db:      db,
	}
}

// LockForBooking must run inside a transaction; the row lock is held until it ends.
func (r *EventRepository) LockForBooking(ctx context.Context, tx sqlc.DBTX, eventID uuid.UUID) (*event.Event, error) {
	row, err := r.queries.LockEventForBooking(ctx, tx, eventID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock event", err)
	}

	booked, err := r.queries.SumActiveSeatsForEvent(ctx, tx, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sum booked seats", err)
	}

	return converter.EventFromLockedRow(row, booked), nil
}
