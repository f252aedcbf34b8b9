package queries

import (
	"context"
	"time"

	"github.com/KingCastle/Javan/internal/domain/event"
	"github.com/KingCastle/Javan/internal/infra"
	"github.com/KingCastle/Javan/internal/pkg/clock"
	"github.com/KingCastle/Javan/internal/pkg/config"
	"github.com/KingCastle/Javan/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=event.go -destination=../../../tests/mock/queries/event_mock.go -package=queriesmock

var ErrEventNotFound = errs.New("event not found")

type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	ListFinishingSince(ctx context.Context, since time.Time) ([]*EventView, error)
}

type EventQueries interface {
	ListUpcoming(ctx context.Context) ([]*EventView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
}

type eventQueriesImpl struct {
	repo  EventReadStore
	clock clock.Clock
	loc   *time.Location
}

func NewEventQueries(repo EventReadStore, clk clock.Clock, cfg config.Config) EventQueries {
	return &eventQueriesImpl{
		repo:  repo,
		clock: clk,
		loc:   cfg.Booking.Location(),
	}
}

// ListUpcoming includes events finishing today, which are still bookable.
func (q *eventQueriesImpl) ListUpcoming(ctx context.Context) ([]*EventView, error) {
	rows, err := q.repo.ListFinishingSince(ctx, clock.StartOfDay(q.clock.Now(), q.loc))
	if err != nil {
		return nil, err
	}
	for _, ev := range rows {
		q.decorate(ev)
	}
	return rows, nil
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	ev, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	q.decorate(ev)
	return ev, nil
}

func (q *eventQueriesImpl) decorate(v *EventView) {
	ev := event.ReconstructEvent(v.ID, v.Title, v.Capacity, v.PriceCents, v.StartAt, v.FinishAt, v.BookedSeats)
	v.SeatsRemaining = ev.SeatsRemaining()
	v.Expired = ev.IsExpired(q.clock.Now(), q.loc)
}
