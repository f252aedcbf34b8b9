//go:build unit || e2e

package builder

import (
	"time"

	"github.com/KingCastle/Javan/internal/domain/event"
	sqlc "github.com/KingCastle/Javan/internal/infra/sqlc/generated"
	"github.com/KingCastle/Javan/internal/usecase/queries"
	"github.com/KingCastle/Javan/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventBuilder struct {
	ID          uuid.UUID
	Title       string
	Capacity    int
	PriceCents  int64
	StartAt     time.Time
	FinishAt    time.Time
	BookedSeats int
}

func NewEventBuilder() *EventBuilder {
	start := time.Now().Add(7 * 24 * time.Hour).Truncate(time.Hour)
	return &EventBuilder{
		ID:         uuid.New(),
		Title:      "Summer Concert",
		Capacity:   100,
		PriceCents: 2500,
		StartAt:    start,
		FinishAt:   start.Add(3 * time.Hour),
	}
}

func (e *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(e)
	return e
}

// Build methods
func (e *EventBuilder) BuildDomain() (*event.Event, error) {
	return event.NewEvent(e.Title, e.Capacity, e.PriceCents, e.StartAt, e.FinishAt)
}

func (e *EventBuilder) BuildEntity() *event.Event {
	return event.ReconstructEvent(e.ID, e.Title, e.Capacity, e.PriceCents, e.StartAt, e.FinishAt, e.BookedSeats)
}

func (e *EventBuilder) BuildInfra() sqlc.Events {
	now := time.Now()
	return sqlc.Events{
		ID:         e.ID,
		Title:      e.Title,
		Capacity:   int32(e.Capacity),
		PriceCents: e.PriceCents,
		StartAt:    pgtype.Timestamptz{Time: e.StartAt, Valid: true},
		FinishAt:   pgtype.Timestamptz{Time: e.FinishAt, Valid: true},
		CreatedAt:  pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (e *EventBuilder) BuildInfraWithSeats() sqlc.FindEventWithSeatsRow {
	row := e.BuildInfra()
	return sqlc.FindEventWithSeatsRow{
		ID:          row.ID,
		Title:       row.Title,
		Capacity:    row.Capacity,
		PriceCents:  row.PriceCents,
		StartAt:     row.StartAt,
		FinishAt:    row.FinishAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		BookedSeats: int32(e.BookedSeats),
	}
}

func (e *EventBuilder) BuildReadModel() *queries.EventView {
	now := time.Now()
	return &queries.EventView{
		ID:             e.ID,
		Title:          e.Title,
		Capacity:       e.Capacity,
		PriceCents:     e.PriceCents,
		StartAt:        e.StartAt,
		FinishAt:       e.FinishAt,
		BookedSeats:    e.BookedSeats,
		SeatsRemaining: e.Capacity - e.BookedSeats,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (e *EventBuilder) BuildSnapshot() *shared.EventSnapshot {
	return &shared.EventSnapshot{
		ID:          e.ID,
		Title:       e.Title,
		Capacity:    e.Capacity,
		PriceCents:  e.PriceCents,
		StartAt:     e.StartAt,
		FinishAt:    e.FinishAt,
		BookedSeats: e.BookedSeats,
	}
}

// Fluent builder methods
func (e *EventBuilder) WithID(id uuid.UUID) *EventBuilder {
	e.ID = id
	return e
}

func (e *EventBuilder) WithTitle(title string) *EventBuilder {
	e.Title = title
	return e
}

func (e *EventBuilder) WithCapacity(capacity int) *EventBuilder {
	e.Capacity = capacity
	return e
}

func (e *EventBuilder) WithPriceCents(price int64) *EventBuilder {
	e.PriceCents = price
	return e
}

func (e *EventBuilder) WithBookedSeats(seats int) *EventBuilder {
	e.BookedSeats = seats
	return e
}

func (e *EventBuilder) WithSchedule(start, finish time.Time) *EventBuilder {
	e.StartAt = start
	e.FinishAt = finish
	return e
}

func (e *EventBuilder) FinishedDaysAgo(days int) *EventBuilder {
	finish := time.Now().AddDate(0, 0, -days)
	e.StartAt = finish.Add(-2 * time.Hour)
	e.FinishAt = finish
	return e
}
