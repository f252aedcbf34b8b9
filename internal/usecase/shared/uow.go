package shared

import (
	"context"
	"time"

	"github.com/KingCastle/Javan/internal/domain/booking"
	"github.com/KingCastle/Javan/internal/domain/event"
	sqlc "github.com/KingCastle/Javan/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one write transaction, retried as a whole when it
	// loses a serialization race. fn must not have side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads reads outside any transaction, for pre-checks.
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Events() EventRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	EventByID(ctx context.Context, id uuid.UUID) (*EventSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

// Write-side snapshots keep commands independent of read-side view types
type EventSnapshot struct {
	ID          uuid.UUID
	Title       string
	Capacity    int
	PriceCents  int64
	StartAt     time.Time
	FinishAt    time.Time
	BookedSeats int
}

type BookingSnapshot struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	UserEmail    string
	UserName     string
	EventID      uuid.UUID
	EventTitle   string
	EventStartAt time.Time
	ChargeID     *string
	RefundID     *string
	Seats        int
	TotalCents   int64
	Ticket       int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserSnapshot struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventRepository interface {
	// LockForBooking takes the event row lock and reloads the active-seat sum under it.
	LockForBooking(ctx context.Context, tx sqlc.DBTX, eventID uuid.UUID) (*event.Event, error)
}

type BookingRepository interface {
	TicketTaken(ctx context.Context, tx sqlc.DBTX, eventID uuid.UUID, ticket booking.Ticket) (bool, error)
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	MarkRefunded(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) error

	// A compensated charge was refunded because its booking could not be
	// recorded; a replay of it must never be booked.
	IsCompensated(ctx context.Context, tx sqlc.DBTX, chargeID string) (bool, error)
	MarkCompensated(ctx context.Context, tx sqlc.DBTX, chargeID, reason string, at time.Time) (bool, error)
	ClearCompensation(ctx context.Context, tx sqlc.DBTX, chargeID string) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error)
}
