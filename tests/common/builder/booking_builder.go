//go:build unit || e2e

package builder

import (
	"time"

	"github.com/KingCastle/Javan/internal/domain/booking"
	sqlc "github.com/KingCastle/Javan/internal/infra/sqlc/generated"
	"github.com/KingCastle/Javan/internal/usecase/queries"
	"github.com/KingCastle/Javan/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
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

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	chargeID := "pi_test_" + uuid.NewString()[:8]
	return &BookingBuilder{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		UserEmail:    "booker@example.com",
		UserName:     "Booker",
		EventID:      uuid.New(),
		EventTitle:   "Summer Concert",
		EventStartAt: now.Add(7 * 24 * time.Hour),
		ChargeID:     &chargeID,
		Seats:        2,
		TotalCents:   5000,
		Ticket:       4321,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	chargeID := ""
	if b.ChargeID != nil {
		chargeID = *b.ChargeID
	}
	return booking.NewBooking(b.UserID, b.EventID, chargeID, b.Seats, b.TotalCents, booking.Ticket(b.Ticket), b.CreatedAt)
}

func (b *BookingBuilder) BuildEntity() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.UserID, b.EventID,
		b.ChargeID, b.RefundID,
		b.Seats, b.TotalCents,
		booking.Ticket(b.Ticket),
		b.Active,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildInfra() sqlc.FindBookingByIDRow {
	return sqlc.FindBookingByIDRow{
		ID:            b.ID,
		UserID:        b.UserID,
		EventID:       b.EventID,
		ChargeID:      optText(b.ChargeID),
		RefundID:      optText(b.RefundID),
		Seats:         int32(b.Seats),
		TotalCents:    b.TotalCents,
		Ticket:        int32(b.Ticket),
		Active:        b.Active,
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
		UserEmail:     b.UserEmail,
		UserName:      b.UserName,
		EventTitle:    b.EventTitle,
		EventStartAt:  pgtype.Timestamptz{Time: b.EventStartAt, Valid: true},
		EventFinishAt: pgtype.Timestamptz{Time: b.EventStartAt.Add(3 * time.Hour), Valid: true},
	}
}

func (b *BookingBuilder) BuildReadModel() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID,
		UserID:        b.UserID,
		UserEmail:     b.UserEmail,
		UserName:      b.UserName,
		EventID:       b.EventID,
		EventTitle:    b.EventTitle,
		EventStartAt:  b.EventStartAt,
		EventFinishAt: b.EventStartAt.Add(3 * time.Hour),
		ChargeID:      b.ChargeID,
		RefundID:      b.RefundID,
		Seats:         b.Seats,
		TotalCents:    b.TotalCents,
		Ticket:        b.Ticket,
		Active:        b.Active,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:           b.ID,
		UserID:       b.UserID,
		UserEmail:    b.UserEmail,
		UserName:     b.UserName,
		EventID:      b.EventID,
		EventTitle:   b.EventTitle,
		EventStartAt: b.EventStartAt,
		ChargeID:     b.ChargeID,
		RefundID:     b.RefundID,
		Seats:        b.Seats,
		TotalCents:   b.TotalCents,
		Ticket:       b.Ticket,
		Active:       b.Active,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithEventID(id uuid.UUID) *BookingBuilder {
	b.EventID = id
	return b
}

func (b *BookingBuilder) WithChargeID(chargeID string) *BookingBuilder {
	b.ChargeID = &chargeID
	return b
}

func (b *BookingBuilder) WithoutCharge() *BookingBuilder {
	b.ChargeID = nil
	return b
}

func (b *BookingBuilder) WithSeats(seats int) *BookingBuilder {
	b.Seats = seats
	return b
}

func (b *BookingBuilder) WithTotalCents(total int64) *BookingBuilder {
	b.TotalCents = total
	return b
}

func (b *BookingBuilder) WithTicket(ticket int) *BookingBuilder {
	b.Ticket = ticket
	return b
}

func (b *BookingBuilder) AsRefunded(refundID string) *BookingBuilder {
	b.RefundID = &refundID
	b.Seats = 0
	b.Active = false
	return b
}

func optText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
