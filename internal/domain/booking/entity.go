package booking

import (
	"strings"
	"time"

	"github.com/KingCastle/Javan/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidSeats      = errs.New("booking seats must be positive")
	ErrInvalidTotal      = errs.New("booking total must not be negative")
	ErrMissingCharge     = errs.New("booking requires a charge id")
	ErrMissingRefund     = errs.New("refund requires a refund id")
	ErrNoChargeOnRecord  = errs.New("booking has no charge on record")
	ErrAlreadyRefunded   = errs.New("booking is already refunded")
	ErrInvalidReferences = errs.New("booking requires user and event")
)

type Booking struct {
	id         uuid.UUID
	userID     uuid.UUID
	eventID    uuid.UUID
	chargeID   *string
	refundID   *string
	seats      int
	totalCents int64
	ticket     Ticket
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking records a confirmed booking. It is only created after the
// gateway has accepted the charge, so a charge id is mandatory.
func NewBooking(
	userID, eventID uuid.UUID,
	chargeID string,
	seats int,
	totalCents int64,
	ticket Ticket,
	now time.Time,
) (*Booking, error) {
	if userID == uuid.Nil || eventID == uuid.Nil {
		return nil, ErrInvalidReferences
	}
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return nil, ErrMissingCharge
	}
	if seats <= 0 {
		return nil, ErrInvalidSeats
	}
	if totalCents < 0 {
		return nil, ErrInvalidTotal
	}
	if _, err := NewTicket(ticket.Int()); err != nil {
		return nil, err
	}

	return &Booking{
		id:         uuid.New(),
		userID:     userID,
		eventID:    eventID,
		chargeID:   &chargeID,
		seats:      seats,
		totalCents: totalCents,
		ticket:     ticket,
		active:     true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBooking(
	id, userID, eventID uuid.UUID,
	chargeID, refundID *string,
	seats int,
	totalCents int64,
	ticket Ticket,
	active bool,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		userID:     userID,
		eventID:    eventID,
		chargeID:   chargeID,
		refundID:   refundID,
		seats:      seats,
		totalCents: totalCents,
		ticket:     ticket,
		active:     active,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) EventID() uuid.UUID   { return b.eventID }
func (b *Booking) ChargeID() *string    { return b.chargeID }
func (b *Booking) RefundID() *string    { return b.refundID }
func (b *Booking) Seats() int           { return b.seats }
func (b *Booking) TotalCents() int64    { return b.totalCents }
func (b *Booking) Ticket() Ticket       { return b.ticket }
func (b *Booking) IsActive() bool       { return b.active }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) HasCharge() bool {
	return b.chargeID != nil && *b.chargeID != ""
}

func (b *Booking) IsRefunded() bool {
	return b.refundID != nil
}

// EnsureRefundable is checked before the gateway is called so a rejected
// refund never reaches the processor.
func (b *Booking) EnsureRefundable() error {
	if !b.HasCharge() {
		return ErrNoChargeOnRecord
	}
	if b.IsRefunded() {
		return ErrAlreadyRefunded
	}
	return nil
}

// Refund releases the seats. A refunded booking is never re-activated.
func (b *Booking) Refund(refundID string, now time.Time) error {
	if err := b.EnsureRefundable(); err != nil {
		return err
	}
	refundID = strings.TrimSpace(refundID)
	if refundID == "" {
		return ErrMissingRefund
	}

	b.refundID = &refundID
	b.seats = 0
	b.active = false
	b.updatedAt = now
	return nil
}

func CountActiveSeats(bookings []*Booking) int {
	total := 0
	for _, b := range bookings {
		if b.IsActive() {
			total += b.Seats()
		}
	}
	return total
}
