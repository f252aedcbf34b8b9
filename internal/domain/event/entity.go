package event

import (
	"strings"
	"time"

	"github.com/KingCastle/Javan/internal/pkg/clock"
	"github.com/KingCastle/Javan/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTitle     = errs.New("event title is required")
	ErrInvalidCapacity  = errs.New("event capacity must be positive")
	ErrInvalidPrice     = errs.New("event price must not be negative")
	ErrInvalidSchedule  = errs.New("event must not finish before it starts")
	ErrInvalidQuantity  = errs.New("seat quantity must be positive")
	ErrCapacityExceeded = errs.New("not enough seats remaining")
)

// Event is read-only from the booking side. bookedSeats is the sum of seats
// held by active bookings at the time the event was loaded.
type Event struct {
	id          uuid.UUID
	title       string
	capacity    int
	priceCents  int64
	startAt     time.Time
	finishAt    time.Time
	bookedSeats int
}

func NewEvent(title string, capacity int, priceCents int64, startAt, finishAt time.Time) (*Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrInvalidTitle
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if priceCents < 0 {
		return nil, ErrInvalidPrice
	}
	if finishAt.Before(startAt) {
		return nil, ErrInvalidSchedule
	}

	return &Event{
		id:         uuid.New(),
		title:      title,
		capacity:   capacity,
		priceCents: priceCents,
		startAt:    startAt,
		finishAt:   finishAt,
	}, nil
}

func ReconstructEvent(
	id uuid.UUID,
	title string,
	capacity int,
	priceCents int64,
	startAt, finishAt time.Time,
	bookedSeats int,
) *Event {
	return &Event{
		id:          id,
		title:       title,
		capacity:    capacity,
		priceCents:  priceCents,
		startAt:     startAt,
		finishAt:    finishAt,
		bookedSeats: bookedSeats,
	}
}

func (e *Event) ID() uuid.UUID       { return e.id }
func (e *Event) Title() string       { return e.title }
func (e *Event) Capacity() int       { return e.capacity }
func (e *Event) PriceCents() int64   { return e.priceCents }
func (e *Event) StartAt() time.Time  { return e.startAt }
func (e *Event) FinishAt() time.Time { return e.finishAt }
func (e *Event) BookedSeats() int    { return e.bookedSeats }
func (e *Event) SeatsRemaining() int { return e.capacity - e.bookedSeats }
func (e *Event) IsSoldOut() bool     { return e.SeatsRemaining() <= 0 }
func (e *Event) IsOverbooked() bool  { return e.SeatsRemaining() < 0 }

// IsExpired compares calendar dates in loc, ignoring the time of day: an event
// finishing today is still bookable.
func (e *Event) IsExpired(now time.Time, loc *time.Location) bool {
	return clock.StartOfDay(e.finishAt, loc).Before(clock.StartOfDay(now, loc))
}

// EnsureBookable must run against a bookedSeats figure read under the event row lock.
func (e *Event) EnsureBookable(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > e.SeatsRemaining() {
		return ErrCapacityExceeded
	}
	return nil
}
