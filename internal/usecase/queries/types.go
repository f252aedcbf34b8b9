package queries

import (
	"time"

	"github.com/google/uuid"
)

// EventView represents read-optimized event data with its seat aggregate
type EventView struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Capacity       int       `json:"capacity"`
	PriceCents     int64     `json:"price_cents"`
	StartAt        time.Time `json:"start_at"`
	FinishAt       time.Time `json:"finish_at"`
	BookedSeats    int       `json:"booked_seats"`
	SeatsRemaining int       `json:"seats_remaining"`
	Expired        bool      `json:"expired"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BookingView represents read-optimized booking data joined with its user and event
type BookingView struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	UserName      string    `json:"user_name"`
	EventID       uuid.UUID `json:"event_id"`
	EventTitle    string    `json:"event_title"`
	EventStartAt  time.Time `json:"event_start_at"`
	EventFinishAt time.Time `json:"event_finish_at"`
	ChargeID      *string   `json:"charge_id,omitempty"`
	RefundID      *string   `json:"refund_id,omitempty"`
	Seats         int       `json:"seats"`
	TotalCents    int64     `json:"total_cents"`
	Ticket        int       `json:"ticket"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserView represents read-optimized user data
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingPage struct {
	Items      []*BookingView
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
}

type BookingListFilter struct {
	SortBy string
	Desc   bool
	Limit  int32
	Offset int32
}

// NotificationJobView represents an outbox row as stored
type NotificationJobView struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int
	Status    string
	LastError *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
