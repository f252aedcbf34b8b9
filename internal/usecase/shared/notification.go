package shared

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotificationBookingAdminAlert   NotificationKind = "booking.admin_alert"
	NotificationBookingConfirmation NotificationKind = "booking.user_confirmation"
	NotificationBookingRefundNotice NotificationKind = "booking.user_refund_notice"
)

func (k NotificationKind) String() string {
	return string(k)
}

func (k NotificationKind) IsValid() bool {
	switch k {
	case NotificationBookingAdminAlert, NotificationBookingConfirmation, NotificationBookingRefundNotice:
		return true
	default:
		return false
	}
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     NotificationKind
	Topic    string
	Payload  []byte
	Attempts int
}

// BookingNotice is the outbox payload shared by all booking notifications.
type BookingNotice struct {
	BookingID    uuid.UUID `json:"booking_id"`
	UserID       uuid.UUID `json:"user_id"`
	UserEmail    string    `json:"user_email"`
	UserName     string    `json:"user_name"`
	EventID      uuid.UUID `json:"event_id"`
	EventTitle   string    `json:"event_title"`
	EventStartAt time.Time `json:"event_start_at"`
	Seats        int       `json:"seats"`
	TotalCents   int64     `json:"total_cents"`
	Currency     string    `json:"currency"`
	Ticket       int       `json:"ticket"`
	ChargeID     string    `json:"charge_id,omitempty"`
	RefundID     string    `json:"refund_id,omitempty"`
}
