package commands

import (
	"time"

	"github.com/KingCastle/Javan/internal/pkg/config"
)

type BookingSettings struct {
	Location          *time.Location
	Currency          string
	MaxTicketAttempts int
	NotifyGrace       time.Duration
}

func NewBookingSettings(cfg config.Config) BookingSettings {
	attempts := cfg.Booking.MaxTicketAttempts
	if attempts <= 0 {
		attempts = 10
	}
	return BookingSettings{
		Location:          cfg.Booking.Location(),
		Currency:          cfg.Billing.Currency,
		MaxTicketAttempts: attempts,
		NotifyGrace:       cfg.Notify.DeliveryGrace,
	}
}
