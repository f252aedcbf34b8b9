package commands

import (
	"github.com/KingCastle/Javan/internal/domain/booking"
	"github.com/KingCastle/Javan/internal/domain/event"
	"github.com/KingCastle/Javan/internal/domain/user"
	"github.com/KingCastle/Javan/internal/usecase/shared"
)

func eventFromSnapshot(s *shared.EventSnapshot) *event.Event {
	return event.ReconstructEvent(s.ID, s.Title, s.Capacity, s.PriceCents, s.StartAt, s.FinishAt, s.BookedSeats)
}

func bookingFromSnapshot(s *shared.BookingSnapshot) *booking.Booking {
	return booking.ReconstructBooking(
		s.ID,
		s.UserID,
		s.EventID,
		s.ChargeID,
		s.RefundID,
		s.Seats,
		s.TotalCents,
		booking.Ticket(s.Ticket),
		s.Active,
		s.CreatedAt,
		s.UpdatedAt,
	)
}

func userFromSnapshot(s *shared.UserSnapshot) (*user.User, error) {
	email, err := user.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(s.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(s.ID, email, s.Name, role, s.IsActive, s.CreatedAt, s.UpdatedAt), nil
}
