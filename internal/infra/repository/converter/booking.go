package converter

import (
	"github.com/KingCastle/Javan/internal/domain/booking"
	"github.com/KingCastle/Javan/internal/domain/event"
	sqlc "github.com/KingCastle/Javan/internal/infra/sqlc/generated"
	"github.com/KingCastle/Javan/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:         b.ID(),
		UserID:     b.UserID(),
		EventID:    b.EventID(),
		ChargeID:   pgconv.StringPtrToPgtype(b.ChargeID()),
		RefundID:   pgconv.StringPtrToPgtype(b.RefundID()),
		Seats:      int32(b.Seats()),
		TotalCents: b.TotalCents(),
		Ticket:     int32(b.Ticket().Int()),
		Active:     b.IsActive(),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// EventFromLockedRow attaches the seat sum read under the same row lock.
func EventFromLockedRow(row sqlc.Events, bookedSeats int32) *event.Event {
	return event.ReconstructEvent(
		row.ID,
		row.Title,
		int(row.Capacity),
		row.PriceCents,
		row.StartAt.Time,
		row.FinishAt.Time,
		int(bookedSeats),
	)
}
