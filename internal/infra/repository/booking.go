package repository

import (
	"context"
	"time"

	"github.com/KingCastle/Javan/internal/domain/booking"
	"github.com/KingCastle/Javan/internal/infra"
	"github.com/KingCastle/Javan/internal/infra/repository/converter"
	sqlc "github.com/KingCastle/Javan/internal/infra/sqlc/generated"
	"github.com/KingCastle/Javan/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking_mock.go -package=repositorymock

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	TicketTakenForEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.TicketTakenForEventParams) (bool, error)
	RefundBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.RefundBookingParams) (int64, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	ChargeBooked(ctx context.Context, db sqlc.DBTX, chargeID pgtype.Text) (bool, error)
	ChargeCompensated(ctx context.Context, db sqlc.DBTX, chargeID string) (bool, error)
	RecordCompensatedCharge(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordCompensatedChargeParams) error
	DeleteCompensatedCharge(ctx context.Context, db sqlc.DBTX, chargeID string) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) TicketTaken(ctx context.Context, tx sqlc.DBTX, eventID uuid.UUID, ticket booking.Ticket) (bool, error) {
	taken, err := r.queries.TicketTakenForEvent(ctx, tx, sqlc.TicketTakenForEventParams{
		EventID: eventID,
		Ticket:  int32(ticket.Int()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check ticket", err)
	}
	return taken, nil
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params := converter.BookingToCreateParams(b)
	if _, err := r.queries.CreateBooking(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// MarkRefunded reports NotFound when the row is gone or already carries a refund.
func (r *BookingRepository) MarkRefunded(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	n, err := r.queries.RefundBooking(ctx, tx, sqlc.RefundBookingParams{
		ID:        b.ID(),
		RefundID:  pgconv.StringPtrToPgtype(b.RefundID()),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark booking refunded", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found or already refunded", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) error {
	n, err := r.queries.DeleteBooking(ctx, tx, bookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) IsCompensated(ctx context.Context, tx sqlc.DBTX, chargeID string) (bool, error) {
	compensated, err := r.queries.ChargeCompensated(ctx, tx, chargeID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check compensated charge", err)
	}
	return compensated, nil
}

// MarkCompensated records that chargeID may no longer back a booking. It
// returns false without writing when a booking already holds the charge.
func (r *BookingRepository) MarkCompensated(ctx context.Context, tx sqlc.DBTX, chargeID, reason string, at time.Time) (bool, error) {
	booked, err := r.queries.ChargeBooked(ctx, tx, pgconv.StringToPgtype(chargeID))
	if err != nil {
		return false, infra.WrapRepoErr("failed to check charge usage", err)
	}
	if booked {
		return false, nil
	}

	err = r.queries.RecordCompensatedCharge(ctx, tx, sqlc.RecordCompensatedChargeParams{
		ChargeID:  chargeID,
		Reason:    reason,
		CreatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record compensated charge", err)
	}
	return true, nil
}

func (r *BookingRepository) ClearCompensation(ctx context.Context, tx sqlc.DBTX, chargeID string) error {
	if err := r.queries.DeleteCompensatedCharge(ctx, tx, chargeID); err != nil {
		return infra.WrapRepoErr("failed to clear compensated charge", err)
	}
	return nil
}
