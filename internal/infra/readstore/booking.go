package readstore

import (
	"context"

	"github.com/KingCastle/Javan/internal/infra"
	sqlc "github.com/KingCastle/Javan/internal/infra/sqlc/generated"
	"github.com/KingCastle/Javan/internal/pkg/pgconv"
	"github.com/KingCastle/Javan/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	FindBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindBookingByIDRow, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.ListBookingsRow, error)
	CountBookings(ctx context.Context, db sqlc.DBTX) (int64, error)
	ListBookingsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserParams) ([]sqlc.ListBookingsByUserRow, error)
	CountBookingsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.FindBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return toBookingView(bookingRow(row)), nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingListFilter) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookings(ctx, r.db, sqlc.ListBookingsParams{
		SortBy:     filter.SortBy,
		SortDesc:   filter.Desc,
		PageLimit:  filter.Limit,
		PageOffset: filter.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(bookingRow(row))
	}
	return result, nil
}

func (r *BookingReadStore) Count(ctx context.Context) (int64, error) {
	n, err := r.queries.CountBookings(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return n, nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID, filter queries.BookingListFilter) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, sqlc.ListBookingsByUserParams{
		UserID:     userID,
		SortBy:     filter.SortBy,
		SortDesc:   filter.Desc,
		PageLimit:  filter.Limit,
		PageOffset: filter.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(bookingRow(row))
	}
	return result, nil
}

func (r *BookingReadStore) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountBookingsByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings by user", err)
	}
	return n, nil
}

// The three booking rows are structurally identical; converting through one
// type keeps a single mapper.
type bookingRow sqlc.FindBookingByIDRow

func toBookingView(row bookingRow) *queries.BookingView {
	return &queries.BookingView{
		ID:            row.ID,
		UserID:        row.UserID,
		UserEmail:     row.UserEmail,
		UserName:      row.UserName,
		EventID:       row.EventID,
		EventTitle:    row.EventTitle,
		EventStartAt:  row.EventStartAt.Time,
		EventFinishAt: row.EventFinishAt.Time,
		ChargeID:      pgconv.StringPtrFromPgtype(row.ChargeID),
		RefundID:      pgconv.StringPtrFromPgtype(row.RefundID),
		Seats:         int(row.Seats),
		TotalCents:    row.TotalCents,
		Ticket:        int(row.Ticket),
		Active:        row.Active,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
