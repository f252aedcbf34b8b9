package queries

import (
	"context"

	"github.com/KingCastle/Javan/internal/domain/user"
	"github.com/KingCastle/Javan/internal/infra"
	"github.com/KingCastle/Javan/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingListFilter) ([]*BookingView, error)
	Count(ctx context.Context) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter BookingListFilter) ([]*BookingView, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type BookingQueries interface {
	List(ctx context.Context, params PageParams) (*BookingPage, error)
	ListByUser(ctx context.Context, userID uuid.UUID, params PageParams) (*BookingPage, error)
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) List(ctx context.Context, params PageParams) (*BookingPage, error) {
	filter, page, err := params.Resolve(AdminBookingsPerPage)
	if err != nil {
		return nil, err
	}

	rows, err := q.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := q.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return newBookingPage(rows, page, AdminBookingsPerPage, total), nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, params PageParams) (*BookingPage, error) {
	filter, page, err := params.Resolve(MemberBookingsPerPage)
	if err != nil {
		return nil, err
	}

	rows, err := q.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	total, err := q.repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return newBookingPage(rows, page, MemberBookingsPerPage, total), nil
}

// Members see their own bookings; operators and admins see all of them.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*BookingView, error) {
	bv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if bv.UserID != actorID && !actorRole.AtLeast(user.RoleOperator) {
		return nil, ErrBookingAccess
	}
	return bv, nil
}

func newBookingPage(rows []*BookingView, page, perPage int, total int64) *BookingPage {
	if rows == nil {
		rows = []*BookingView{}
	}
	return &BookingPage{
		Items:      rows,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages(total, perPage),
	}
}
