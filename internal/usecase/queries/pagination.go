package queries

import (
	"math"
	"strings"

	"github.com/KingCastle/Javan/internal/pkg/errs"
)

const (
	AdminBookingsPerPage  = 50
	MemberBookingsPerPage = 20

	DefaultSortBy = "created_at"
)

var (
	ErrInvalidSort = errs.New("invalid sort parameters")
	ErrInvalidPage = errs.New("page out of range")
)

var sortableColumns = map[string]struct{}{
	"created_at": {},
	"ticket":     {},
	"seats":      {},
	"total":      {},
	"active":     {},
}

type PageParams struct {
	Page    int
	SortBy  string
	SortDir string
}

// Resolve applies defaults: first page, latest first.
func (p PageParams) Resolve(perPage int) (BookingListFilter, int, error) {
	sortBy := strings.ToLower(strings.TrimSpace(p.SortBy))
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	if _, ok := sortableColumns[sortBy]; !ok {
		return BookingListFilter{}, 0, ErrInvalidSort
	}

	var desc bool
	switch strings.ToLower(strings.TrimSpace(p.SortDir)) {
	case "", "desc":
		desc = true
	case "asc":
		desc = false
	default:
		return BookingListFilter{}, 0, ErrInvalidSort
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	// OFFSET is an int4 parameter
	if page-1 > math.MaxInt32/perPage {
		return BookingListFilter{}, 0, ErrInvalidPage
	}

	return BookingListFilter{
		SortBy: sortBy,
		Desc:   desc,
		Limit:  int32(perPage),
		Offset: int32((page - 1) * perPage),
	}, page, nil
}

func totalPages(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
