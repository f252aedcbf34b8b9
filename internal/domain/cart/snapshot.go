package cart

import (
	"github.com/KingCastle/Javan/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity  = errs.New("cart quantity must be positive")
	ErrInvalidUnitPrice = errs.New("cart unit price must not be negative")
	ErrMissingEvent     = errs.New("cart line item requires an event")
)

type LineItem struct {
	EventID        uuid.UUID
	Quantity       int
	UnitPriceCents int64
}

func NewLineItem(eventID uuid.UUID, quantity int, unitPriceCents int64) (LineItem, error) {
	if eventID == uuid.Nil {
		return LineItem{}, ErrMissingEvent
	}
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	if unitPriceCents < 0 {
		return LineItem{}, ErrInvalidUnitPrice
	}
	return LineItem{EventID: eventID, Quantity: quantity, UnitPriceCents: unitPriceCents}, nil
}

func (l LineItem) SubtotalCents() int64 {
	return int64(l.Quantity) * l.UnitPriceCents
}

// Snapshot holds at most one event line item.
type Snapshot struct {
	item *LineItem
}

func EmptySnapshot() Snapshot {
	return Snapshot{}
}

func NewSnapshot(item LineItem) Snapshot {
	return Snapshot{item: &item}
}

func (s Snapshot) IsEmpty() bool {
	return s.item == nil
}

func (s Snapshot) LineItem() (LineItem, bool) {
	if s.item == nil {
		return LineItem{}, false
	}
	return *s.item, true
}

func (s Snapshot) SubtotalCents() int64 {
	if s.item == nil {
		return 0
	}
	return s.item.SubtotalCents()
}
