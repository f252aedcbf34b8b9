package commands

import (
	"context"

	"github.com/KingCastle/Javan/internal/domain/cart"
	"github.com/KingCastle/Javan/internal/infra"
	"github.com/KingCastle/Javan/internal/pkg/clock"
	"github.com/KingCastle/Javan/internal/pkg/errs"
	"github.com/KingCastle/Javan/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/commands/cart_mock.go -package=commandsmock

var ErrCartUnavailable = errs.New("cart store unavailable")

type CartView struct {
	Empty          bool
	EventID        uuid.UUID
	EventTitle     string
	Quantity       int
	UnitPriceCents int64
	SubtotalCents  int64
}

type CartCommands interface {
	// Open loads the user's cart for one workflow execution.
	Open(ctx context.Context, userID uuid.UUID) (shared.Cart, error)
	Show(ctx context.Context, userID uuid.UUID) (*CartView, error)
	AddEvent(ctx context.Context, userID, eventID uuid.UUID, quantity int) (*CartView, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartCommandsImpl struct {
	store    shared.CartStore
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings BookingSettings
}

func NewCartCommands(store shared.CartStore, uow shared.UnitOfWork, clk clock.Clock, settings BookingSettings) CartCommands {
	return &cartCommandsImpl{
		store:    store,
		uow:      uow,
		clock:    clk,
		settings: settings,
	}
}

func (uc *cartCommandsImpl) Open(ctx context.Context, userID uuid.UUID) (shared.Cart, error) {
	snap, err := uc.store.Load(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrCartUnavailable)
	}
	return &sessionCart{store: uc.store, userID: userID, snapshot: snap}, nil
}

func (uc *cartCommandsImpl) Show(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	snap, err := uc.store.Load(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrCartUnavailable)
	}

	item, ok := snap.LineItem()
	if !ok {
		return &CartView{Empty: true}, nil
	}

	view := cartViewOf(item, "")
	ev, err := uc.uow.CommandReads().EventByID(ctx, item.EventID)
	switch {
	case err == nil:
		view.EventTitle = ev.Title
	case infra.IsKind(err, infra.KindNotFound):
		// the event was removed after it was put in the cart; Book will reject it
	default:
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// AddEvent replaces whatever the cart held. The unit price is always taken
// from the event, never from the client.
func (uc *cartCommandsImpl) AddEvent(ctx context.Context, userID, eventID uuid.UUID, quantity int) (*CartView, error) {
	snap, err := uc.uow.CommandReads().EventByID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	ev := eventFromSnapshot(snap)
	if ev.IsExpired(uc.clock.Now(), uc.settings.Location) {
		return nil, ErrEventExpired
	}

	item, err := cart.NewLineItem(ev.ID(), quantity, ev.PriceCents())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCartItem)
	}

	if err := uc.store.Put(ctx, userID, item); err != nil {
		return nil, errs.Mark(err, ErrCartUnavailable)
	}

	return cartViewOf(item, ev.Title()), nil
}

func (uc *cartCommandsImpl) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := uc.store.Clear(ctx, userID); err != nil {
		return errs.Mark(err, ErrCartUnavailable)
	}
	return nil
}

func cartViewOf(item cart.LineItem, title string) *CartView {
	return &CartView{
		EventID:        item.EventID,
		EventTitle:     title,
		Quantity:       item.Quantity,
		UnitPriceCents: item.UnitPriceCents,
		SubtotalCents:  item.SubtotalCents(),
	}
}

// sessionCart pins the snapshot read at Open so a workflow sees one
// consistent cart even if the user edits it concurrently.
type sessionCart struct {
	store    shared.CartStore
	userID   uuid.UUID
	snapshot cart.Snapshot
}

func (c *sessionCart) Snapshot() cart.Snapshot {
	return c.snapshot
}

func (c *sessionCart) Clear(ctx context.Context) error {
	if err := c.store.Clear(ctx, c.userID); err != nil {
		return err
	}
	c.snapshot = cart.EmptySnapshot()
	return nil
}
