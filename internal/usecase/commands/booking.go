package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/KingCastle/Javan/internal/domain/booking"
	"github.com/KingCastle/Javan/internal/domain/cart"
	"github.com/KingCastle/Javan/internal/domain/event"
	"github.com/KingCastle/Javan/internal/infra"
	"github.com/KingCastle/Javan/internal/pkg/clock"
	"github.com/KingCastle/Javan/internal/pkg/errs"
	"github.com/KingCastle/Javan/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

// Outcome labels reported to BookingMetrics
const (
	OutcomeConfirmed     = "confirmed"
	OutcomeEmptyCart     = "empty_cart"
	OutcomeNotFound      = "not_found"
	OutcomeExpired       = "expired"
	OutcomeSoldOut       = "sold_out"
	OutcomePaymentFailed = "payment_failed"
	OutcomePersistFailed = "persist_failed"
	OutcomeDuplicate     = "duplicate"
	OutcomeReversed      = "reversed"
	OutcomeRefunded      = "refunded"
	OutcomeRejected      = "rejected"
	OutcomeRefundFailed  = "refund_failed"
	OutcomeCompensated   = "compensated"
	OutcomeUncompensated = "uncompensated"
	OutcomeKept          = "kept"
)

type BookRequest struct {
	UserID         uuid.UUID
	PaymentToken   string
	IdempotencyKey string
}

type BookResult struct {
	Booking    *booking.Booking
	EventTitle string
}

type CheckoutResult struct {
	Event          *event.Event
	Item           cart.LineItem
	SubtotalCents  int64
	SeatsRemaining int
	Expired        bool
}

type RefundResult struct {
	BookingID uuid.UUID
	RefundID  string
}

type BookingCommands interface {
	Checkout(ctx context.Context, c shared.Cart) (*CheckoutResult, error)
	Book(ctx context.Context, req BookRequest, c shared.Cart) (*BookResult, error)
	Refund(ctx context.Context, bookingID uuid.UUID) (*RefundResult, error)
	Delete(ctx context.Context, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow        shared.UnitOfWork
	billing    shared.BillingGateway
	dispatcher shared.NotificationDispatcher
	metrics    shared.BookingMetrics
	tickets    booking.TicketGenerator
	clock      clock.Clock
	settings   BookingSettings
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	billing shared.BillingGateway,
	dispatcher shared.NotificationDispatcher,
	metrics shared.BookingMetrics,
	tickets booking.TicketGenerator,
	clk clock.Clock,
	settings BookingSettings,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:        uow,
		billing:    billing,
		dispatcher: dispatcher,
		metrics:    metrics,
		tickets:    tickets,
		clock:      clk,
		settings:   settings,
	}
}

func (uc *bookingCommandsImpl) Checkout(ctx context.Context, c shared.Cart) (*CheckoutResult, error) {
	item, ok := c.Snapshot().LineItem()
	if !ok {
		return nil, ErrEmptyCart
	}

	ev, err := uc.loadEvent(ctx, item.EventID)
	if err != nil {
		return nil, err
	}

	// Only an already overbooked event is rejected here; Book refuses at zero.
	if ev.IsOverbooked() {
		uc.clearCart(ctx, c)
		return nil, ErrCapacityExceeded
	}

	return &CheckoutResult{
		Event:          ev,
		Item:           item,
		SubtotalCents:  item.SubtotalCents(),
		SeatsRemaining: ev.SeatsRemaining(),
		Expired:        ev.IsExpired(uc.clock.Now(), uc.settings.Location),
	}, nil
}

func (uc *bookingCommandsImpl) Book(ctx context.Context, req BookRequest, c shared.Cart) (*BookResult, error) {
	snap := c.Snapshot()
	item, ok := snap.LineItem()
	if !ok {
		uc.metrics.ObserveBooking(OutcomeEmptyCart, 0, 0)
		return nil, ErrEmptyCart
	}

	ev, err := uc.loadEvent(ctx, item.EventID)
	if err != nil {
		if errs.Is(err, ErrEventNotFound) {
			uc.metrics.ObserveBooking(OutcomeNotFound, 0, 0)
		}
		return nil, err
	}

	now := uc.clock.Now()
	if ev.IsExpired(now, uc.settings.Location) {
		uc.clearCart(ctx, c)
		uc.metrics.ObserveBooking(OutcomeExpired, 0, 0)
		return nil, ErrEventExpired
	}
	if ev.IsSoldOut() {
		uc.metrics.ObserveBooking(OutcomeSoldOut, 0, 0)
		return nil, ErrCapacityExceeded
	}

	payerSnap, err := uc.uow.CommandReads().UserByID(ctx, req.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPayerNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	payer, err := userFromSnapshot(payerSnap)
	if err != nil {
		return nil, errs.Wrap(err, "payer record")
	}
	if !payer.IsActive() {
		return nil, ErrPayerNotFound
	}

	amount := snap.SubtotalCents()
	chargeID, err := uc.billing.Charge(ctx, shared.ChargeRequest{
		AmountMinor:    amount,
		Currency:       uc.settings.Currency,
		PayerEmail:     payer.Email().String(),
		PaymentToken:   req.PaymentToken,
		IdempotencyKey: chargeIdempotencyKey(req),
		Description:    fmt.Sprintf("%d x %s", item.Quantity, ev.Title()),
		Metadata: map[string]string{
			"user_id":  req.UserID.String(),
			"event_id": item.EventID.String(),
		},
	})
	if err != nil {
		if errs.Is(err, shared.ErrChargeRefunded) {
			uc.metrics.ObserveBooking(OutcomeReversed, 0, 0)
			return nil, errs.Mark(errs.Wrap(err, "charge booking"), ErrChargeReversed)
		}
		uc.metrics.ObserveBooking(OutcomePaymentFailed, 0, 0)
		return nil, errs.Mark(errs.Wrap(err, "charge booking"), ErrPayment)
	}

	var (
		created *booking.Booking
		jobs    []shared.NotificationJob
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, jobs = nil, nil

		locked, err := tx.Events().LockForBooking(ctx, tx.DB(), item.EventID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		// a replayed idempotency key returns the charge a failed attempt refunded
		compensated, err := tx.Bookings().IsCompensated(ctx, tx.DB(), chargeID)
		if err != nil {
			return err
		}
		if compensated {
			return ErrChargeReversed
		}
		if err := locked.EnsureBookable(item.Quantity); err != nil {
			if errs.Is(err, event.ErrCapacityExceeded) {
				return ErrCapacityExceeded
			}
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		ticket, err := uc.drawTicket(ctx, tx, item.EventID)
		if err != nil {
			return err
		}

		b, err := booking.NewBooking(req.UserID, item.EventID, chargeID, item.Quantity, amount, ticket, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			// charge ids are unique, so this is a replay of an already recorded booking
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateBooking
			}
			return err
		}

		notice := shared.BookingNotice{
			BookingID:    b.ID(),
			UserID:       payer.ID(),
			UserEmail:    payer.Email().String(),
			UserName:     payer.Name(),
			EventID:      locked.ID(),
			EventTitle:   locked.Title(),
			EventStartAt: locked.StartAt(),
			Seats:        b.Seats(),
			TotalCents:   b.TotalCents(),
			Currency:     uc.settings.Currency,
			Ticket:       b.Ticket().Int(),
			ChargeID:     chargeID,
		}
		for _, kind := range []shared.NotificationKind{
			shared.NotificationBookingAdminAlert,
			shared.NotificationBookingConfirmation,
		} {
			job, err := uc.createJob(ctx, tx, kind, notice, now)
			if err != nil {
				return err
			}
			jobs = append(jobs, job)
		}

		created = b
		return nil
	})
	if errs.Is(err, ErrDuplicateBooking) {
		uc.metrics.ObserveBooking(OutcomeDuplicate, 0, 0)
		return nil, ErrDuplicateBooking
	}
	if errs.Is(err, ErrChargeReversed) {
		uc.metrics.ObserveBooking(OutcomeReversed, 0, 0)
		return nil, ErrChargeReversed
	}
	if err != nil {
		uc.compensateCharge(ctx, item.EventID, chargeID, err)
		uc.metrics.ObserveBooking(OutcomePersistFailed, 0, 0)
		return nil, persistError(err)
	}

	for _, job := range jobs {
		uc.dispatcher.Enqueue(ctx, job)
	}
	uc.clearCart(ctx, c)
	uc.metrics.ObserveBooking(OutcomeConfirmed, created.Seats(), created.TotalCents())

	slog.Info("booking confirmed",
		"booking_id", created.ID().String(),
		"event_id", created.EventID().String(),
		"charge_id", chargeID,
		"seats", created.Seats(),
		"ticket", created.Ticket().Int())

	return &BookResult{Booking: created, EventTitle: ev.Title()}, nil
}

func (uc *bookingCommandsImpl) Refund(ctx context.Context, bookingID uuid.UUID) (*RefundResult, error) {
	snap, err := uc.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	b := bookingFromSnapshot(snap)
	if err := b.EnsureRefundable(); err != nil {
		uc.metrics.ObserveRefund(OutcomeRejected, 0)
		switch {
		case errs.Is(err, booking.ErrNoChargeOnRecord):
			return nil, ErrNoChargeOnRecord
		case errs.Is(err, booking.ErrAlreadyRefunded):
			return nil, ErrAlreadyRefunded
		default:
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	amount := b.TotalCents()
	refundID, err := uc.billing.Refund(ctx, shared.RefundRequest{
		ChargeID:       *b.ChargeID(),
		IdempotencyKey: "refund-" + b.ID().String(),
	})
	if err != nil {
		uc.metrics.ObserveRefund(OutcomeRefundFailed, 0)
		return nil, errs.Mark(errs.Wrap(err, "refund booking"), ErrRefund)
	}

	now := uc.clock.Now()
	if err := b.Refund(refundID, now); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var job shared.NotificationJob
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().MarkRefunded(ctx, tx.DB(), b); err != nil {
			return err
		}

		notice := shared.BookingNotice{
			BookingID:    b.ID(),
			UserID:       snap.UserID,
			UserEmail:    snap.UserEmail,
			UserName:     snap.UserName,
			EventID:      snap.EventID,
			EventTitle:   snap.EventTitle,
			EventStartAt: snap.EventStartAt,
			Seats:        snap.Seats,
			TotalCents:   amount,
			Currency:     uc.settings.Currency,
			Ticket:       snap.Ticket,
			ChargeID:     *b.ChargeID(),
			RefundID:     refundID,
		}
		var err error
		job, err = uc.createJob(ctx, tx, shared.NotificationBookingRefundNotice, notice, now)
		return err
	})
	if err != nil {
		slog.Error("refund issued but booking not updated",
			"booking_id", b.ID().String(),
			"refund_id", refundID,
			"error", err.Error())
		uc.metrics.ObserveRefund(OutcomePersistFailed, amount)
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAlreadyRefunded
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.dispatcher.Enqueue(ctx, job)
	uc.metrics.ObserveRefund(OutcomeRefunded, amount)

	slog.Info("booking refunded",
		"booking_id", b.ID().String(),
		"refund_id", refundID)

	return &RefundResult{BookingID: b.ID(), RefundID: refundID}, nil
}

func (uc *bookingCommandsImpl) Delete(ctx context.Context, bookingID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Delete(ctx, tx.DB(), bookingID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *bookingCommandsImpl) loadEvent(ctx context.Context, eventID uuid.UUID) (*event.Event, error) {
	snap, err := uc.uow.CommandReads().EventByID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return eventFromSnapshot(snap), nil
}

// drawTicket runs under the event row lock, so a code found free stays free
// until the transaction commits.
func (uc *bookingCommandsImpl) drawTicket(ctx context.Context, tx shared.Tx, eventID uuid.UUID) (booking.Ticket, error) {
	for attempt := 0; attempt < uc.settings.MaxTicketAttempts; attempt++ {
		ticket := uc.tickets.Next()
		taken, err := tx.Bookings().TicketTaken(ctx, tx.DB(), eventID, ticket)
		if err != nil {
			return 0, err
		}
		if !taken {
			return ticket, nil
		}
	}
	return 0, ErrTicketUnavailable
}

func (uc *bookingCommandsImpl) createJob(
	ctx context.Context,
	tx shared.Tx,
	kind shared.NotificationKind,
	notice shared.BookingNotice,
	now time.Time,
) (shared.NotificationJob, error) {
	payload, err := json.Marshal(notice)
	if err != nil {
		return shared.NotificationJob{}, errs.Wrap(err, "marshal booking notice")
	}

	topic := notice.BookingID.String()
	id, err := tx.Notifications().CreateJob(ctx, tx.DB(), kind.String(), topic, payload, now.Add(uc.settings.NotifyGrace))
	if err != nil {
		return shared.NotificationJob{}, err
	}

	return shared.NotificationJob{ID: id, Kind: kind, Topic: topic, Payload: payload}, nil
}

// compensateCharge refunds a charge whose booking could not be recorded. It
// outlives request cancellation so a client disconnect cannot strand the payment.
// The charge is first marked compensated under the event row lock, which Book
// holds while checking for the mark, so a replay of the same charge is either
// already booked (and kept) or refused from then on.
func (uc *bookingCommandsImpl) compensateCharge(ctx context.Context, eventID uuid.UUID, chargeID string, cause error) {
	ctx = context.WithoutCancel(ctx)

	var marked bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Events().LockForBooking(ctx, tx.DB(), eventID); err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		var err error
		marked, err = tx.Bookings().MarkCompensated(ctx, tx.DB(), chargeID, cause.Error(), uc.clock.Now())
		return err
	})
	if err != nil {
		// the refund still goes ahead; the gateway refuses to replay a refunded charge
		slog.Error("failed to record compensated charge",
			"charge_id", chargeID,
			"error", err.Error())
	} else if !marked {
		slog.Warn("charge backs a booking recorded by a retry, not refunding",
			"charge_id", chargeID,
			"cause", cause.Error())
		uc.metrics.ObserveCompensation(OutcomeKept)
		return
	}

	refundID, err := uc.billing.Refund(ctx, shared.RefundRequest{
		ChargeID:       chargeID,
		IdempotencyKey: "compensate-" + chargeID,
	})
	if err != nil {
		slog.Error("compensating refund failed",
			"charge_id", chargeID,
			"cause", cause.Error(),
			"error", err.Error())
		uc.metrics.ObserveCompensation(OutcomeUncompensated)
		if marked {
			uc.releaseCompensation(ctx, chargeID)
		}
		return
	}

	slog.Warn("booking not recorded, charge refunded",
		"charge_id", chargeID,
		"refund_id", refundID,
		"cause", cause.Error())
	uc.metrics.ObserveCompensation(OutcomeCompensated)
}

// releaseCompensation lets a retry book a charge that is still held.
func (uc *bookingCommandsImpl) releaseCompensation(ctx context.Context, chargeID string) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().ClearCompensation(ctx, tx.DB(), chargeID)
	})
	if err != nil {
		slog.Error("failed to clear compensated charge",
			"charge_id", chargeID,
			"error", err.Error())
	}
}

func (uc *bookingCommandsImpl) clearCart(ctx context.Context, c shared.Cart) {
	if err := c.Clear(ctx); err != nil {
		slog.Warn("failed to clear cart", "error", err.Error())
	}
}

func chargeIdempotencyKey(req BookRequest) string {
	if req.IdempotencyKey != "" {
		return "book-" + req.UserID.String() + "-" + req.IdempotencyKey
	}
	return "book-" + uuid.NewString()
}

func persistError(err error) error {
	for _, sentinel := range []error{ErrCapacityExceeded, ErrEventNotFound, ErrTicketUnavailable} {
		if errs.Is(err, sentinel) {
			return err
		}
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
