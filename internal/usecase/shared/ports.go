package shared

import (
	"context"

	"github.com/KingCastle/Javan/internal/domain/cart"
	"github.com/KingCastle/Javan/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

type ChargeRequest struct {
	AmountMinor    int64
	Currency       string
	PayerEmail     string
	PaymentToken   string
	IdempotencyKey string
	Description    string
	Metadata       map[string]string
}

type RefundRequest struct {
	ChargeID       string
	IdempotencyKey string
}

// ErrChargeRefunded marks a Charge whose idempotency key replays a charge that
// has since been refunded.
var ErrChargeRefunded = errs.New("charge already refunded")

// BillingGateway returns the processor's transaction id on success.
type BillingGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (string, error)
	Refund(ctx context.Context, req RefundRequest) (string, error)
}

// Cart is one user's session cart as seen by a single workflow execution.
type Cart interface {
	Snapshot() cart.Snapshot
	Clear(ctx context.Context) error
}

type CartStore interface {
	Load(ctx context.Context, userID uuid.UUID) (cart.Snapshot, error)
	Put(ctx context.Context, userID uuid.UUID, item cart.LineItem) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

// Enqueue never blocks; a job that does not fit is picked up later from the outbox.
type NotificationDispatcher interface {
	Enqueue(ctx context.Context, job NotificationJob)
}

type BookingMetrics interface {
	ObserveBooking(outcome string, seats int, amountMinor int64)
	ObserveRefund(outcome string, amountMinor int64)
	ObserveCompensation(outcome string)
}
