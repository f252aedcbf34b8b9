package billing

import (
	"context"
	"strings"
	"sync"

	"github.com/KingCastle/Javan/internal/pkg/errs"
	"github.com/KingCastle/Javan/internal/usecase/shared"

	"github.com/google/uuid"
)

// DeclineToken is rejected by FakeGateway so declines can be exercised end to end.
const DeclineToken = "tok_chargeDeclined"

var ErrUnknownCharge = errs.New("unknown charge")

type FakeCharge struct {
	ID          string
	AmountMinor int64
	Currency    string
	PayerEmail  string
	RefundID    string
}

// FakeGateway keeps charges in memory and honours idempotency keys like the real processor.
type FakeGateway struct {
	mu          sync.Mutex
	charges     map[string]*FakeCharge
	idempotency map[string]string
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{
		charges:     make(map[string]*FakeCharge),
		idempotency: make(map[string]string),
	}
}

func (g *FakeGateway) Charge(_ context.Context, req shared.ChargeRequest) (string, error) {
	if req.PaymentToken == "" {
		return "", ErrMissingToken
	}
	if strings.EqualFold(req.PaymentToken, DeclineToken) {
		return "", errs.Mark(errs.New("card declined"), ErrPaymentDeclined)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if id, ok := g.idempotency[req.IdempotencyKey]; ok && req.IdempotencyKey != "" {
		if g.charges[id].RefundID != "" {
			return "", errs.Mark(errs.Newf("charge %s was refunded", id), shared.ErrChargeRefunded)
		}
		return id, nil
	}

	id := "pi_fake_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	g.charges[id] = &FakeCharge{
		ID:          id,
		AmountMinor: req.AmountMinor,
		Currency:    req.Currency,
		PayerEmail:  req.PayerEmail,
	}
	if req.IdempotencyKey != "" {
		g.idempotency[req.IdempotencyKey] = id
	}
	return id, nil
}

func (g *FakeGateway) Refund(_ context.Context, req shared.RefundRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ch, ok := g.charges[req.ChargeID]
	if !ok {
		return "", errs.Wrapf(ErrUnknownCharge, "refund of %s", req.ChargeID)
	}
	if ch.RefundID == "" {
		ch.RefundID = "re_fake_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	return ch.RefundID, nil
}

// Lookup returns a copy of the recorded charge.
func (g *FakeGateway) Lookup(chargeID string) (FakeCharge, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ch, ok := g.charges[chargeID]
	if !ok {
		return FakeCharge{}, false
	}
	return *ch, true
}
