package billing

import (
	"context"
	"strings"

	"github.com/KingCastle/Javan/internal/pkg/errs"
	"github.com/KingCastle/Javan/internal/usecase/shared"

	"github.com/stripe/stripe-go/v82"
)

const idempotentReplayedHeader = "Idempotent-Replayed"

var (
	ErrPaymentDeclined   = errs.New("payment declined")
	ErrPaymentIncomplete = errs.New("payment requires further action")
	ErrMissingToken      = errs.New("payment token is required")
)

// StripeGateway charges by creating and confirming a PaymentIntent in one call.
type StripeGateway struct {
	client *stripe.Client
}

func NewStripeGateway(secretKey string, opts ...stripe.ClientOption) (*StripeGateway, error) {
	if strings.TrimSpace(secretKey) == "" {
		return nil, errs.New("stripe secret key is required")
	}
	return &StripeGateway{client: stripe.NewClient(secretKey, opts...)}, nil
}

func (g *StripeGateway) Charge(ctx context.Context, req shared.ChargeRequest) (string, error) {
	if req.PaymentToken == "" {
		return "", ErrMissingToken
	}

	params := &stripe.PaymentIntentCreateParams{
		Amount:        stripe.Int64(req.AmountMinor),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.PaymentToken),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentCreateAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
		Metadata: req.Metadata,
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	if req.PayerEmail != "" {
		params.ReceiptEmail = stripe.String(req.PayerEmail)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	pi, err := g.client.V1PaymentIntents.Create(ctx, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errs.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			return "", errs.Mark(errs.Wrapf(err, "card declined: %s", stripeErr.Code), ErrPaymentDeclined)
		}
		return "", errs.Wrap(err, "stripe payment intent")
	}

	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return "", errs.Mark(errs.Newf("payment intent %s is %s", pi.ID, pi.Status), ErrPaymentIncomplete)
	}
	if replayed(pi.LastResponse) {
		if err := g.ensureNotRefunded(ctx, pi.ID); err != nil {
			return "", err
		}
	}
	return pi.ID, nil
}

// A replayed response is the cached original, so it says nothing about refunds
// made since.
func replayed(resp *stripe.APIResponse) bool {
	return resp != nil && resp.Header.Get(idempotentReplayedHeader) == "true"
}

func (g *StripeGateway) ensureNotRefunded(ctx context.Context, paymentIntentID string) error {
	params := &stripe.PaymentIntentRetrieveParams{}
	params.AddExpand("latest_charge")

	pi, err := g.client.V1PaymentIntents.Retrieve(ctx, paymentIntentID, params)
	if err != nil {
		return errs.Wrapf(err, "stripe payment intent %s", paymentIntentID)
	}
	if pi.LatestCharge != nil && (pi.LatestCharge.Refunded || pi.LatestCharge.AmountRefunded > 0) {
		return errs.Mark(errs.Newf("payment intent %s was refunded", paymentIntentID), shared.ErrChargeRefunded)
	}
	return nil
}

func (g *StripeGateway) Refund(ctx context.Context, req shared.RefundRequest) (string, error) {
	params := &stripe.RefundCreateParams{
		PaymentIntent: stripe.String(req.ChargeID),
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	r, err := g.client.V1Refunds.Create(ctx, params)
	if err != nil {
		return "", errs.Wrapf(err, "stripe refund of %s", req.ChargeID)
	}
	if r.Status == stripe.RefundStatusFailed || r.Status == stripe.RefundStatusCanceled {
		return "", errs.Newf("refund %s is %s", r.ID, r.Status)
	}
	return r.ID, nil
}
