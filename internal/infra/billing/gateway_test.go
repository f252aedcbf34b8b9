//go:build unit

package billing_test

import (
	"context"
	"testing"

	"github.com/KingCastle/Javan/internal/infra/billing"
	"github.com/KingCastle/Javan/internal/pkg/config"
	"github.com/KingCastle/Javan/internal/pkg/errs"
	"github.com/KingCastle/Javan/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGateway(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.BillingConfig
		wantErr bool
		check   func(t *testing.T, gw shared.BillingGateway)
	}{
		{
			name: "fake driver",
			cfg:  config.BillingConfig{Driver: billing.DriverFake},
			check: func(t *testing.T, gw shared.BillingGateway) {
				assert.IsType(t, &billing.FakeGateway{}, gw)
			},
		},
		{
			name: "empty driver falls back to fake",
			cfg:  config.BillingConfig{},
			check: func(t *testing.T, gw shared.BillingGateway) {
				assert.IsType(t, &billing.FakeGateway{}, gw)
			},
		},
		{
			name: "stripe driver",
			cfg:  config.BillingConfig{Driver: billing.DriverStripe, StripeSecretKey: "sk_test_123"},
			check: func(t *testing.T, gw shared.BillingGateway) {
				assert.IsType(t, &billing.StripeGateway{}, gw)
			},
		},
		{
			name:    "stripe driver without key",
			cfg:     config.BillingConfig{Driver: billing.DriverStripe, StripeSecretKey: "  "},
			wantErr: true,
		},
		{
			name:    "unknown driver",
			cfg:     config.BillingConfig{Driver: "paypal"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, err := billing.NewGateway(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, gw)
		})
	}
}

func TestStripeGatewayRequiresToken(t *testing.T) {
	gw, err := billing.NewStripeGateway("sk_test_123")
	require.NoError(t, err)

	_, err = gw.Charge(context.Background(), shared.ChargeRequest{AmountMinor: 1000, Currency: "gbp"})

	assert.ErrorIs(t, err, billing.ErrMissingToken)
}

func TestFakeGateway(t *testing.T) {
	ctx := context.Background()
	charge := shared.ChargeRequest{
		AmountMinor:    2500,
		Currency:       "gbp",
		PayerEmail:     "payer@example.com",
		PaymentToken:   "tok_visa",
		IdempotencyKey: "book-1",
	}

	t.Run("charge is recorded", func(t *testing.T) {
		gw := billing.NewFakeGateway()

		id, err := gw.Charge(ctx, charge)

		require.NoError(t, err)
		got, ok := gw.Lookup(id)
		require.True(t, ok)
		assert.Equal(t, int64(2500), got.AmountMinor)
		assert.Equal(t, "payer@example.com", got.PayerEmail)
	})

	t.Run("same idempotency key returns the same charge", func(t *testing.T) {
		gw := billing.NewFakeGateway()

		first, err := gw.Charge(ctx, charge)
		require.NoError(t, err)
		second, err := gw.Charge(ctx, charge)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("replay of a refunded charge is refused", func(t *testing.T) {
		gw := billing.NewFakeGateway()

		id, err := gw.Charge(ctx, charge)
		require.NoError(t, err)
		_, err = gw.Refund(ctx, shared.RefundRequest{ChargeID: id})
		require.NoError(t, err)

		replayed, err := gw.Charge(ctx, charge)

		assert.Empty(t, replayed)
		assert.True(t, errs.Is(err, shared.ErrChargeRefunded))
	})

	t.Run("no idempotency key always charges", func(t *testing.T) {
		gw := billing.NewFakeGateway()
		req := charge
		req.IdempotencyKey = ""

		first, _ := gw.Charge(ctx, req)
		second, _ := gw.Charge(ctx, req)

		assert.NotEqual(t, first, second)
	})

	t.Run("decline token", func(t *testing.T) {
		gw := billing.NewFakeGateway()
		req := charge
		req.PaymentToken = billing.DeclineToken

		_, err := gw.Charge(ctx, req)

		assert.True(t, errs.Is(err, billing.ErrPaymentDeclined))
	})

	t.Run("missing token", func(t *testing.T) {
		gw := billing.NewFakeGateway()
		req := charge
		req.PaymentToken = ""

		_, err := gw.Charge(ctx, req)

		assert.ErrorIs(t, err, billing.ErrMissingToken)
	})

	t.Run("refund is idempotent per charge", func(t *testing.T) {
		gw := billing.NewFakeGateway()
		id, err := gw.Charge(ctx, charge)
		require.NoError(t, err)

		first, err := gw.Refund(ctx, shared.RefundRequest{ChargeID: id, IdempotencyKey: "refund-a"})
		require.NoError(t, err)
		second, err := gw.Refund(ctx, shared.RefundRequest{ChargeID: id, IdempotencyKey: "refund-b"})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		got, _ := gw.Lookup(id)
		assert.Equal(t, first, got.RefundID)
	})

	t.Run("refund of unknown charge", func(t *testing.T) {
		gw := billing.NewFakeGateway()

		_, err := gw.Refund(ctx, shared.RefundRequest{ChargeID: "pi_missing"})

		assert.True(t, errs.Is(err, billing.ErrUnknownCharge))
	})
}
