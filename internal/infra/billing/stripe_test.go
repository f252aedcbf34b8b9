//go:build unit

package billing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KingCastle/Javan/internal/infra/billing"
	"github.com/KingCastle/Javan/internal/pkg/errs"
	"github.com/KingCastle/Javan/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

const succeededIntent = `{"id":"pi_1","object":"payment_intent","status":"succeeded","amount":1500,"currency":"gbp"}`

// newStubStripe serves PaymentIntent create and retrieve. The create response
// carries the replay header when replayed is set.
func newStubStripe(t *testing.T, replayed bool, latestCharge string) *billing.StripeGateway {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/payment_intents", func(w http.ResponseWriter, _ *http.Request) {
		if replayed {
			w.Header().Set("Idempotent-Replayed", "true")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(succeededIntent))
	})
	mux.HandleFunc("GET /v1/payment_intents/pi_1", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "latest_charge")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","status":"succeeded","latest_charge":` + latestCharge + `}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	backends := stripe.NewBackendsWithConfig(&stripe.BackendConfig{
		URL:               stripe.String(server.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	gw, err := billing.NewStripeGateway("sk_test_123", stripe.WithBackends(backends))
	require.NoError(t, err)
	return gw
}

func TestStripeGatewayReplay(t *testing.T) {
	req := shared.ChargeRequest{
		AmountMinor:    1500,
		Currency:       "gbp",
		PaymentToken:   "pm_card_visa",
		IdempotencyKey: "book-u-retry-1",
	}

	tests := []struct {
		name         string
		replayed     bool
		latestCharge string
		wantID       string
		wantRefunded bool
	}{
		{name: "first request", replayed: false, latestCharge: `null`, wantID: "pi_1"},
		{name: "replay of a live charge", replayed: true, latestCharge: `{"id":"ch_1","object":"charge","refunded":false,"amount_refunded":0}`, wantID: "pi_1"},
		{name: "replay of a refunded charge", replayed: true, latestCharge: `{"id":"ch_1","object":"charge","refunded":true,"amount_refunded":1500}`, wantRefunded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newStubStripe(t, tt.replayed, tt.latestCharge)

			id, err := gw.Charge(context.Background(), req)

			if tt.wantRefunded {
				assert.Empty(t, id)
				assert.True(t, errs.Is(err, shared.ErrChargeRefunded), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
