//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KingCastle/Javan/internal/infra/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetrics(t *testing.T) (*metrics.Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return metrics.NewMetrics(reg), reg
}

func TestObserveBooking(t *testing.T) {
	m, reg := newMetrics(t)

	m.ObserveBooking("confirmed", 3, 4500)
	m.ObserveBooking("confirmed", 1, 1500)
	m.ObserveBooking("sold_out", 0, 0)

	expected := `
# HELP javan_bookings_total Booking workflow executions by outcome.
# TYPE javan_bookings_total counter
javan_bookings_total{outcome="confirmed"} 2
javan_bookings_total{outcome="sold_out"} 1
# HELP javan_booked_seats_total Seats confirmed by successful bookings.
# TYPE javan_booked_seats_total counter
javan_booked_seats_total 4
# HELP javan_booked_amount_minor_total Amount charged for confirmed bookings, in minor currency units.
# TYPE javan_booked_amount_minor_total counter
javan_booked_amount_minor_total 6000
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"javan_bookings_total", "javan_booked_seats_total", "javan_booked_amount_minor_total"))
}

func TestObserveRefundAndCompensation(t *testing.T) {
	m, reg := newMetrics(t)

	m.ObserveRefund("refunded", 2500)
	m.ObserveRefund("rejected", 0)
	m.ObserveCompensation("compensated")
	m.ObserveCompensation("uncompensated")
	m.ObserveCompensation("compensated")

	expected := `
# HELP javan_refunded_amount_minor_total Amount refunded, in minor currency units.
# TYPE javan_refunded_amount_minor_total counter
javan_refunded_amount_minor_total 2500
# HELP javan_compensating_refunds_total Refunds issued for charges whose booking could not be recorded.
# TYPE javan_compensating_refunds_total counter
javan_compensating_refunds_total{outcome="compensated"} 2
javan_compensating_refunds_total{outcome="uncompensated"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"javan_refunded_amount_minor_total", "javan_compensating_refunds_total"))
}

func TestObserveNotification(t *testing.T) {
	m, reg := newMetrics(t)

	m.ObserveNotification("booking.admin_alert", "sent")
	m.ObserveNotification("booking.admin_alert", "dropped")
	m.ObserveQueueDrop()

	count, err := testutil.GatherAndCount(reg, "javan_notifications_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	expected := `
# HELP javan_notification_queue_drops_total Jobs left to the sweeper because the in-memory queue was full.
# TYPE javan_notification_queue_drops_total counter
javan_notification_queue_drops_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "javan_notification_queue_drops_total"))
}

func TestHTTPMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m, reg := newMetrics(t)

	engine := gin.New()
	engine.Use(m.HTTPMiddleware())
	engine.GET("/api/events/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/events/a", "/api/events/b", "/nowhere"} {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP javan_http_requests_total HTTP requests by method, route and status.
# TYPE javan_http_requests_total counter
javan_http_requests_total{method="GET",route="/api/events/:id",status="200"} 2
javan_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "javan_http_requests_total"))
}

func TestNewMetricsRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewMetrics(reg)

	assert.Panics(t, func() { metrics.NewMetrics(reg) })
}

func TestHandlerServesOwnRegistry(t *testing.T) {
	m, _ := newMetrics(t)
	m.ObserveCompensation("compensated")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `javan_compensating_refunds_total{outcome="compensated"} 1`)
	assert.NotContains(t, body, "go_goroutines", "default registry must not leak into the scrape")
}
