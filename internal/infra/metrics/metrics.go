package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "javan"

// Metrics owns every collector the service exports and the registry that
// /metrics serves.
type Metrics struct {
	registry *prometheus.Registry

	bookings        *prometheus.CounterVec
	bookedSeats     prometheus.Counter
	bookedRevenue   prometheus.Counter
	refunds         *prometheus.CounterVec
	refundedRevenue prometheus.Counter
	compensations   *prometheus.CounterVec
	notifications   *prometheus.CounterVec
	queueDrops      prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &Metrics{
		registry: registry,
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Booking workflow executions by outcome.",
		}, []string{"outcome"}),
		bookedSeats: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booked_seats_total",
			Help:      "Seats confirmed by successful bookings.",
		}),
		bookedRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booked_amount_minor_total",
			Help:      "Amount charged for confirmed bookings, in minor currency units.",
		}),
		refunds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refunds_total",
			Help:      "Refund workflow executions by outcome.",
		}, []string{"outcome"}),
		refundedRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refunded_amount_minor_total",
			Help:      "Amount refunded, in minor currency units.",
		}),
		compensations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compensating_refunds_total",
			Help:      "Refunds issued for charges whose booking could not be recorded.",
		}, []string{"outcome"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification delivery attempts by kind and outcome.",
		}, []string{"kind", "outcome"}),
		queueDrops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_queue_drops_total",
			Help:      "Jobs left to the sweeper because the in-memory queue was full.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	registry.MustRegister(
		m.bookings,
		m.bookedSeats,
		m.bookedRevenue,
		m.refunds,
		m.refundedRevenue,
		m.compensations,
		m.notifications,
		m.queueDrops,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Handler serves only this registry, never the process-wide default one.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveBooking(outcome string, seats int, amountMinor int64) {
	m.bookings.WithLabelValues(outcome).Inc()
	if seats > 0 {
		m.bookedSeats.Add(float64(seats))
	}
	if amountMinor > 0 {
		m.bookedRevenue.Add(float64(amountMinor))
	}
}

func (m *Metrics) ObserveRefund(outcome string, amountMinor int64) {
	m.refunds.WithLabelValues(outcome).Inc()
	if amountMinor > 0 {
		m.refundedRevenue.Add(float64(amountMinor))
	}
}

func (m *Metrics) ObserveCompensation(outcome string) {
	m.compensations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveNotification(kind, outcome string) {
	m.notifications.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) ObserveQueueDrop() {
	m.queueDrops.Inc()
}

// HTTPMiddleware labels by route template so path parameters do not explode cardinality.
func (m *Metrics) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
