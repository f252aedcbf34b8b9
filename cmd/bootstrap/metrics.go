package bootstrap

import (
	"github.com/KingCastle/Javan/internal/infra/metrics"
	"github.com/KingCastle/Javan/internal/infra/notify"
	"github.com/KingCastle/Javan/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		func(m *metrics.Metrics) shared.BookingMetrics { return m },
		func(m *metrics.Metrics) notify.Metrics { return m },
	),
)

func NewMetrics() *metrics.Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return metrics.NewMetrics(reg)
}
