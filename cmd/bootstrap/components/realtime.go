package components

import (
	"syncro-backend/internal/pkg/config"
	"syncro-backend/internal/realtime"
	"syncro-backend/internal/usecase/commands"

	"go.uber.org/fx"
)

// RealtimeModule holds the process-wide room registry and session hub.
// Both start empty; subscriptions do not survive a restart.
var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		NewRealtimeMetrics,
		fx.Annotate(
			realtime.NewRegistry,
			fx.As(fx.Self()),
			fx.As(new(commands.RoomDirectory)),
		),
		func(cfg config.Config, metrics *realtime.Metrics) *realtime.Hub {
			return realtime.NewHub(cfg.Realtime, metrics)
		},
		func(h *realtime.Hub) commands.MessageSender { return h },
		func(cfg config.Config) config.RealtimeConfig { return cfg.Realtime },
	),
)

// NewRealtimeMetrics registers the Prometheus collectors once per process.
func NewRealtimeMetrics(cfg config.Config) *realtime.Metrics {
	if !cfg.Metrics.Enabled {
		return realtime.NopMetrics()
	}
	return realtime.PrometheusMetrics(cfg.Metrics.Namespace)
}
