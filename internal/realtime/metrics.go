package realtime

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const MetricsSubsystem = "realtime"

// Metrics contains metrics exposed by the realtime bidding path.
type Metrics struct {
	// Number of open websocket sessions.
	Connections metrics.Gauge
	// Number of rooms with at least one subscriber.
	Rooms metrics.Gauge
	// Number of bids persisted through the realtime path.
	BidsAccepted metrics.Counter
	// Number of rejected bid submissions, by kind.
	BidsRejected metrics.Counter
	// Time spent appending a bid to the store, in seconds.
	AppendDuration metrics.Histogram
	// Number of sessions dropped because their send queue was full.
	Evictions metrics.Counter
	// Number of successful per-subscriber deliveries.
	Deliveries metrics.Counter
	// Number of failed per-subscriber deliveries, by reason.
	DeliveryWarnings metrics.Counter
	// Time spent fanning one event out to a room, in seconds.
	FanoutDuration metrics.Histogram
}

// PrometheusMetrics returns Metrics build using Prometheus client library.
func PrometheusMetrics(namespace string) *Metrics {
	return &Metrics{
		Connections: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "connections",
			Help:      "Number of open websocket sessions.",
		}, []string{}),
		Rooms: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "rooms",
			Help:      "Number of rooms with at least one subscriber.",
		}, []string{}),
		BidsAccepted: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "bids_accepted_total",
			Help:      "Number of bids persisted through the realtime path.",
		}, []string{}),
		BidsRejected: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "bids_rejected_total",
			Help:      "Number of rejected bid submissions.",
		}, []string{"kind"}),
		AppendDuration: prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "append_duration_seconds",
			Help:      "Time spent appending a bid to the store.",
			Buckets:   stdprometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{}),
		Evictions: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "evictions_total",
			Help:      "Number of sessions dropped because their send queue was full.",
		}, []string{}),
		Deliveries: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "deliveries_total",
			Help:      "Number of successful per-subscriber deliveries.",
		}, []string{}),
		DeliveryWarnings: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "delivery_warnings_total",
			Help:      "Number of failed per-subscriber deliveries.",
		}, []string{"reason"}),
		FanoutDuration: prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "fanout_duration_seconds",
			Help:      "Time spent fanning one event out to a room.",
			Buckets:   stdprometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{}),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		Connections:      discard.NewGauge(),
		Rooms:            discard.NewGauge(),
		BidsAccepted:     discard.NewCounter(),
		BidsRejected:     discard.NewCounter(),
		AppendDuration:   discard.NewHistogram(),
		Evictions:        discard.NewCounter(),
		Deliveries:       discard.NewCounter(),
		DeliveryWarnings: discard.NewCounter(),
		FanoutDuration:   discard.NewHistogram(),
	}
}
