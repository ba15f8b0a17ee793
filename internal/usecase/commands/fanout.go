package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"syncro-backend/internal/domain/rfp"
	"syncro-backend/internal/pkg/config"
	"syncro-backend/internal/realtime"
)

// DeliveryWarning records one subscriber that did not receive an event.
// It never affects the persisted state or other subscribers.
type DeliveryWarning struct {
	Conn   realtime.ConnID
	Event  string
	Reason string
	Err    error
}

const (
	ReasonTimeout      = "timeout"
	ReasonSlowConsumer = "slow_consumer"
	ReasonDisconnected = "disconnected"
	ReasonSendFailed   = "send_failed"
)

func warningReason(err error) string {
	switch {
	case errors.Is(err, realtime.ErrSlowConsumer):
		return ReasonSlowConsumer
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, realtime.ErrConnectionClosed), errors.Is(err, realtime.ErrUnknownConnection):
		return ReasonDisconnected
	default:
		return ReasonSendFailed
	}
}

// Fanout delivers an event to every member of a room with bounded parallelism.
type Fanout struct {
	rooms   RoomDirectory
	sender  MessageSender
	workers int
	timeout time.Duration
	metrics *realtime.Metrics
}

func NewFanout(rooms RoomDirectory, sender MessageSender, cfg config.RealtimeConfig, metrics *realtime.Metrics) *Fanout {
	if metrics == nil {
		metrics = realtime.NopMetrics()
	}
	workers := cfg.FanoutWorkers
	if workers <= 0 {
		workers = 1
	}
	return &Fanout{
		rooms:   rooms,
		sender:  sender,
		workers: workers,
		timeout: cfg.DeliveryTimeout,
		metrics: metrics,
	}
}

// Broadcast snapshots the room and sends to each member. The snapshot is taken
// at call time, so connections that join later are not included.
func (f *Fanout) Broadcast(ctx context.Context, requestID rfp.RequestID, event string, payload any) []DeliveryWarning {
	started := time.Now()
	subscribers := f.rooms.SubscribersOf(requestID)
	if len(subscribers) == 0 {
		return nil
	}

	results := make([]error, len(subscribers))
	var g errgroup.Group
	g.SetLimit(f.workers)
	for i, conn := range subscribers {
		g.Go(func() error {
			dctx, cancel := context.WithTimeout(ctx, f.timeout)
			defer cancel()
			results[i] = f.sender.Send(dctx, conn, event, payload)
			return nil
		})
	}
	_ = g.Wait()

	var warnings []DeliveryWarning
	for i, err := range results {
		if err == nil {
			f.metrics.Deliveries.Add(1)
			continue
		}
		w := DeliveryWarning{Conn: subscribers[i], Event: event, Reason: warningReason(err), Err: err}
		f.metrics.DeliveryWarnings.With("reason", w.Reason).Add(1)
		slog.Warn("delivery failed",
			slog.String("event", event),
			slog.Int64("request_id", requestID.Int64()),
			slog.String("conn_id", w.Conn.String()),
			slog.String("reason", w.Reason),
			slog.Any("error", err))
		warnings = append(warnings, w)
	}
	f.metrics.FanoutDuration.Observe(time.Since(started).Seconds())
	return warnings
}
