package gateway

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"syncro-backend/internal/realtime"
)

// connection pairs one socket with its hub session.
type connection struct {
	gw      *Gateway
	ws      *websocket.Conn
	session *realtime.Session
	log     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

func newConnection(gw *Gateway, ws *websocket.Conn, session *realtime.Session) *connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &connection{
		gw:      gw,
		ws:      ws,
		session: session,
		log: slog.With(
			slog.String("conn_id", session.ID().String()),
			slog.Int64("user_id", session.Identity().UserID),
		),
		ctx:    ctx,
		cancel: cancel,
	}
}

// disconnect runs exactly once per connection, whichever loop notices the end first.
func (c *connection) disconnect() {
	c.once.Do(func() {
		left := c.gw.rooms.LeaveAll(c.session.ID())
		c.gw.hub.Unregister(c.session.ID())
		c.cancel()
		_ = c.ws.Close()
		c.log.Info("websocket disconnected", slog.Int("rooms_left", len(left)))
	})
}

// readPump reads inbound frames until the peer goes away or stops answering pings.
func (c *connection) readPump() {
	defer c.disconnect()

	c.ws.SetReadLimit(c.gw.cfg.MaxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(c.gw.cfg.PongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(c.gw.cfg.PongWait))
	})

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("websocket read failed", "error", err.Error())
			}
			return
		}
		c.dispatch(message)
	}
}

// writePump writes one queued event per frame and keeps the peer alive with pings.
func (c *connection) writePump() {
	ticker := time.NewTicker(c.gw.cfg.PingPeriod())
	defer func() {
		ticker.Stop()
		c.disconnect()
	}()

	for {
		select {
		case message := <-c.session.Outbound():
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.gw.cfg.WriteWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				c.log.Debug("websocket write failed", "error", err.Error())
				return
			}
		case <-c.session.Done():
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.gw.cfg.WriteWait))
			_ = c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.gw.cfg.WriteWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// reply queues an event for this connection only.
func (c *connection) reply(event string, payload any) {
	if err := c.gw.hub.Send(c.ctx, c.session.ID(), event, payload); err != nil {
		c.log.Debug("reply dropped", slog.String("event", event), slog.Any("error", err))
	}
}
