package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"syncro-backend/internal/domain/bid"
	"syncro-backend/internal/domain/rfp"
	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/handler/httperr"
	"syncro-backend/internal/handler/middleware"
	"syncro-backend/internal/pkg/config"
	"syncro-backend/internal/realtime"
	"syncro-backend/internal/usecase"
	"syncro-backend/internal/usecase/commands"
)

// BidHistory serves the join-time snapshot of a room.
type BidHistory interface {
	ListBids(ctx context.Context, requestID rfp.RequestID) ([]*bid.Bid, error)
}

var (
	errTokenMissing = errors.New("websocket access token missing")
	errShuttingDown = errors.New("gateway is shutting down")
)

// Gateway terminates websocket connections and routes their events.
type Gateway struct {
	hub      *realtime.Hub
	rooms    *realtime.Registry
	bids     commands.BidCommands
	history  BidHistory
	tokens   usecase.TokenValidator
	cfg      config.RealtimeConfig
	upgrader websocket.Upgrader

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewGateway(
	hub *realtime.Hub,
	rooms *realtime.Registry,
	bids commands.BidCommands,
	history BidHistory,
	tokens usecase.TokenValidator,
	cfg config.Config,
) *Gateway {
	g := &Gateway{
		hub:     hub,
		rooms:   rooms,
		bids:    bids,
		history: history,
		tokens:  tokens,
		cfg:     cfg.Realtime,
	}
	g.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(cfg.CORS.AllowOrigins),
	}
	return g
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		return slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
	}
}

// @Summary Realtime bidding socket
// @Description Upgrades to a websocket. The token is read from the token query parameter, the access_token cookie, or a Bearer header.
// @Tags realtime
// @Param token query string false "Access token"
// @Success 101 "Switching Protocols"
// @Failure 401 {object} httperr.Response
// @Router /ws [get]
func (g *Gateway) Handle(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = middleware.BearerToken(c)
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errTokenMissing, "Access token required", nil)
		return
	}
	identity, err := g.tokens.ValidateToken(token)
	if err != nil {
		slog.Warn("websocket token rejected", "error", err.Error())
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
		return
	}

	session, ok := g.open(identity)
	if !ok {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, errShuttingDown, "Server is shutting down", nil)
		return
	}
	defer g.wg.Done()

	ws, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already written the HTTP error
		g.hub.Unregister(session.ID())
		slog.Warn("websocket upgrade failed", "error", err.Error())
		return
	}
	conn := newConnection(g, ws, session)

	slog.Info("websocket connected",
		slog.String("conn_id", session.ID().String()),
		slog.Int64("user_id", identity.UserID),
		slog.String("role", identity.Role.String()))

	go conn.writePump()
	conn.readPump()
}

// open registers a session unless shutdown has begun. Registration happens
// under the same lock Shutdown takes, so every session it returns is closed by CloseAll.
func (g *Gateway) open(identity user.Identity) (*realtime.Session, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil, false
	}
	g.wg.Add(1)
	return g.hub.Register(identity), true
}

// Shutdown closes every session and waits for their read loops to return.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()

	g.hub.CloseAll()

	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
