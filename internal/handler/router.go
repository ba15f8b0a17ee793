package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/handler/api"
	"syncro-backend/internal/handler/gateway"
	"syncro-backend/internal/handler/middleware"
	"syncro-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every HTTP entry point so the router signature stays stable as features grow.
type Handlers struct {
	fx.In

	Auth     *api.AuthHandler
	Requests *api.RequestHandler
	Listings *api.ListingHandler
	Orders   *api.OrderHandler
	Reviews  *api.ReviewHandler
	Profiles *api.ProfileHandler
	Gateway  *gateway.Gateway
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/ws", h.Gateway.Handle)

	if cfg.Metrics.Enabled {
		engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	asClient := authMiddleware.RequireActiveRole(user.RoleClient)
	asSeller := authMiddleware.RequireActiveRole(user.RoleSeller)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodPost, Path: "/toggle-role", Handler: h.Auth.ToggleRole},
			})
		}

		requests := apiGroup.Group("/requests")
		requests.Use(requireAuth)
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Requests.Create, Mw: []gin.HandlerFunc{asClient}},
				{Method: http.MethodGet, Path: "", Handler: h.Requests.ListOpen},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Requests.Get},
				{Method: http.MethodGet, Path: "/:id/bids", Handler: h.Requests.ListBids},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Requests.Cancel},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Requests.Accept},
			})
		}

		listings := apiGroup.Group("/listings")
		{
			addRoutes(listings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Listings.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Listings.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Listings.Create, Mw: []gin.HandlerFunc{requireAuth, asSeller}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Listings.Update, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(requireAuth)
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Orders.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Orders.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Orders.Get},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Orders.Complete},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Orders.Cancel},
				{Method: http.MethodPost, Path: "/:id/reviews", Handler: h.Reviews.Create},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(requireAuth)
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Reviews.ListByUser},
			})
		}

		profiles := apiGroup.Group("/profiles")
		{
			addRoutes(profiles, []route{
				{Method: http.MethodPut, Path: "/me", Handler: h.Profiles.UpsertMine, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/:user_id", Handler: h.Profiles.Get},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
