package components

import (
	"context"

	"syncro-backend/internal/handler"
	"syncro-backend/internal/handler/api"
	"syncro-backend/internal/handler/gateway"
	"syncro-backend/internal/handler/middleware"
	"syncro-backend/internal/usecase/shared"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRequestHandler,
		api.NewListingHandler,
		api.NewOrderHandler,
		api.NewReviewHandler,
		api.NewProfileHandler,
		middleware.NewAuthMiddleware,
		func(s shared.BidStore) gateway.BidHistory { return s },
		gateway.NewGateway,
	),
	fx.Invoke(
		handler.NewRouter,
		registerGatewayShutdown,
	),
)

func registerGatewayShutdown(lc fx.Lifecycle, gw *gateway.Gateway) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return gw.Shutdown(ctx)
		},
	})
}
