package components

import (
	"syncro-backend/internal/pkg/clock"
	"syncro-backend/internal/usecase"
	"syncro-backend/internal/usecase/commands"
	"syncro-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewFanout,
		commands.NewBidEngine,
		commands.NewAuthCommands,
		commands.NewRequestCommands,
		commands.NewListingCommands,
		commands.NewOrderCommands,
		commands.NewReviewCommands,
		commands.NewProfileCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRequestQueries,
		queries.NewListingQueries,
		queries.NewOrderQueries,
		queries.NewReviewQueries,
		queries.NewProfileQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
