package components

import (
	"syncro-backend/internal/infra/readstore"
	"syncro-backend/internal/infra/repository"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
	"syncro-backend/internal/infra/store"
	"syncro-backend/internal/infra/uow"
	"syncro-backend/internal/usecase/queries"
	"syncro-backend/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Request
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RequestViewQueries)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		// Bid
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BidViewQueries)),
		),
		fx.Annotate(
			readstore.NewBidReadStore,
			fx.As(new(queries.BidReadStore)),
		),
		// Listing
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ListingViewQueries)),
		),
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingReadStore)),
		),
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderViewQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		// Review
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReviewViewQueries)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		// Profile
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProfileViewQueries)),
		),
		fx.Annotate(
			readstore.NewProfileReadStore,
			fx.As(new(queries.ProfileReadStore)),
		),
	),
)

// Transactional repositories are built per transaction inside the unit of work.
// The bid repository is also needed by the bid store, which owns its own transactions.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Bid
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.BidWriteQueries)),
		),
		fx.Annotate(
			repository.NewBidRepository,
			fx.As(new(shared.BidRepository)),
		),
		// BidStore
		store.NewBidStore,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
