package shared

import (
	"context"

	"syncro-backend/internal/domain/bid"
	"syncro-backend/internal/domain/listing"
	"syncro-backend/internal/domain/order"
	"syncro-backend/internal/domain/profile"
	"syncro-backend/internal/domain/review"
	"syncro-backend/internal/domain/rfp"
	"syncro-backend/internal/domain/user"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations, re-run on serialization failure or deadlock
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Profiles() ProfileRepository
	Requests() RequestRepository
	Bids() BidRepository
	Listings() ListingRepository
	Orders() OrderRepository
	Reviews() ReviewRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UserByID(ctx context.Context, id int64) (*UserSnapshot, error)
	BidByID(ctx context.Context, id int64) (*BidSnapshot, error)
	ListingByID(ctx context.Context, id int64) (*listing.Listing, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (int64, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID int64) error
	UpdateActiveRole(ctx context.Context, tx sqlc.DBTX, userID int64, role user.Role) error
}

type ProfileRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, p *profile.Profile) error
}

type RequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *rfp.Request) (rfp.RequestID, error)
	// FindForUpdate locks the request row until the transaction ends.
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id rfp.RequestID) (*rfp.Request, error)
	Close(ctx context.Context, tx sqlc.DBTX, r *rfp.Request) error
}

type BidRepository interface {
	// LockRequest takes the per-request append lock and returns the request status.
	LockRequest(ctx context.Context, tx sqlc.DBTX, requestID rfp.RequestID) (rfp.Status, error)
	Insert(ctx context.Context, tx sqlc.DBTX, d *bid.Draft) (*bid.Bid, error)
	ListByRequest(ctx context.Context, tx sqlc.DBTX, requestID rfp.RequestID) ([]*bid.Bid, error)
}

type ListingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) (int64, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*order.Order, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (int64, error)
}
