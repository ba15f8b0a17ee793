package repository

import (
	"context"

	"syncro-backend/internal/domain/bid"
	"syncro-backend/internal/domain/rfp"
	"syncro-backend/internal/infra"
	"syncro-backend/internal/infra/repository/converter"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
)

type BidWriteQueries interface {
	LockRequestForBid(ctx context.Context, db sqlc.DBTX, id int64) (string, error)
	InsertBid(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBidParams) (sqlc.Bids, error)
	ListBidsByRequest(ctx context.Context, db sqlc.DBTX, requestID int64) ([]sqlc.Bids, error)
}

type BidRepository struct {
	queries BidWriteQueries
}

func NewBidRepository(queries BidWriteQueries) *BidRepository {
	return &BidRepository{queries: queries}
}

func (r *BidRepository) LockRequest(ctx context.Context, tx sqlc.DBTX, requestID rfp.RequestID) (rfp.Status, error) {
	status, err := r.queries.LockRequestForBid(ctx, tx, requestID.Int64())
	if err != nil {
		return "", infra.WrapRepoErr("failed to lock request for bid", err)
	}
	return rfp.Status(status), nil
}

func (r *BidRepository) Insert(ctx context.Context, tx sqlc.DBTX, d *bid.Draft) (*bid.Bid, error) {
	row, err := r.queries.InsertBid(ctx, tx, converter.DraftToInsertParams(d))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert bid", err)
	}
	b, err := converter.BidFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert bid row", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BidRepository) ListByRequest(ctx context.Context, tx sqlc.DBTX, requestID rfp.RequestID) ([]*bid.Bid, error) {
	rows, err := r.queries.ListBidsByRequest(ctx, tx, requestID.Int64())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bids", err)
	}
	bids, err := converter.BidsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert bid rows", err, infra.KindDBFailure)
	}
	return bids, nil
}
