package store

import (
	"context"

	"syncro-backend/internal/domain/bid"
	"syncro-backend/internal/domain/rfp"
	"syncro-backend/internal/infra"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
	"syncro-backend/internal/usecase/shared"
)

// BidStore appends and lists bids on top of the unit of work.
// Each append runs in its own transaction holding the request row lock,
// so appends for one request commit one at a time in timestamp order.
type BidStore struct {
	uow  shared.UnitOfWork
	bids shared.BidRepository
}

func NewBidStore(uow shared.UnitOfWork, bids shared.BidRepository) shared.BidStore {
	return &BidStore{uow: uow, bids: bids}
}

func (s *BidStore) AppendBid(ctx context.Context, d *bid.Draft) (*bid.Bid, error) {
	var appended *bid.Bid
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		status, err := tx.Bids().LockRequest(ctx, tx.DB(), d.RequestID())
		if err != nil {
			return err
		}
		if status != rfp.StatusOpen {
			return infra.WrapRepoErr("request does not accept bids", nil, infra.KindNotFound)
		}

		b, err := tx.Bids().Insert(ctx, tx.DB(), d)
		if err != nil {
			return err
		}
		appended = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return appended, nil
}

func (s *BidStore) ListBids(ctx context.Context, requestID rfp.RequestID) ([]*bid.Bid, error) {
	var bids []*bid.Bid
	err := s.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		bids, err = s.bids.ListByRequest(ctx, db, requestID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return bids, nil
}
