package repository

import (
	"context"

	"syncro-backend/internal/domain/rfp"
	"syncro-backend/internal/infra"
	"syncro-backend/internal/infra/repository/converter"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
)

type RequestWriteQueries interface {
	CreateRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRequestParams) (sqlc.Requests, error)
	GetRequestForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Requests, error)
	CloseRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CloseRequestParams) (int64, error)
}

type RequestRepository struct {
	queries RequestWriteQueries
}

func NewRequestRepository(queries RequestWriteQueries) *RequestRepository {
	return &RequestRepository{queries: queries}
}

func (r *RequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *rfp.Request) (rfp.RequestID, error) {
	row, err := r.queries.CreateRequest(ctx, tx, sqlc.CreateRequestParams{
		BuyerID:     req.BuyerID(),
		Title:       req.Title(),
		Description: req.Description(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create request", err)
	}
	return rfp.RequestID(row.ID), nil
}

func (r *RequestRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id rfp.RequestID) (*rfp.Request, error) {
	row, err := r.queries.GetRequestForUpdate(ctx, tx, id.Int64())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load request", err)
	}
	return converter.RequestFromRow(row), nil
}

func (r *RequestRepository) Close(ctx context.Context, tx sqlc.DBTX, req *rfp.Request) error {
	affected, err := r.queries.CloseRequest(ctx, tx, converter.RequestToCloseParams(req))
	if err != nil {
		return infra.WrapRepoErr("failed to close request", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("request not open", nil, infra.KindNotFound)
	}
	return nil
}
