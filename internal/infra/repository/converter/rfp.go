package converter

import (
	"syncro-backend/internal/domain/rfp"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
	"syncro-backend/internal/pkg/pgconv"
)

func RequestFromRow(row sqlc.Requests) *rfp.Request {
	return rfp.Reconstruct(
		rfp.RequestID(row.ID),
		row.BuyerID,
		row.Title,
		row.Description,
		rfp.Status(row.Status),
		pgconv.Int64PtrFromPgtype(row.AcceptedBidID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.ClosedAt),
	)
}

func RequestToCloseParams(r *rfp.Request) sqlc.CloseRequestParams {
	return sqlc.CloseRequestParams{
		ID:            r.ID().Int64(),
		AcceptedBidID: pgconv.Int64PtrToPgtype(r.AcceptedBidID()),
	}
}
