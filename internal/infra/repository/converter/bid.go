package converter

import (
	"syncro-backend/internal/domain/bid"
	"syncro-backend/internal/domain/rfp"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
	"syncro-backend/internal/pkg/pgconv"
)

func DraftToInsertParams(d *bid.Draft) sqlc.InsertBidParams {
	return sqlc.InsertBidParams{
		RequestID: d.RequestID().Int64(),
		SellerID:  d.SellerID(),
		Amount:    pgconv.DecimalToNumeric(d.Amount().Decimal()),
		Message:   pgconv.StringPtrToPgtype(d.Message()),
	}
}

func BidFromRow(row sqlc.Bids) (*bid.Bid, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	return bid.Reconstruct(
		row.ID,
		rfp.RequestID(row.RequestID),
		row.SellerID,
		amount,
		pgconv.StringPtrFromPgtype(row.Message),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func BidsFromRows(rows []sqlc.Bids) ([]*bid.Bid, error) {
	bids := make([]*bid.Bid, 0, len(rows))
	for _, row := range rows {
		b, err := BidFromRow(row)
		if err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, nil
}
