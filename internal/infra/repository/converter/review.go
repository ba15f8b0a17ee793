package converter

import (
	"syncro-backend/internal/domain/review"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
	"syncro-backend/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		OrderID:    r.OrderID(),
		ReviewerID: r.ReviewerID(),
		RevieweeID: r.RevieweeID(),
		Rating:     int16(r.Rating().Value()), // #nosec G115 -- rating is validated to 1..5
		Comment:    pgconv.StringPtrToPgtype(r.Comment().Ptr()),
	}
}
