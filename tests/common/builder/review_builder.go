//go:build unit || e2e

package builder

import (
	"time"

	"syncro-backend/internal/domain/order"
	domreview "syncro-backend/internal/domain/review"
	reqdto "syncro-backend/internal/handler/dto/request"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
	"syncro-backend/internal/pkg/ptr"
	"syncro-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ReviewBuilder struct {
	ID                int64
	OrderID           int64
	ReviewerID        int64
	ReviewerFirstName string
	RevieweeID        int64
	Rating            int
	Comment           *string
	CreatedAt         time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:                1,
		OrderID:           10,
		ReviewerID:        100,
		ReviewerFirstName: "Hanako",
		RevieweeID:        200,
		Rating:            5,
		Comment:           ptr.Of("Excellent service!"),
		CreatedAt:         time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.OrderID, r.ReviewerID, r.RevieweeID, r.Rating, r.Comment, r.CreatedAt)
}

// BuildCompletedOrder returns the order the review is written against, with the reviewer as buyer.
func (r *ReviewBuilder) BuildCompletedOrder() *order.Order {
	completedAt := r.CreatedAt.Add(-time.Hour)
	return order.Reconstruct(r.OrderID, r.ReviewerID, r.RevieweeID, nil, "Logo design",
		decimal.NewFromInt(5000), order.StatusCompleted, r.CreatedAt.Add(-24*time.Hour), &completedAt)
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	comment := pgtype.Text{}
	if r.Comment != nil {
		comment = pgtype.Text{String: *r.Comment, Valid: true}
	}
	return sqlc.Reviews{
		ID:         r.ID,
		OrderID:    r.OrderID,
		ReviewerID: r.ReviewerID,
		RevieweeID: r.RevieweeID,
		Rating:     int16(r.Rating), // #nosec G115 -- test data
		Comment:    comment,
		CreatedAt:  pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:                r.ID,
		OrderID:           r.OrderID,
		ReviewerID:        r.ReviewerID,
		ReviewerFirstName: r.ReviewerFirstName,
		RevieweeID:        r.RevieweeID,
		Rating:            r.Rating,
		Comment:           r.Comment,
		CreatedAt:         r.CreatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithID(id int64) *ReviewBuilder {
	r.ID = id
	return r
}

func (r *ReviewBuilder) WithOrderID(orderID int64) *ReviewBuilder {
	r.OrderID = orderID
	return r
}

func (r *ReviewBuilder) WithReviewerID(reviewerID int64) *ReviewBuilder {
	r.ReviewerID = reviewerID
	return r
}

func (r *ReviewBuilder) WithRevieweeID(revieweeID int64) *ReviewBuilder {
	r.RevieweeID = revieweeID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = &comment
	return r
}

func (r *ReviewBuilder) WithoutComment() *ReviewBuilder {
	r.Comment = nil
	return r
}

func (r *ReviewBuilder) WithCreatedAt(createdAt time.Time) *ReviewBuilder {
	r.CreatedAt = createdAt
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Comment = ptr.Of("Poor service")
	return r
}
