package review

import (
	"time"

	"syncro-backend/internal/domain/order"
)

// ForOrder writes a review of the other party of a completed order.
func ForOrder(o *order.Order, reviewerID int64, ratingValue int, commentText *string, now time.Time) (*Review, error) {
	if o.Status() != order.StatusCompleted {
		return nil, ErrOrderNotEligible
	}
	revieweeID, err := o.Counterpart(reviewerID)
	if err != nil {
		return nil, err
	}
	return NewReview(o.ID(), reviewerID, revieweeID, ratingValue, commentText, now)
}
