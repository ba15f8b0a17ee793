package review

import (
	"time"
)

type Review struct {
	id         int64
	orderID    int64
	reviewerID int64
	revieweeID int64
	rating     Rating
	comment    Comment
	createdAt  time.Time
}

func NewReview(orderID, reviewerID, revieweeID int64, ratingValue int, commentText *string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		orderID:    orderID,
		reviewerID: reviewerID,
		revieweeID: revieweeID,
		rating:     rating,
		comment:    comment,
		createdAt:  now,
	}, nil
}

func (r *Review) ID() int64            { return r.id }
func (r *Review) OrderID() int64       { return r.orderID }
func (r *Review) ReviewerID() int64    { return r.reviewerID }
func (r *Review) RevieweeID() int64    { return r.revieweeID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
