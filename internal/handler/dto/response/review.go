package response

import (
	"syncro-backend/internal/usecase/queries"
)

type ReviewResponse struct {
	ID                int64   `json:"id"`
	OrderID           int64   `json:"order_id"`
	ReviewerID        int64   `json:"reviewer_id"`
	ReviewerFirstName string  `json:"reviewer_first_name"`
	RevieweeID        int64   `json:"reviewee_id"`
	Rating            int     `json:"rating"`
	Comment           *string `json:"comment,omitempty"`
	CreatedAt         int64   `json:"created_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:                v.ID,
		OrderID:           v.OrderID,
		ReviewerID:        v.ReviewerID,
		ReviewerFirstName: v.ReviewerFirstName,
		RevieweeID:        v.RevieweeID,
		Rating:            v.Rating,
		Comment:           v.Comment,
		CreatedAt:         v.CreatedAt.Unix(),
	}
}

type ReviewListResponse struct {
	Items      []*ReviewResponse `json:"items"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

func FromReviewPage(items []*queries.ReviewView, next *queries.Cursor) ReviewListResponse {
	res := ReviewListResponse{Items: make([]*ReviewResponse, len(items))}
	for i, v := range items {
		res.Items[i] = FromReviewView(v)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
