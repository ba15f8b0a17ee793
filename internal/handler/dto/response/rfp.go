package response

import (
	"time"

	"syncro-backend/internal/usecase/queries"
)

type RequestResponse struct {
	ID             int64      `json:"id"`
	BuyerID        int64      `json:"buyer_id"`
	BuyerFirstName string     `json:"buyer_first_name"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	AcceptedBidID  *int64     `json:"accepted_bid_id"`
	BidCount       int64      `json:"bid_count"`
	CreatedAt      time.Time  `json:"created_at"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
}

func FromRequestView(v *queries.RequestView) *RequestResponse {
	return &RequestResponse{
		ID:             v.ID,
		BuyerID:        v.BuyerID,
		BuyerFirstName: v.BuyerFirstName,
		Title:          v.Title,
		Description:    v.Description,
		Status:         v.Status,
		AcceptedBidID:  v.AcceptedBidID,
		BidCount:       v.BidCount,
		CreatedAt:      v.CreatedAt,
		ClosedAt:       v.ClosedAt,
	}
}

type RequestListResponse struct {
	Items      []*RequestResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

func FromRequestPage(items []*queries.RequestView, next *queries.Cursor) RequestListResponse {
	res := RequestListResponse{Items: make([]*RequestResponse, len(items))}
	for i, v := range items {
		res.Items[i] = FromRequestView(v)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

// BidResponse matches the bid_added payload so HTTP and websocket clients share one shape.
type BidResponse struct {
	ID        int64   `json:"id"`
	RequestID int64   `json:"request_id"`
	SellerID  int64   `json:"seller_id"`
	Amount    string  `json:"amount"`
	Message   *string `json:"message"`
	Timestamp string  `json:"timestamp"`
}

func FromBidViews(items []*queries.BidView) []BidResponse {
	res := make([]BidResponse, len(items))
	for i, b := range items {
		res[i] = BidResponse{
			ID:        b.ID,
			RequestID: b.RequestID,
			SellerID:  b.SellerID,
			Amount:    b.Amount.String(),
			Message:   b.Message,
			Timestamp: b.CreatedAt.UTC().Format(time.RFC3339Nano),
		}
	}
	return res
}
