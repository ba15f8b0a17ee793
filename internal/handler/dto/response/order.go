package response

import (
	"time"

	"syncro-backend/internal/usecase/queries"
)

type OrderResponse struct {
	ID          int64      `json:"id"`
	BuyerID     int64      `json:"buyer_id"`
	SellerID    int64      `json:"seller_id"`
	ListingID   *int64     `json:"listing_id,omitempty"`
	ServiceName string     `json:"service_name"`
	Amount      string     `json:"amount"`
	Status      string     `json:"status"`
	HasReview   bool       `json:"has_review"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:          v.ID,
		BuyerID:     v.BuyerID,
		SellerID:    v.SellerID,
		ListingID:   v.ListingID,
		ServiceName: v.ServiceName,
		Amount:      v.Amount.StringFixed(2),
		Status:      v.Status,
		HasReview:   v.HasReview,
		CreatedAt:   v.CreatedAt,
		CompletedAt: v.CompletedAt,
	}
}

func FromOrderViews(items []*queries.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(items))
	for i, v := range items {
		res[i] = FromOrderView(v)
	}
	return res
}
