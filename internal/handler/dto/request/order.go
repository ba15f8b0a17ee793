package request

type CreateOrderRequest struct {
	ListingID int64 `json:"listing_id" binding:"required,gt=0"`
}
