package response

import (
	"time"

	"syncro-backend/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ListingResponse struct {
	ID           int64     `json:"id"`
	SellerID     int64     `json:"seller_id"`
	CategoryID   int64     `json:"category_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        string    `json:"price" copier:"-"`
	DeliveryTime *string   `json:"delivery_time,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromListingView(v *queries.ListingView) (*ListingResponse, error) {
	res := &ListingResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	res.Price = v.Price.StringFixed(2)
	return res, nil
}

type ListingListResponse struct {
	Items      []*ListingResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

func FromListingPage(items []*queries.ListingView, next *queries.Cursor) (ListingListResponse, error) {
	res := ListingListResponse{Items: make([]*ListingResponse, len(items))}
	for i, v := range items {
		item, err := FromListingView(v)
		if err != nil {
			return ListingListResponse{}, err
		}
		res.Items[i] = item
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}
