package request

import (
	"syncro-backend/internal/domain/listing"
	"syncro-backend/internal/pkg/patch"
	"syncro-backend/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type CreateListingRequest struct {
	CategoryID   int64           `json:"category_id" binding:"required,gt=0"`
	Title        string          `json:"title" binding:"required,max=100"`
	Description  string          `json:"description" binding:"required"`
	Price        decimal.Decimal `json:"price" swaggertype:"string" example:"1500.00"`
	DeliveryTime *string         `json:"delivery_time" binding:"omitempty,max=100"`
}

func (r *CreateListingRequest) ToDomain() listing.Content {
	return listing.Content{
		CategoryID:   r.CategoryID,
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		DeliveryTime: r.DeliveryTime,
	}
}

// UpdateListingRequest is a partial update; absent fields keep their current value.
type UpdateListingRequest struct {
	CategoryID   *int64           `json:"category_id" binding:"omitempty,gt=0"`
	Title        *string          `json:"title" binding:"omitempty,max=100"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price" swaggertype:"string"`
	DeliveryTime *string          `json:"delivery_time" binding:"omitempty,max=100"`
}

func (r *UpdateListingRequest) ToDomain(existing *queries.ListingView) listing.Content {
	return listing.Content{
		CategoryID:   patch.Coalesce(r.CategoryID, existing.CategoryID),
		Title:        patch.Coalesce(r.Title, existing.Title),
		Description:  patch.Coalesce(r.Description, existing.Description),
		Price:        patch.Coalesce(r.Price, existing.Price),
		DeliveryTime: patch.CoalesceOptional(r.DeliveryTime, existing.DeliveryTime),
	}
}

type ListListingsQuery struct {
	CategoryID *int64 `form:"category_id" binding:"omitempty,gt=0"`
	SellerID   *int64 `form:"seller_id" binding:"omitempty,gt=0"`
	After      string `form:"after"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q *ListListingsQuery) Filter() queries.ListingFilter {
	return queries.ListingFilter{CategoryID: q.CategoryID, SellerID: q.SellerID}
}

func (q *ListListingsQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}
