//go:build unit || e2e

package builder

import (
	"time"

	"syncro-backend/internal/domain/rfp"
	reqdto "syncro-backend/internal/handler/dto/request"
	"syncro-backend/internal/usecase/queries"
)

type RequestBuilder struct {
	ID          int64
	BuyerID     int64
	Title       string
	Description string
	Status      rfp.Status
	CreatedAt   time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		ID:          7,
		BuyerID:     1,
		Title:       "Landing page redesign",
		Description: "Need a new landing page for our product launch",
		Status:      rfp.StatusOpen,
		CreatedAt:   time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(r)
	return r
}

func (r *RequestBuilder) BuildNew() (*rfp.Request, error) {
	return rfp.NewRequest(r.BuyerID, r.Title, r.Description)
}

func (r *RequestBuilder) BuildDomain() *rfp.Request {
	return rfp.Reconstruct(rfp.RequestID(r.ID), r.BuyerID, r.Title, r.Description, r.Status, nil, r.CreatedAt, nil)
}

func (r *RequestBuilder) BuildView() *queries.RequestView {
	return &queries.RequestView{
		ID:             r.ID,
		BuyerID:        r.BuyerID,
		BuyerFirstName: "Taro",
		Title:          r.Title,
		Description:    r.Description,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
	}
}

func (r *RequestBuilder) BuildCreateDTO() reqdto.CreateRequestRequest {
	return reqdto.CreateRequestRequest{
		Title:       r.Title,
		Description: r.Description,
	}
}

// Fluent builder methods
func (r *RequestBuilder) WithID(id int64) *RequestBuilder {
	r.ID = id
	return r
}

func (r *RequestBuilder) WithBuyerID(id int64) *RequestBuilder {
	r.BuyerID = id
	return r
}

func (r *RequestBuilder) WithTitle(title string) *RequestBuilder {
	r.Title = title
	return r
}

func (r *RequestBuilder) WithDescription(description string) *RequestBuilder {
	r.Description = description
	return r
}

func (r *RequestBuilder) AsClosed() *RequestBuilder {
	r.Status = rfp.StatusClosed
	return r
}
