package request

import "syncro-backend/internal/usecase/commands"

type CreateRequestRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
}

func (r *CreateRequestRequest) ToInput() commands.CreateRequestInput {
	return commands.CreateRequestInput{Title: r.Title, Description: r.Description}
}

type AcceptBidRequest struct {
	BidID int64 `json:"bid_id" binding:"required,gt=0"`
}
