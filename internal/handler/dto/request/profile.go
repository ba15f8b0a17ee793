package request

import "syncro-backend/internal/usecase/commands"

type UpsertProfileRequest struct {
	DisplayName string  `json:"display_name" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Address     *string `json:"address" binding:"omitempty,max=255"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Website     *string `json:"website" binding:"omitempty,url"`
}

func (r *UpsertProfileRequest) ToInput() commands.UpsertProfileInput {
	return commands.UpsertProfileInput{
		DisplayName: r.DisplayName,
		Description: r.Description,
		Address:     r.Address,
		Phone:       r.Phone,
		Website:     r.Website,
	}
}
