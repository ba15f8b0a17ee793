package response

import (
	"time"

	"syncro-backend/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ProfileResponse struct {
	UserID      int64     `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Description *string   `json:"description,omitempty"`
	Address     *string   `json:"address,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Website     *string   `json:"website,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProfileView(v *queries.ProfileView) (*ProfileResponse, error) {
	res := &ProfileResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}
