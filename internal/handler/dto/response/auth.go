package response

import "syncro-backend/internal/usecase/commands"

type AuthUser struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	Role      string `json:"role"`
}

type AuthResponse struct {
	AccessToken string   `json:"access_token"`
	User        AuthUser `json:"user"`
}

func FromAuthResult(r *commands.AuthResult) AuthResponse {
	return AuthResponse{
		AccessToken: r.AccessToken,
		User: AuthUser{
			ID:        r.UserID,
			Email:     r.Email,
			FirstName: r.FirstName,
			Role:      r.Role.String(),
		},
	}
}
