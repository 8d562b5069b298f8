package response

import (
	"time"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
)

// UserResponse uses camelCase keys while transaction payloads use
// snake_case. The inconsistency is part of the published surface.
type UserResponse struct {
	IDUser    int64           `json:"idUser"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Token     string          `json:"token,omitempty"`
}

func UserToResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		IDUser:    user.IDUser,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
