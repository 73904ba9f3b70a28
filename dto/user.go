package dto

import (
	"time"

	"noteful/model"
)

// SignupRequest uses pointers for the required fields so a missing key
// and an empty string produce different validation messages.
type SignupRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Fullname string  `json:"fullname"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Fullname  string    `json:"fullname"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.UserID,
		Username:  user.Username,
		Fullname:  user.Fullname,
		CreatedAt: user.CreatedAt,
	}
}
