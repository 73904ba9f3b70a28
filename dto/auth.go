package dto

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthTokenResponse struct {
	AuthToken string `json:"authToken"`
}
