package handler

import (
	"noteful/dto"
	"noteful/services"
	"noteful/usecase"
	"noteful/utils"

	"github.com/gin-gonic/gin"
)

// LoginHandler verifies credentials and responds with a session token.
// Unknown username and wrong password produce the same 401.
func LoginHandler(c *gin.Context, userService *usecase.UserService, tokens *services.TokenService) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "login")
		utils.BadRequest(c, "Missing credentials")
		return
	}

	user, err := userService.VerifyCredentials(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.TrackAuthAttempt("failure", "login")
		respondError(c, err)
		return
	}

	authToken, err := tokens.Issue(user)
	if err != nil {
		utils.TrackAuthAttempt("failure", "login")
		respondError(c, err)
		return
	}

	utils.TrackAuthAttempt("success", "login")
	utils.Success(c, dto.AuthTokenResponse{AuthToken: authToken})
}
