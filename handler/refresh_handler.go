package handler

import (
	"noteful/dto"
	"noteful/middleware"
	"noteful/services"
	"noteful/utils"

	"github.com/gin-gonic/gin"
)

// RefreshTokenHandler re-issues a token with a fresh expiry. The route
// sits behind the auth gate, so only holders of a valid unexpired
// token ever reach it; no re-authentication happens here.
func RefreshTokenHandler(c *gin.Context, tokens *services.TokenService) {
	identity := middleware.IdentityFromContext(c)

	authToken, err := tokens.Refresh(identity)
	if err != nil {
		utils.TrackAuthAttempt("failure", "refresh")
		respondError(c, err)
		return
	}

	utils.TrackAuthAttempt("success", "refresh")
	utils.Success(c, dto.AuthTokenResponse{AuthToken: authToken})
}
