package middleware

import (
	"strings"

	"noteful/services"
	"noteful/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextFullname = "fullname"
)

// AuthMiddleware gates every protected route. It extracts the bearer
// token, verifies it, and attaches the identity to the request context.
// No handler runs for a request that fails here.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.TrackAuthAttempt("failure", "missing_token")
			utils.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			// Expired and invalid both collapse to the same generic
			// response; the distinction stays server-side.
			utils.TrackAuthAttempt("failure", "invalid_token")
			utils.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(ContextUserID, identity.ID)
		c.Set(ContextUsername, identity.Username)
		c.Set(ContextFullname, identity.Fullname)

		c.Next()
	}
}

// IdentityFromContext rebuilds the verified identity placed there by
// AuthMiddleware.
func IdentityFromContext(c *gin.Context) services.Identity {
	return services.Identity{
		ID:       c.GetString(ContextUserID),
		Username: c.GetString(ContextUsername),
		Fullname: c.GetString(ContextFullname),
	}
}
