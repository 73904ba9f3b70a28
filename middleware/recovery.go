package middleware

import (
	"net/http"

	"noteful/logger"
	"noteful/utils"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware turns a handler panic into a bare 500. The panic
// value is logged server-side and never reaches the response body.
func RecoveryMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Errorw("panic recovered",
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"panic", err,
				)
				utils.TrackError("panic")
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
