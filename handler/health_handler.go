package handler

import (
	"noteful/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports process uptime and host resource usage.
func HealthHandler(c *gin.Context) {
	utils.Success(c, gin.H{
		"status": "ok",
		"system": utils.CollectSystemStats(),
	})
}
