package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
