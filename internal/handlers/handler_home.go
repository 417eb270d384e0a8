package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Wallet Backend API v1"})
}

// registerHomeRoutes registers the public root route.
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/", getHome)
}
