package handlers

import (
	"net/http"
	"time"

	"ai_manager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

var apiEndpoints = []string{
	"/api/employees",
	"/api/inventory",
	"/api/projects",
	"/api/finance",
	"/api/dashboard",
	"/api/events",
	"/api/ai",
	"/api/health",
}

// Health handles GET /api/health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "AI Manager Backend",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Welcome handles GET /.
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Welcome to AI Manager Backend API",
		"endpoints": apiEndpoints,
	})
}

// RouteNotFound answers unmatched routes.
func RouteNotFound(c *gin.Context) {
	utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Route not found", c.Request.URL.Path))
}
