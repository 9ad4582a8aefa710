package handlers

import (
	"errors"
	"net/http"

	"ai_manager_backend/internal/services"
	"ai_manager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the dashboard service.
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ds services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

// GetDashboard handles GET /api/dashboard.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	snapshot, err := h.dashboardService.Snapshot(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetDashboard: Error from dashboardService.Snapshot")
		respondInternal(c, "Failed to fetch dashboard data")
		return
	}
	utils.RespondWithData(c, http.StatusOK, snapshot)
}

// GetAnalytics handles GET /api/dashboard/analytics.
func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	analytics, err := h.dashboardService.Analytics(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetAnalytics: Error from dashboardService.Analytics")
		respondInternal(c, "Failed to fetch analytics data")
		return
	}
	utils.RespondWithData(c, http.StatusOK, analytics)
}

// GetNotifications handles GET /api/dashboard/notifications.
func (h *DashboardHandler) GetNotifications(c *gin.Context) {
	notifications, unread, err := h.dashboardService.Notifications(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetNotifications: Error from dashboardService.Notifications")
		respondInternal(c, "Failed to fetch notifications")
		return
	}
	utils.RespondWithData(c, http.StatusOK, notifications, gin.H{"unreadCount": unread})
}

// MarkNotificationRead handles PUT /api/dashboard/notifications/:id/read.
func (h *DashboardHandler) MarkNotificationRead(c *gin.Context) {
	id := c.Param("id")
	notification, err := h.dashboardService.MarkNotificationRead(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			respondNotFound(c, "Notification not found", err)
			return
		}
		utils.LogError(err, "MarkNotificationRead: Error from dashboardService.MarkNotificationRead for ID "+id)
		respondInternal(c, "Failed to mark notification as read")
		return
	}
	utils.RespondWithData(c, http.StatusOK, notification, gin.H{"message": "Notification marked as read"})
}
