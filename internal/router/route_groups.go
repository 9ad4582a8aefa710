package router

import (
	"ai_manager_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupEmployeeRoutes sets up the employee routes.
func SetupEmployeeRoutes(apiGroup *gin.RouterGroup, employeeHandler *handlers.EmployeeHandler) {
	employeeRoutes := apiGroup.Group("/employees")
	{
		employeeRoutes.GET("", employeeHandler.GetEmployees)
		employeeRoutes.POST("", employeeHandler.CreateEmployee)
		employeeRoutes.GET("/:id", employeeHandler.GetEmployeeByID)
		employeeRoutes.PUT("/:id", employeeHandler.UpdateEmployee)
		employeeRoutes.DELETE("/:id", employeeHandler.DeleteEmployee)
		employeeRoutes.GET("/:id/attendance", employeeHandler.GetAttendance)
	}
}

// SetupInventoryRoutes sets up the inventory routes.
func SetupInventoryRoutes(apiGroup *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	inventoryRoutes := apiGroup.Group("/inventory")
	{
		inventoryRoutes.GET("", inventoryHandler.GetItems)
		inventoryRoutes.POST("", inventoryHandler.CreateItem)
		inventoryRoutes.GET("/alerts/low-stock", inventoryHandler.GetLowStockItems)
		inventoryRoutes.GET("/:id", inventoryHandler.GetItemByID)
		inventoryRoutes.PUT("/:id", inventoryHandler.UpdateItem)
		inventoryRoutes.DELETE("/:id", inventoryHandler.DeleteItem)
	}
}

// SetupProjectRoutes sets up the project routes.
func SetupProjectRoutes(apiGroup *gin.RouterGroup, projectHandler *handlers.ProjectHandler) {
	projectRoutes := apiGroup.Group("/projects")
	{
		projectRoutes.GET("", projectHandler.GetProjects)
		projectRoutes.POST("", projectHandler.CreateProject)
		projectRoutes.GET("/stats/overview", projectHandler.GetProjectStats)
		projectRoutes.GET("/:id", projectHandler.GetProjectByID)
		projectRoutes.PUT("/:id", projectHandler.UpdateProject)
		projectRoutes.DELETE("/:id", projectHandler.DeleteProject)
		projectRoutes.PUT("/:id/status", projectHandler.UpdateProjectStatus)
	}
}

// SetupFinanceRoutes sets up the finance routes.
func SetupFinanceRoutes(apiGroup *gin.RouterGroup, financeHandler *handlers.FinanceHandler) {
	financeRoutes := apiGroup.Group("/finance")
	{
		financeRoutes.GET("", financeHandler.GetRecords)
		financeRoutes.POST("", financeHandler.CreateRecord)
		financeRoutes.GET("/overview", financeHandler.GetOverview)
		financeRoutes.GET("/reports/monthly", financeHandler.GetMonthlyReport)
		financeRoutes.GET("/analytics/trends", financeHandler.GetTrends)
		financeRoutes.GET("/:id", financeHandler.GetRecordByID)
		financeRoutes.PUT("/:id", financeHandler.UpdateRecord)
		financeRoutes.DELETE("/:id", financeHandler.DeleteRecord)
	}
}

// SetupEventRoutes sets up the event routes.
func SetupEventRoutes(apiGroup *gin.RouterGroup, eventHandler *handlers.EventHandler) {
	eventRoutes := apiGroup.Group("/events")
	{
		eventRoutes.GET("", eventHandler.GetEvents)
		eventRoutes.POST("", eventHandler.CreateEvent)
		eventRoutes.GET("/filter/upcoming", eventHandler.GetUpcomingEvents)
		eventRoutes.GET("/category/:category", eventHandler.GetEventsByCategory)
		eventRoutes.GET("/:id", eventHandler.GetEventByID)
		eventRoutes.PUT("/:id", eventHandler.UpdateEvent)
		eventRoutes.DELETE("/:id", eventHandler.DeleteEvent)
		eventRoutes.PUT("/:id/status", eventHandler.UpdateEventStatus)
	}
}

// SetupDashboardRoutes sets up the dashboard routes.
func SetupDashboardRoutes(apiGroup *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboardRoutes := apiGroup.Group("/dashboard")
	{
		dashboardRoutes.GET("", dashboardHandler.GetDashboard)
		dashboardRoutes.GET("/analytics", dashboardHandler.GetAnalytics)
		dashboardRoutes.GET("/notifications", dashboardHandler.GetNotifications)
		dashboardRoutes.PUT("/notifications/:id/read", dashboardHandler.MarkNotificationRead)
	}
}

// SetupAIRoutes sets up the assistant routes. limit guards the routes that
// reach the chat model.
func SetupAIRoutes(apiGroup *gin.RouterGroup, aiHandler *handlers.AIHandler, limit []gin.HandlerFunc) {
	aiRoutes := apiGroup.Group("/ai")
	{
		aiRoutes.POST("/chat", guarded(limit, aiHandler.Chat)...)
		aiRoutes.POST("/suggestions", aiHandler.Suggestions)
		aiRoutes.GET("/prompts/:category", aiHandler.GetPrompts)

		aiRoutes.GET("/sessions/:surface", aiHandler.GetSession)
		aiRoutes.POST("/sessions/:surface/messages", guarded(limit, aiHandler.SendSessionMessage)...)
		aiRoutes.DELETE("/sessions/:surface", aiHandler.ResetSession)
	}
}

func guarded(limit []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	return append(append([]gin.HandlerFunc{}, limit...), h)
}
