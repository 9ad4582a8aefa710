package router

import (
	"ai_manager_backend/internal/assistant"
	"ai_manager_backend/internal/handlers"
	"ai_manager_backend/internal/metrics"
	"ai_manager_backend/internal/middleware"
	"ai_manager_backend/internal/repositories"
	"ai_manager_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Options carries the optional collaborators of the router. Zero values are
// valid: no metrics endpoint, no chat rate limit.
type Options struct {
	Assistant   *assistant.Assistant
	Metrics     *metrics.Metrics
	ChatLimiter middleware.Limiter
}

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, repos *repositories.Repositories, opts Options) {
	if opts.Assistant == nil {
		opts.Assistant = assistant.New(nil)
	}

	// Initialize Services
	employeeService := services.NewEmployeeService(repos.Employees)
	inventoryService := services.NewInventoryService(repos.Inventory)
	projectService := services.NewProjectService(repos.Projects)
	financeService := services.NewFinanceService(repos.Finance)
	eventService := services.NewEventService(repos.Events)
	dashboardService := services.NewDashboardService(repos, financeService)

	// Initialize Handlers
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	projectHandler := handlers.NewProjectHandler(projectService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	eventHandler := handlers.NewEventHandler(eventService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	aiHandler := handlers.NewAIHandler(opts.Assistant, assistant.NewSessionStore(opts.Assistant), opts.Metrics)

	engine.GET("/", handlers.Welcome)
	if opts.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	api := engine.Group("/api")
	{
		api.GET("/health", handlers.Health)

		SetupEmployeeRoutes(api, employeeHandler)
		SetupInventoryRoutes(api, inventoryHandler)
		SetupProjectRoutes(api, projectHandler)
		SetupFinanceRoutes(api, financeHandler)
		SetupEventRoutes(api, eventHandler)
		SetupDashboardRoutes(api, dashboardHandler)
		SetupAIRoutes(api, aiHandler, chatLimit(opts))
	}

	engine.NoRoute(handlers.RouteNotFound)
}

// chatLimit returns the middleware guarding model calls, if any.
func chatLimit(opts Options) []gin.HandlerFunc {
	if opts.ChatLimiter == nil {
		return nil
	}
	return []gin.HandlerFunc{middleware.RateLimit(opts.ChatLimiter, opts.Metrics)}
}
