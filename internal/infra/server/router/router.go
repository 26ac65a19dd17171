// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/glowup-wallet/backend/internal/integration/entrypoint/controller"
	"github.com/glowup-wallet/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	goalController        *controller.GoalController
	transactionController *controller.TransactionController
	challengeController   *controller.ChallengeController
	dashboardController   *controller.DashboardController
	adviceController      *controller.AdviceController
	adviceRateLimiter     *middleware.RateLimiter // Optional
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	goalController *controller.GoalController,
	transactionController *controller.TransactionController,
	challengeController *controller.ChallengeController,
	dashboardController *controller.DashboardController,
	adviceController *controller.AdviceController,
	adviceRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		goalController:        goalController,
		transactionController: transactionController,
		challengeController:   challengeController,
		dashboardController:   dashboardController,
		adviceController:      adviceController,
		adviceRateLimiter:     adviceRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		goals := v1.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.GET("/:id", r.goalController.Get)
			goals.POST("/:id/funds", r.goalController.AddFunds)
		}

		v1.GET("/transactions", r.transactionController.List)
		v1.GET("/challenges", r.challengeController.List)
		v1.GET("/dashboard", r.dashboardController.Get)
		v1.GET("/themes", r.dashboardController.Themes)

		// Advice routes call the hosted model, so they are rate limited
		advice := v1.Group("/advice")
		if r.adviceRateLimiter != nil {
			advice.Use(r.adviceRateLimiter.Middleware())
		}
		advice.Use(middleware.Session())
		{
			advice.POST("/chat", r.adviceController.Chat)
			advice.GET("/tip", r.adviceController.Tip)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
