// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgerline/backend/internal/integration/entrypoint/controller"
	"github.com/ledgerline/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	recurringController   *controller.RecurringController
	transactionController *controller.TransactionController
	vaultController       *controller.VaultController
	dashboardController   *controller.DashboardController
	statementController   *controller.StatementController
	rateLimiter           *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	allowListMiddleware   *middleware.AllowListMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	recurringController *controller.RecurringController,
	transactionController *controller.TransactionController,
	vaultController *controller.VaultController,
	dashboardController *controller.DashboardController,
	statementController *controller.StatementController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowListMiddleware *middleware.AllowListMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		recurringController:   recurringController,
		transactionController: transactionController,
		vaultController:       vaultController,
		dashboardController:   dashboardController,
		statementController:   statementController,
		rateLimiter:           rateLimiter,
		authMiddleware:        authMiddleware,
		allowListMiddleware:   allowListMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every /api/v1 route runs
// behind the rate limiter, token validation, and the email allow-list.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}
	v1.Use(r.authMiddleware.Authenticate())
	v1.Use(r.allowListMiddleware.Authorize())
	{
		if r.recurringController != nil {
			recurring := v1.Group("/recurring")
			{
				recurring.GET("", r.recurringController.List)
				recurring.POST("", r.recurringController.Create)
				recurring.PATCH("/:id", r.recurringController.Update)
				recurring.DELETE("/:id", r.recurringController.Delete)
			}
		}

		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.vaultController != nil {
			vault := v1.Group("/vault")
			{
				vault.GET("/entity", r.vaultController.GetEntity)
				vault.PUT("/entity", r.vaultController.UpsertEntity)

				vault.GET("/domains", r.vaultController.ListDomains)
				vault.POST("/domains", r.vaultController.AddDomain)
				vault.PATCH("/domains/:id", r.vaultController.UpdateDomain)
				vault.DELETE("/domains/:id", r.vaultController.DeleteDomain)

				vault.GET("/events", r.vaultController.ListEvents)
				vault.POST("/events", r.vaultController.CreateEvent)
				vault.PATCH("/events/:id", r.vaultController.UpdateEvent)
				vault.DELETE("/events/:id", r.vaultController.DeleteEvent)
			}
		}

		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/summary", r.dashboardController.GetSummary)
				dashboard.GET("/trends", r.dashboardController.GetTrends)
				dashboard.GET("/categories", r.dashboardController.GetCategoryBreakdown)
				if r.recurringController != nil {
					dashboard.GET("/recurring-totals", r.recurringController.ProjectTotals)
				}
			}
		}

		if r.statementController != nil {
			statements := v1.Group("/statements")
			{
				statements.GET("", r.statementController.Generate)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
