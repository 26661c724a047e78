// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"profilesync/internal/delivery/api/middleware"
	"profilesync/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IntegrationHandler *handler.IntegrationHandler
	SyncHandler        *handler.SyncHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	integrationHandler *handler.IntegrationHandler
	syncHandler        *handler.SyncHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		integrationHandler: params.IntegrationHandler,
		syncHandler:        params.SyncHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	integrations := apiV1.Group("/integrations")
	{
		// Synchronization and conflicts; registered before the /:provider routes
		integrations.POST("/sync", r.syncHandler.Synchronize)
		integrations.GET("/snapshot", r.syncHandler.GetSnapshot)
		integrations.GET("/conflicts", r.syncHandler.GetConflicts)
		integrations.POST("/conflicts/:id/resolve", r.syncHandler.ResolveConflict)
		integrations.DELETE("", r.syncHandler.ClearAll)

		// Provider connections
		integrations.GET("/:provider/authorize", r.integrationHandler.Authorize)
		integrations.POST("/:provider/authenticate", r.integrationHandler.Authenticate)
		integrations.GET("/:provider/status", r.integrationHandler.Status)
		integrations.GET("/:provider/data", r.integrationHandler.GetData)
		integrations.DELETE("/:provider", r.integrationHandler.Disconnect)
	}
}
