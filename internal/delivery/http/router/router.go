// Package router contains routing setup for the HTTP delivery.
package router

import (
	"roster/internal/delivery/http/middleware"
	"roster/internal/delivery/http/router/handler"
	"roster/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	users := e.Group("/api/users")

	// Public routes
	users.POST("/register", r.userHandler.Register)
	users.POST("/login", r.userHandler.Login)

	// Protected routes: token first, then per-route role gates
	protected := users.Group("")
	protected.Use(r.authMiddleware.Authenticate)
	{
		protected.GET("", r.userHandler.ListUsers, r.authMiddleware.RequireRole(entity.RoleAdmin))
		protected.GET("/:id", r.userHandler.GetUser)
		protected.PUT("/:id", r.userHandler.UpdateUser)
		protected.DELETE("/:id", r.userHandler.DeleteUser, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}
}
