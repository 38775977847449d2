// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"atlas/internal/delivery/http/middleware"
	"atlas/internal/delivery/http/router/handler"
	"atlas/internal/domain/entity"
	"atlas/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler      *handler.ProfileHandler
	FollowHandler       *handler.FollowHandler
	NotificationHandler *handler.NotificationHandler
	SocialHandler       *handler.SocialHandler
	CategoryHandler     *handler.CategoryHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler      *handler.ProfileHandler
	followHandler       *handler.FollowHandler
	notificationHandler *handler.NotificationHandler
	socialHandler       *handler.SocialHandler
	categoryHandler     *handler.CategoryHandler
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:      params.ProfileHandler,
		followHandler:       params.FollowHandler,
		notificationHandler: params.NotificationHandler,
		socialHandler:       params.SocialHandler,
		categoryHandler:     params.CategoryHandler,
		authMiddleware:      params.AuthMiddleware,
		metrics:             params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check and metrics endpoints
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	// Public directory routes
	e.GET("/categories", r.categoryHandler.List)
	e.GET("/stats", r.categoryHandler.Stats)
	e.GET("/profiles", r.profileHandler.Search)
	e.GET("/profiles/nearby", r.profileHandler.Nearby)
	e.GET("/profiles/:slug", r.profileHandler.GetBySlug)
	e.GET("/profiles/:slug/qr", r.profileHandler.GetQRCode)

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		userGroup.POST("/follows/:profileID", r.followHandler.Follow)
		userGroup.DELETE("/follows/:profileID", r.followHandler.Unfollow)
		userGroup.GET("/follows", r.followHandler.ListFollowed)
		userGroup.GET("/follows/:profileID", r.followHandler.GetFollow)
		userGroup.PUT("/follows/:profileID/preferences", r.followHandler.UpdatePreferences)
		userGroup.PUT("/preferences", r.followHandler.UpdateAllPreferences)
		userGroup.GET("/notifications", r.notificationHandler.GetHistory)
	}

	// Business routes that require authentication and the "business" role
	businessGroup := e.Group("/business")
	businessGroup.Use(r.authMiddleware.Authenticate)                              // First, check if logged in
	businessGroup.Use(r.authMiddleware.RequireRole(entity.RoleBusiness.String())) // Then, check for the role
	{
		businessGroup.POST("/profiles", r.profileHandler.Create)
		businessGroup.PUT("/profiles/:id", r.profileHandler.Update)
		businessGroup.DELETE("/profiles/:id", r.profileHandler.Delete)
		businessGroup.GET("/profiles/:id/followers", r.followHandler.ListFollowers)
		businessGroup.PUT("/profiles/:id/social/:platform", r.socialHandler.AttachLink)
		businessGroup.DELETE("/profiles/:id/social/:platform", r.socialHandler.RemoveLink)
		businessGroup.GET("/profiles/:id/social", r.socialHandler.ListLinks)
	}
}
