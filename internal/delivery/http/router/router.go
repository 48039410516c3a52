// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"courier/internal/delivery/http/middleware"
	"courier/internal/delivery/http/router/handler"
	"courier/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ShipmentHandler *handler.ShipmentHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	shipmentHandler *handler.ShipmentHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		shipmentHandler: params.ShipmentHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
	}

	// Public tracking routes; recipients follow these without an account.
	trackGroup := e.Group("/track")
	{
		trackGroup.GET("/:trackingNumber", r.shipmentHandler.Track)
		trackGroup.GET("/:trackingNumber/qrcode", r.shipmentHandler.TrackQR)
	}

	// Shipment routes. The quote calculator is public; everything else
	// requires authentication.
	shipmentGroup := e.Group("/shipments")
	{
		shipmentGroup.GET("/quote", r.shipmentHandler.Quote)
		shipmentGroup.POST("", r.shipmentHandler.Create, r.authMiddleware.Authenticate)
		shipmentGroup.GET("/user/:userID", r.shipmentHandler.ListByUser, r.authMiddleware.Authenticate)
	}

	// Admin routes require authentication and the "admin" role.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/shipments", r.shipmentHandler.AdminListAll)
		adminGroup.PATCH("/shipments/:id/status", r.shipmentHandler.AdminUpdateStatus)
	}
}
