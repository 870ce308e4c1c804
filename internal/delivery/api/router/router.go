// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"insulink/config"
	"insulink/internal/delivery/api/middleware"
	"insulink/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler    *handler.DeviceHandler
	UploadHandler    *handler.UploadHandler
	DashboardHandler *handler.DashboardHandler
	UserHandler      *handler.UserHandler
	AuthMiddleware   *middleware.AuthMiddleware
	MetricsHandler   http.Handler `name:"metrics"`
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler    *handler.DeviceHandler
	uploadHandler    *handler.UploadHandler
	dashboardHandler *handler.DashboardHandler
	userHandler      *handler.UserHandler
	authMiddleware   *middleware.AuthMiddleware
	metricsHandler   http.Handler
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:    params.DeviceHandler,
		uploadHandler:    params.UploadHandler,
		dashboardHandler: params.DashboardHandler,
		userHandler:      params.UserHandler,
		authMiddleware:   params.AuthMiddleware,
		metricsHandler:   params.MetricsHandler,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if metrics := r.config.Metrics; metrics != nil && metrics.Enabled && r.metricsHandler != nil {
		e.GET(metrics.Path, echo.WrapHandler(r.metricsHandler))
	}

	devicesGroup := e.Group("/devices")
	devicesGroup.Use(r.authMiddleware.Authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.POST("/upload", r.uploadHandler.Upload)
		devicesGroup.GET("/:id", r.deviceHandler.GetDevice)
	}

	dashboardGroup := e.Group("/dashboard")
	dashboardGroup.Use(r.authMiddleware.Authenticate)
	{
		dashboardGroup.GET("/report", r.dashboardHandler.Report)
		dashboardGroup.GET("/monthly/:months", r.dashboardHandler.Monthly)
		dashboardGroup.GET("/today", r.dashboardHandler.Today)
		dashboardGroup.GET("/readings", r.dashboardHandler.Readings)
		dashboardGroup.GET("/device", r.dashboardHandler.Device)
		dashboardGroup.GET("/history", r.dashboardHandler.History)
	}

	usersGroup := e.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	{
		usersGroup.PUT("/me", r.userHandler.SaveProfile)
		usersGroup.GET("/me", r.userHandler.GetProfile)
	}
}
