// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"macts/config"
	"macts/internal/delivery/http/middleware"
	"macts/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config           *config.Config
	DashboardHandler *handler.DashboardHandler
	ReportHandler    *handler.ReportHandler
	RegistryHandler  *handler.RegistryHandler
	TestHandler      *handler.TestHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg              *config.Config
	dashboardHandler *handler.DashboardHandler
	reportHandler    *handler.ReportHandler
	registryHandler  *handler.RegistryHandler
	testHandler      *handler.TestHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:              params.Config,
		dashboardHandler: params.DashboardHandler,
		reportHandler:    params.ReportHandler,
		registryHandler:  params.RegistryHandler,
		testHandler:      params.TestHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Live venue dashboard sessions
	dashboardGroup := e.Group("/dashboard")
	dashboardGroup.Use(r.authMiddleware.Authenticate)
	{
		dashboardGroup.POST("/:venue", r.dashboardHandler.StartSession)
		dashboardGroup.DELETE("/:venue", r.dashboardHandler.StopSession)
		dashboardGroup.GET("/:venue", r.dashboardHandler.GetState)
	}

	// Tap history reports
	reportGroup := e.Group("/report")
	reportGroup.Use(r.authMiddleware.Authenticate)
	{
		reportGroup.GET("/:venue", r.reportHandler.VenueHistory)
	}

	// Student info and device registration
	registryGroup := e.Group("/registry")
	registryGroup.Use(r.authMiddleware.Authenticate)
	{
		registryGroup.GET("/student", r.registryHandler.GetStudent)
		registryGroup.POST("/student", r.registryHandler.RegisterStudent)
		registryGroup.PUT("/student", r.registryHandler.UpdateStudent)
		registryGroup.GET("/device", r.registryHandler.GetDevice)
		registryGroup.POST("/device", r.registryHandler.RegisterDevice)
		registryGroup.PUT("/device", r.registryHandler.UpdateDevice)
		registryGroup.GET("/device/qr", r.registryHandler.RegistrationQR)
	}

	// Middleware validation endpoints, disabled outside development
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}
