// Package router contains routing setup for the HTTP delivery.
package router

import (
	"ozicme/config"
	"ozicme/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StoreHandler *handler.StoreHandler
	Config       *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	storeHandler *handler.StoreHandler
	config       *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		storeHandler: params.StoreHandler,
		config:       params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Store directory routes
	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/stores", r.storeHandler.SearchStores)
		apiGroup.GET("/stores/:id", r.storeHandler.GetStore)
	}

	// Serve the bundled client when a static directory is configured.
	if r.config.Dataset.StaticDir != "" {
		e.Static("/", r.config.Dataset.StaticDir)
	}
}
