package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newServer wires middleware and routes around cache.
func newServer(cache *ResponderCache) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	h := &Handlers{cache: cache}

	// Routes
	e.POST("/respond", h.handleRespond)
	e.GET("/respond", h.handleRespond)
	e.GET("/health", h.handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Admin endpoints for manual reload
	e.POST("/admin/reload", h.handleReload)
	e.GET("/admin/info", h.handleInfo)

	return e
}
