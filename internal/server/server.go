package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/spoonful-labs/recipeshare/internal/api"
	"github.com/spoonful-labs/recipeshare/internal/metrics"
	"github.com/spoonful-labs/recipeshare/internal/middleware"
	"github.com/spoonful-labs/recipeshare/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// NewServer creates a new server instance
func NewServer(db *gorm.DB) *Server {
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Request metrics
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	router.Use(collector.Middleware())
	router.GET("/metrics", metrics.Handler(registry))

	// Register routes
	router.GET("/", api.Welcome)
	recipeHandler := api.NewRecipeHandler(service.NewRecipeService(db))
	recipeHandler.RegisterRoutes(router.Group(""))

	return &Server{router: router}
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the server until it fails or is shut down.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
