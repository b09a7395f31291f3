// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/forkful/v2/internal/infrastructure/config"
	"github.com/forkful/v2/internal/infrastructure/http/handlers"
	"github.com/forkful/v2/internal/infrastructure/http/middleware"
	"github.com/forkful/v2/internal/infrastructure/monitoring"
	"github.com/forkful/v2/internal/ports/inbound"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// APIServer represents the JSON API HTTP server
type APIServer struct {
	config             *config.Config
	logger             *zap.Logger
	server             *http.Server
	router             *chi.Mux
	shoppingService    inbound.ShoppingService
	fulfillmentService inbound.FulfillmentService
	metrics            *monitoring.MetricsCollector
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	shoppingService inbound.ShoppingService,
	fulfillmentService inbound.FulfillmentService,
	metrics *monitoring.MetricsCollector,
) *APIServer {
	server := &APIServer{
		config:             cfg,
		logger:             log,
		shoppingService:    shoppingService,
		fulfillmentService: fulfillmentService,
		metrics:            metrics,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        server.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	if s.config.RateLimit.Enable {
		limiter := middleware.NewRateLimiter(
			s.config.RateLimit.RequestsPerMin,
			s.config.RateLimit.BurstSize,
		)
		r.Use(limiter.Handler())
	}
	r.Use(s.metrics.HTTPMiddleware())

	// API-specific middleware
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONOnly())

	// Operational endpoints
	r.Get("/health", s.handleHealthCheck)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *APIServer) setupAPIV1Routes(r chi.Router) {
	shoppingH := handlers.NewShoppingHandlers(s.shoppingService, s.fulfillmentService, s.metrics, s.logger)
	vendorH := handlers.NewVendorHandlers(s.fulfillmentService, s.logger)
	listH := handlers.NewListHandlers(s.shoppingService, s.logger)

	r.Route("/shopping", func(r chi.Router) {
		r.Post("/generate", shoppingH.Generate)
		r.Post("/match", shoppingH.Match)
		r.Post("/checkout", shoppingH.Checkout)
	})

	r.Get("/vendors", vendorH.List)

	r.Route("/lists", func(r chi.Router) {
		r.Post("/", listH.Create)
		r.Get("/{id}", listH.Get)
	})
}

// Start starts the API HTTP server
func (s *APIServer) Start() error {
	s.logger.Info("Starting JSON API server",
		zap.String("address", s.server.Addr),
	)

	return s.server.ListenAndServe()
}

// Server returns the underlying HTTP server instance
func (s *APIServer) Server() *http.Server {
	return s.server
}

// Shutdown gracefully shuts down the API server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}

// handleHealthCheck provides the health check endpoint
func (s *APIServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, `{"status":"healthy","service":"forkful-api","version":"%s","timestamp":%d}`,
		s.config.App.Version, time.Now().Unix())
}
