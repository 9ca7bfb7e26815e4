package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/geoquest/GeoQuest_Go/internal/care"
	"github.com/geoquest/GeoQuest_Go/internal/database"
	"github.com/geoquest/GeoQuest_Go/internal/handler"
	"github.com/geoquest/GeoQuest_Go/internal/metrics"
)

// Options carries the HTTP-facing settings of the server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RateLimitRPS   float64
	RateLimitBurst int
	MaxUploadBytes int64
	Version        string
}

type Server struct {
	httpServer  *http.Server
	dbPool      database.Pool
	careService care.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, careService care.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           newRouter(opts, dbPool, careService),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		dbPool:      dbPool,
		careService: careService,
	}
}

// Handler exposes the routed handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func newRouter(opts Options, dbPool database.Pool, careService care.Service) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	limiter := NewClientRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)
	clientIP := NewClientIPResolver(opts.TrustedProxies)

	r.Use(SecurityHeadersMiddleware())
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, clientIP, detector))
	r.Use(RateLimitMiddleware(clientIP, limiter, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxUploadBytes + requestBodyOverhead))

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(opts.Version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	careHandler := handler.NewCareHandler(careService, opts.MaxUploadBytes)
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/care", func(r chi.Router) {
			r.With(UserIdentityMiddleware).Post("/verify", careHandler.HandleVerifyCare)
		})

		r.Get("/plants/{plantID}/care-logs", careHandler.HandleListCareLogs)
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
