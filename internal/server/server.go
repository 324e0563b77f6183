package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/BabyBank_Go/internal/auth"
	"github.com/osse101/BabyBank_Go/internal/handler"
	"github.com/osse101/BabyBank_Go/internal/listing"
	"github.com/osse101/BabyBank_Go/internal/metrics"
	"github.com/osse101/BabyBank_Go/internal/search"
)

// Options carries everything the HTTP layer needs
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	BackendMode    string

	Listings listing.Service
	Search   search.Service
	Auth     auth.Service

	// ReadinessChecks are probed by /readyz, keyed by dependency name
	ReadinessChecks map[string]handler.HealthChecker
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts),
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// NewRouter builds the chi router with the full middleware stack
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	// outermost first
	monitor := NewClientMonitor()

	r.Use(SecurityHeadersMiddleware)
	r.Use(loggingMiddleware)
	r.Use(recoverMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, monitor))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, monitor))
	r.Use(RequestSizeLimitMiddleware(DefaultMaxBodyBytes, UploadMaxBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.ReadinessChecks))
	r.Get("/version", handler.HandleVersion(opts.BackendMode))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", handler.HandleGetCatalog(opts.Listings.Catalog()))

		r.Route("/drafts", handler.NewDraftHandler(opts.Listings).Routes)
		r.Route("/search", handler.NewSearchHandler(opts.Search).Routes)
		r.Route("/auth", handler.NewAuthHandler(opts.Auth).Routes)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/metrics", handler.NewAdminMetricsHandler(nil).HandleGetMetrics)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Start blocks serving HTTP until Stop is called
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests until ctx expires
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
