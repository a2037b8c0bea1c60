package router

import (
	"context"
	"encoding/json"
	"net/http"

	"alloy-catalog/internal/handler"
	"alloy-catalog/internal/metrics"
	"alloy-catalog/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// Handlers groups the API handlers mounted by the router.
type Handlers struct {
	Products *handler.ProductHandler
	Orders   *handler.OrderHandler
	Info     *handler.InfoHandler

	// Inquiries is mounted only together with a non-empty API key.
	Inquiries *handler.InquiryHandler
}

// Options configures the optional parts of the router.
type Options struct {
	APIKey   string
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Health   HealthCheck
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, opts Options, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Recovery -> RequestID -> Logging -> Metrics -> CORS
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	r.Use(middleware.CORS)

	r.NotFound(handler.NotFound(logger))
	r.MethodNotAllowed(handler.MethodNotAllowed(logger))

	r.Get("/health", healthHandler(opts.Health, logger))

	if opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(opts.Gatherer))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(opts.APIKey, logger))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Products.GetAll)
			r.Get("/search", h.Products.Search)
			r.Get("/category/{category}", h.Products.ByCategory)
			r.Get("/{id}", h.Products.GetByID)
		})

		r.Post("/orders", h.Orders.Create)
		r.Get("/contacts", h.Info.Contacts)
		r.Get("/home", h.Info.Home)

		if h.Inquiries != nil && opts.APIKey != "" {
			r.Get("/inquiries", h.Inquiries.List)
			r.Get("/inquiries/{id}", h.Inquiries.Get)
		}
	})

	return r
}

func healthHandler(check HealthCheck, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, body := http.StatusOK, map[string]string{"status": "healthy"}

		if check != nil {
			if err := check(r.Context()); err != nil {
				logger.Warn().Err(err).Msg("health check failed")
				status, body = http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"}
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}
