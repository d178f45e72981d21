package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ideashare/backend/internal/handler/gen"
	"github.com/ideashare/backend/internal/middleware"
	"github.com/ideashare/backend/spec"
)

// RouterConfig holds everything NewRouter needs.
type RouterConfig struct {
	Ideas        IdeaServicer
	Verifier     middleware.TokenVerifier
	Logger       *slog.Logger
	CORSOrigins  []string
	MaxBodyBytes int64
	// Registry enables request metrics and GET /metrics. Nil disables both.
	Registry *prometheus.Registry
}

// NewRouter builds the full HTTP surface: middleware, the generated API
// routes, the raw OpenAPI document and (optionally) Prometheus metrics.
//
// Middleware order: RequestID → RealIP → Metrics → CORS → Authenticator →
// SlogLogger → Recoverer → MaxBodySize. The authenticator runs before the
// logger so log lines carry the principal ID.
func NewRouter(cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Registry != nil {
		r.Use(middleware.NewMetrics(cfg.Registry).Handler)
	}
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewAuthenticator(cfg.Verifier, log))
	r.Use(middleware.NewSlogLogger(log))
	r.Use(chimiddleware.Recoverer)
	if cfg.MaxBodyBytes > 0 {
		r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	}

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})
	if cfg.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{Registry: cfg.Registry}))
	}

	// gen.NewStrictHandlerWithOptions adapts our StrictServerInterface
	// implementation to the lower-level ServerInterface chi expects, with
	// JSON error bodies instead of the generated plain-text defaults.
	strict := gen.NewStrictHandlerWithOptions(NewServer(cfg.Ideas), nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  RequestErrorHandler,
		ResponseErrorHandlerFunc: NewResponseErrorHandler(log),
	})
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []gen.MiddlewareFunc{RequireBearer},
		ErrorHandlerFunc: RequestErrorHandler,
	})
	return r
}
