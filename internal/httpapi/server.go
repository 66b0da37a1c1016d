package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ruralai/internal/llm"
	"ruralai/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	// Ask loads the model if needed and answers prompt.
	Ask(ctx context.Context, prompt string) llm.Result
	Health() types.HealthResponse
	Status() types.StatusResponse
	Ready() bool
}

// NewMux builds the router with every page and endpoint mounted.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog)
	// Metrics sit outside recoverer so panics are counted as 500s.
	r.Use(MetricsMiddleware)
	r.Use(recoverer)
	r.Use(middleware.GetHead)
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/", handleIndex)
	r.Post("/", handleAskForm(svc))
	r.Get("/about", handleAbout)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Health())
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Status())
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	r.Post("/api/ask", handleAskJSON(svc))

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}
