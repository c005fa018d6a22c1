package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// requestTimeout bounds a single request, including PDF rendering
const requestTimeout = 60 * time.Second

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger) // Custom conditional HTTP logger
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(requestTimeout))

	// Static files (served from embedded filesystem)
	r.Handle("/static/*", http.StripPrefix("/static/", h.staticServer))

	// Form
	r.Get("/", h.handleIndex)
	r.Post("/generate", h.handleGenerate)

	r.Get("/healthz", h.handleHealth)

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Get("/events", h.handleGetEvents)
		r.Post("/scorecards", h.handleCreateScorecards)
		r.Post("/layout", h.handlePreviewLayout)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, ErrNotFound)
	})

	return r
}
