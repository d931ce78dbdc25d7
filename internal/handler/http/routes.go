package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	// probes are never cut short by the request timeout
	router.Get("/health", h.health)
	router.Method("GET", "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		// routes without authorization
		r.Post("/login", h.login)
		r.Get("/verify", h.verify)
		r.Get("/version", h.getServerVersion)

		// routes with authorization
		r.With(h.auth).Get("/users", h.listUsers)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
