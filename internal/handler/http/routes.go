package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get("/api/config", h.getPublicConfig)
	router.Get("/api/version", h.getServerVersion)
	router.With(withFeedbackRateLimit()).Get("/api/feedback/{key}", h.recordFeedback)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
