package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-pad-config/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access log entry per request. Matched requests are
// logged by route pattern, so path parameters such as feedback keys only
// reach the log through the feedback setting.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", routeOf(r)).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

func routeOf(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
