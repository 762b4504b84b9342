package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// recordFeedback accepts a feedback ping from a client. The response is the
// same whether or not the key was recorded.
func (h *Handler) recordFeedback(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	h.config.RecordFeedback(r.Context(), key)

	w.WriteHeader(http.StatusOK)
}
