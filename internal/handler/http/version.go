package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-pad-config/internal/logger"
)

// getServerVersion answers GET /api/version with the bare release string.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.appInfo.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, version); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing server version")
	}
}
