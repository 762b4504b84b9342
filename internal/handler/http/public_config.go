package http

import (
	"net/http"

	"github.com/MKhiriev/go-pad-config/internal/logger"
	"github.com/MKhiriev/go-pad-config/internal/utils"
)

// getPublicConfig serves the browser-visible part of the configuration.
func (h *Handler) getPublicConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	publicConfig := h.config.PublicConfig(r.Context())

	w.Header().Set("Cache-Control", "no-cache")
	if _, err := utils.WriteJSON(w, publicConfig, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing public config")
	}
}
