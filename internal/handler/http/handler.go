package http

import (
	"github.com/MKhiriev/go-pad-config/internal/logger"
	"github.com/MKhiriev/go-pad-config/internal/service"
)

// Handler serves the public API of the document server. Everything it
// answers comes from the service layer; the raw configuration never
// reaches this package.
type Handler struct {
	appInfo service.AppInfoService
	config  service.ConfigService

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("http handler created")
	return &Handler{
		appInfo: services.AppInfoService,
		config:  services.ConfigService,
		logger:  logger,
	}
}
