package service

import (
	"github.com/MKhiriev/go-pad-config/internal/config"
	"github.com/MKhiriev/go-pad-config/internal/logger"
	"github.com/MKhiriev/go-pad-config/models"
)

type Services struct {
	AppInfoService AppInfoService
	ConfigService  ConfigService
}

func NewServices(cfg *config.Config, info models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, err
	}

	configService, err := NewConfigService(cfg, info.Version(), logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService: appInfoService,
		ConfigService:  configService,
	}, nil
}
