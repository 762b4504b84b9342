package service

import (
	"context"

	"github.com/MKhiriev/go-pad-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ConfigService serves the loaded configuration to the transport layer.
type ConfigService interface {
	// PublicConfig returns the browser-visible subset of the configuration.
	PublicConfig(ctx context.Context) models.PublicConfig

	// RecordFeedback logs a client feedback key when feedback logging is
	// enabled. It reports whether the key was recorded.
	RecordFeedback(ctx context.Context, key string) bool
}
