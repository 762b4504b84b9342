// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pad-config/internal/config"
	"github.com/MKhiriev/go-pad-config/internal/logger"
	"github.com/MKhiriev/go-pad-config/models"
)

// maxFeedbackKeyLength caps what a client can push into the log per ping.
const maxFeedbackKeyLength = 128

type configService struct {
	cfg     *config.Config
	version string

	logger *logger.Logger
}

// NewConfigService constructs a [ConfigService] backed by a loaded record.
// version is reported to clients as part of the public configuration.
func NewConfigService(cfg *config.Config, version string, logger *logger.Logger) (ConfigService, error) {
	if cfg == nil {
		return nil, ErrConfigIsNotSpecified
	}

	return &configService{
		cfg:     cfg,
		version: version,
		logger:  logger,
	}, nil
}

func (s *configService) PublicConfig(ctx context.Context) models.PublicConfig {
	return models.PublicConfig{
		HTTPUnsafeOrigin: s.cfg.HTTPUnsafeOrigin(),
		HTTPSafeOrigin:   s.cfg.HTTPSafeOrigin(),
		AdminEmail:       s.cfg.AdminEmail(),
		Version:          s.version,
	}
}

func (s *configService) RecordFeedback(ctx context.Context, key string) bool {
	if !s.cfg.Logging().Feedback {
		return false
	}

	key = strings.TrimSpace(key)
	if key == "" || utf8.RuneCountInString(key) > maxFeedbackKeyLength {
		return false
	}

	logger.FromContext(ctx).Info().
		Str("feedback", key).
		Msg("client feedback")

	return true
}
