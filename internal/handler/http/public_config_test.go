package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-pad-config/internal/logger"
	"github.com/MKhiriev/go-pad-config/internal/mock"
	"github.com/MKhiriev/go-pad-config/internal/service"
	"github.com/MKhiriev/go-pad-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ctxKey struct{}

func TestGetPublicConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	configSvc := mock.NewMockConfigService(ctrl)

	h := NewHandler(&service.Services{ConfigService: configSvc}, logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "request"))

	configSvc.EXPECT().PublicConfig(gomock.Any()).DoAndReturn(func(ctx context.Context) models.PublicConfig {
		assert.Equal(t, "request", ctx.Value(ctxKey{}), "request context must reach the service")
		return testPublicConfig
	})

	rr := httptest.NewRecorder()
	h.getPublicConfig(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "no-cache", rr.Header().Get("Cache-Control"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{
		"httpUnsafeOrigin": "http://localhost:3000",
		"httpSafeOrigin":   "https://sandbox.example.com",
		"adminEmail":       "admin@example.com",
		"version":          "5.7.0",
	}, body)
}
