package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/models"
)

func TestAppInfoService_GetAppVersion(t *testing.T) {
	svc := service.NewAppInfoService(models.NewAppBuildInfo("v1.2.3", "2026-01-02", "abc123"), logger.Nop())

	assert.Equal(t, "v1.2.3", svc.GetAppVersion(context.Background()))
	assert.Equal(t, "abc123", svc.BuildInfo().BuildCommit())
}

func TestAppInfoService_EmptyVersion(t *testing.T) {
	svc := service.NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}

func TestAppInfoService_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc := service.NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
