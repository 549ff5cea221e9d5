package service

import (
	"context"

	"github.com/MKhiriev/with-auth/internal/config"
	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/models"
)

// buildInfoUnset is the placeholder linker-injected fields hold when a binary
// is built without -ldflags.
const buildInfoUnset = "N/A"

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService resolves the version reported by /api/version/.
// The configured version wins; the build version is the fallback. Neither
// being set is an error.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" && build.BuildVersion() != buildInfoUnset {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
