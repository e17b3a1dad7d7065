package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-booking-payments/internal/config"
	"github.com/MKhiriev/go-booking-payments/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService returns an [AppInfoService] reporting cfg.Version.
// A blank version is rejected with [ErrVersionIsNotSpecified].
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", version).Msg("app info service ready")
	return appInfoService{version: version}, nil
}

func (s appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
