package handler

import (
	"github.com/MKhiriev/with-auth/internal/config"
	"github.com/MKhiriev/with-auth/internal/handler/http"
	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, deps http.Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, deps, cfg, logger),
	}, nil
}
