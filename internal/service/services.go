package service

import (
	"fmt"

	"github.com/MKhiriev/with-auth/internal/adapter"
	"github.com/MKhiriev/with-auth/internal/config"
	"github.com/MKhiriev/with-auth/internal/crypto"
	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/internal/metrics"
	"github.com/MKhiriev/with-auth/internal/store"
	"github.com/MKhiriev/with-auth/internal/validators"
	"github.com/MKhiriev/with-auth/models"
)

type Services struct {
	TokenService   TokenService
	AuthService    AuthService
	AccountService AccountService
	OAuthService   OAuthService
	UserService    UserService
	AppInfoService AppInfoService
}

// Dependencies are the collaborators shared by the services.
type Dependencies struct {
	Storage   store.Storage
	Cipher    crypto.StateCipher
	Providers []adapter.IdentityProvider
	Validator validators.Validator
	Metrics   metrics.Recorder
	Build     models.AppBuildInfo
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	if deps.Metrics == nil {
		deps.Metrics = metrics.Nop()
	}

	appInfoService, err := NewAppInfoService(cfg.App, deps.Build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	tokenService := NewTokenService(cfg.App, deps.Metrics, logger)
	accountService := NewAccountService(deps.Storage, deps.Metrics, logger)

	return &Services{
		TokenService:   tokenService,
		AuthService:    NewAuthService(deps.Storage, deps.Validator, cfg.App, deps.Metrics, logger),
		AccountService: accountService,
		OAuthService:   NewOAuthService(deps.Providers, deps.Cipher, accountService, tokenService, deps.Metrics, logger),
		UserService:    NewUserService(deps.Storage, logger),
		AppInfoService: appInfoService,
	}, nil
}
