package http

import (
	"github.com/MKhiriev/with-auth/internal/adapter"
	"github.com/MKhiriev/with-auth/internal/config"
	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/internal/metrics"
	"github.com/MKhiriev/with-auth/internal/service"
	"github.com/MKhiriev/with-auth/internal/utils"
	"github.com/MKhiriev/with-auth/internal/validators"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services  *service.Services
	scorer    adapter.AbuseScorer
	validator validators.Validator

	metrics  metrics.Recorder
	gatherer prometheus.Gatherer
	limiter  *ipRateLimiter

	clientIPs *utils.ClientIPResolver

	app    config.App
	server config.Server

	logger *logger.Logger
}

// Dependencies are the non-service collaborators of the HTTP layer.
// A nil Gatherer leaves /metrics unregistered.
type Dependencies struct {
	Scorer    adapter.AbuseScorer
	Validator validators.Validator
	Metrics   metrics.Recorder
	Gatherer  prometheus.Gatherer
}

func NewHandler(services *service.Services, deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	if deps.Scorer == nil {
		deps.Scorer = adapter.NewPermissiveScorer()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.Nop()
	}

	clientIPs, err := utils.NewClientIPResolver(cfg.Server.TrustedProxies)
	if err != nil {
		logger.Err(err).Msg("ignoring trusted proxies, forwarding headers will not be read")
		clientIPs = nil
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		scorer:    deps.Scorer,
		validator: deps.Validator,
		metrics:   deps.Metrics,
		gatherer:  deps.Gatherer,
		limiter:   newIPRateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst),
		clientIPs: clientIPs,
		app:       cfg.App,
		server:    cfg.Server,
		logger:    logger,
	}
}
