package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/with-auth/internal/adapter"
	"github.com/MKhiriev/with-auth/internal/config"
	"github.com/MKhiriev/with-auth/internal/crypto"
	"github.com/MKhiriev/with-auth/internal/handler"
	myHTTP "github.com/MKhiriev/with-auth/internal/handler/http"
	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/internal/metrics"
	"github.com/MKhiriev/with-auth/internal/server"
	"github.com/MKhiriev/with-auth/internal/service"
	"github.com/MKhiriev/with-auth/internal/store"
	"github.com/MKhiriev/with-auth/internal/utils"
	"github.com/MKhiriev/with-auth/internal/validators"
	"github.com/MKhiriev/with-auth/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	startupTimeout        = 10 * time.Second
	providerClientTimeout = 10 * time.Second
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("with-auth", false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("with-auth", cfg.App.IsProduction())

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	cipher, err := crypto.NewStateCipher()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating state cipher")
	}

	requestValidator, err := validators.NewRequestValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating request validator")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	services, err := service.NewServices(service.Dependencies{
		Storage:   store.NewStorage(db, log),
		Cipher:    cipher,
		Providers: identityProviders(cfg.OAuth, log),
		Validator: requestValidator,
		Metrics:   collector,
		Build:     models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, myHTTP.Dependencies{
		Scorer:    abuseScorer(context.Background(), cfg.Recaptcha, log),
		Validator: requestValidator,
		Metrics:   collector,
		Gatherer:  registry,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// identityProviders returns the providers with a client registration.
func identityProviders(cfg config.OAuth, log *logger.Logger) []adapter.IdentityProvider {
	var providers []adapter.IdentityProvider

	if cfg.Google.Enabled() {
		providers = append(providers, adapter.NewGoogleProvider(cfg.Google, &http.Client{Timeout: providerClientTimeout}))
	} else {
		log.Warn().Msg("google sign-in is disabled: no client id configured")
	}

	if cfg.Kakao.Enabled() {
		providers = append(providers, adapter.NewKakaoProvider(cfg.Kakao, utils.NewHTTPClient(providerClientTimeout)))
	} else {
		log.Warn().Msg("kakao sign-in is disabled: no client id configured")
	}

	return providers
}

func abuseScorer(ctx context.Context, cfg config.Recaptcha, log *logger.Logger) adapter.AbuseScorer {
	if !cfg.Enabled() {
		log.Warn().Msg("recaptcha is not configured, every request is treated as human")
		return adapter.NewPermissiveScorer()
	}

	scorer, err := adapter.NewRecaptchaScorer(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating recaptcha scorer")
	}

	return scorer
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
