package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/MKhiriev/with-auth/internal/adapter"
	"github.com/MKhiriev/with-auth/internal/crypto"
	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/internal/metrics"
	"github.com/MKhiriev/with-auth/models"
)

// oauthService runs the authorization code flow for every registered
// identity provider. The state value is bound to the browser through an
// encrypted cookie; its plaintext never leaves the process otherwise.
type oauthService struct {
	providers map[models.Provider]adapter.IdentityProvider
	cipher    crypto.StateCipher
	accounts  AccountService
	tokens    TokenService

	metrics metrics.Recorder
	logger  *logger.Logger
}

func NewOAuthService(
	providers []adapter.IdentityProvider,
	cipher crypto.StateCipher,
	accounts AccountService,
	tokens TokenService,
	recorder metrics.Recorder,
	logger *logger.Logger,
) OAuthService {
	byName := make(map[models.Provider]adapter.IdentityProvider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}

	return &oauthService{
		providers: byName,
		cipher:    cipher,
		accounts:  accounts,
		tokens:    tokens,
		metrics:   recorder,
		logger:    logger,
	}
}

func (s *oauthService) Supports(provider models.Provider) bool {
	_, ok := s.providers[provider]
	return ok
}

// Initiate starts a login attempt: it draws a fresh state, encrypts it for
// the cookie and builds the provider consent URL carrying the plaintext.
func (s *oauthService) Initiate(ctx context.Context, provider models.Provider) (models.OAuthStart, error) {
	p, ok := s.providers[provider]
	if !ok {
		return models.OAuthStart{}, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}

	state, err := p.NewState()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("provider", provider.String()).Msg("state generation failed")
		return models.OAuthStart{}, fmt.Errorf("state generation failed: %w", err)
	}

	encrypted, err := s.cipher.Encrypt(state)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("provider", provider.String()).Msg("state encryption failed")
		return models.OAuthStart{}, fmt.Errorf("state encryption failed: %w", err)
	}

	return models.OAuthStart{
		AuthorizationURL: p.AuthorizationURL(state),
		EncryptedState:   encrypted,
	}, nil
}

// Callback finishes a login attempt. The checks run in a fixed order and the
// first failing one decides the error code:
//  1. the provider reported an error;
//  2. the state cookie or the state parameter is missing;
//  3. the cookie does not decrypt to the state parameter;
//  4. the code parameter is missing;
//  5. exchange, profile fetch, account resolution or token creation failed.
//
// Details of step 5 failures are logged and never returned.
func (s *oauthService) Callback(ctx context.Context, provider models.Provider, callback models.OAuthCallback) models.OAuthResult {
	result := s.callback(ctx, provider, callback)

	label := string(result.ErrorCode)
	if !result.Failed() {
		label = string(models.OAuthResolved)
	}
	s.metrics.RecordOAuthCallback(provider.String(), label)
	s.metrics.RecordSignin(provider.String(), signinOutcome(result))

	return result
}

func (s *oauthService) callback(ctx context.Context, provider models.Provider, callback models.OAuthCallback) models.OAuthResult {
	log := logger.FromContext(ctx).With().Str("provider", provider.String()).Logger()

	p, ok := s.providers[provider]
	if !ok {
		log.Error().Msg("callback for unregistered provider")
		return failed(models.OAuthErrorInternal)
	}

	if callback.Error != "" {
		log.Info().Str("error", callback.Error).Msg("provider returned an error")
		return failed(providerErrorCode(provider))
	}

	if callback.CookieState == "" || callback.State == "" {
		log.Debug().Bool("cookie", callback.CookieState != "").Bool("param", callback.State != "").Msg("state is unset")
		return failed(models.OAuthErrorStateUnset)
	}

	plain, err := s.cipher.Decrypt(callback.CookieState)
	if err != nil || subtle.ConstantTimeCompare([]byte(plain), []byte(callback.State)) != 1 {
		log.Info().Err(err).Msg("state mismatch")
		return failed(models.OAuthErrorStateMismatch)
	}

	if callback.Code == "" {
		log.Debug().Msg("code is unset")
		return failed(models.OAuthErrorCodeUnset)
	}

	accessToken, err := p.ExchangeCode(ctx, callback.Code)
	if err != nil {
		log.Err(err).Msg("code exchange failed")
		return failed(models.OAuthErrorInternal)
	}

	profile, err := p.FetchProfile(ctx, accessToken)
	if err != nil {
		log.Err(err).Msg("profile fetch failed")
		return failed(models.OAuthErrorInternal)
	}

	user, err := s.accounts.ResolveExternal(ctx, profile)
	if err != nil {
		log.Err(err).Msg("account resolution failed")
		return failed(models.OAuthErrorInternal)
	}

	token, err := s.tokens.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("token creation failed")
		return failed(models.OAuthErrorInternal)
	}

	log.Info().Int64("user_id", user.UserID).Msg("oauth login resolved")
	return models.OAuthResult{
		Status: models.OAuthResolved,
		Token:  token,
		UserID: user.UserID,
	}
}

func failed(code models.OAuthErrorCode) models.OAuthResult {
	return models.OAuthResult{Status: models.OAuthFailed, ErrorCode: code}
}

func providerErrorCode(provider models.Provider) models.OAuthErrorCode {
	if provider == models.ProviderKakao {
		return models.OAuthErrorKakao
	}
	return models.OAuthErrorGoogle
}

func signinOutcome(result models.OAuthResult) string {
	switch {
	case !result.Failed():
		return metrics.OutcomeSuccess
	case result.ErrorCode == models.OAuthErrorInternal:
		return metrics.OutcomeFailure
	default:
		return metrics.OutcomeRejected
	}
}
