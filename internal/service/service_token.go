package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/with-auth/internal/config"
	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/internal/metrics"
	"github.com/MKhiriev/with-auth/internal/utils"
	"github.com/MKhiriev/with-auth/models"
)

// tokenService issues and verifies session tokens with the configured HMAC
// secret. All state is read-only after construction.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	now     func() time.Time
	metrics metrics.Recorder
	logger  *logger.Logger
}

func NewTokenService(cfg config.App, recorder metrics.Recorder, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey: cfg.TokenSignKey,
		now:          time.Now,
		metrics:      recorder,
		logger:       logger,
	}
}

// CreateToken issues a signed JWT for the given user.
//
// The audience is derived from the user's role; an unknown role fails with
// an error wrapping both ErrTokenCreationFailed and models.ErrUnknownRole.
func (s *tokenService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user.UserID, user.Role, s.now(), s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	s.metrics.RecordTokenIssued()
	return token, nil
}

// ParseToken validates a raw JWT string. Any validation failure (expired,
// wrong issuer, foreign audience, malformed) is normalised to ErrInvalidToken.
func (s *tokenService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}
