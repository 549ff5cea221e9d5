package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/with-auth/internal/config"
	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/internal/metrics"
	"github.com/MKhiriev/with-auth/internal/utils"
	"github.com/MKhiriev/with-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

func newTestTokenService(signKey string, now time.Time) *tokenService {
	svc := NewTokenService(config.App{TokenSignKey: signKey}, metrics.Nop(), logger.Nop()).(*tokenService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestTokenService_CreateAndParse(t *testing.T) {
	svc := newTestTokenService("sign-key", testNow)

	for _, role := range []models.Role{models.RoleUser, models.RoleAdmin} {
		token, err := svc.CreateToken(context.Background(), models.User{UserID: 77, Role: role})
		require.NoError(t, err)
		assert.NotEmpty(t, token.SignedString)

		parsed, err := svc.ParseToken(context.Background(), token.SignedString)
		require.NoError(t, err)
		assert.Equal(t, int64(77), parsed.UserID)
	}
}

func TestTokenService_CreateToken_UnknownRole(t *testing.T) {
	svc := newTestTokenService("sign-key", testNow)

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1, Role: "GUEST"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
	assert.ErrorIs(t, err, models.ErrUnknownRole)
}

func TestTokenService_ParseToken_Expired(t *testing.T) {
	issuer := newTestTokenService("sign-key", testNow)
	token, err := issuer.CreateToken(context.Background(), models.User{UserID: 3, Role: models.RoleUser})
	require.NoError(t, err)

	stillValid := newTestTokenService("sign-key", testNow.Add(utils.TokenLifetime-time.Second))
	_, err = stillValid.ParseToken(context.Background(), token.SignedString)
	assert.NoError(t, err)

	expired := newTestTokenService("sign-key", testNow.Add(utils.TokenLifetime))
	_, err = expired.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ParseToken_CollapsesErrors(t *testing.T) {
	issuer := newTestTokenService("sign-key", testNow)
	token, err := issuer.CreateToken(context.Background(), models.User{UserID: 3, Role: models.RoleUser})
	require.NoError(t, err)

	other := newTestTokenService("another-key", testNow)
	for _, input := range []string{token.SignedString, "", "not-a-jwt", token.SignedString + "x"} {
		_, err := other.ParseToken(context.Background(), input)
		assert.Equal(t, ErrInvalidToken, err)
	}
}
