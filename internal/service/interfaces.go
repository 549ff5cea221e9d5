package service

import (
	"context"

	"github.com/MKhiriev/with-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type TokenService interface {
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	SignUp(ctx context.Context, request models.SignUpRequest) (models.User, error)
	UsernameAvailable(ctx context.Context, username string) (bool, error)
}

type AccountService interface {
	ResolveExternal(ctx context.Context, profile models.ExternalProfile) (models.User, error)
}

type OAuthService interface {
	Supports(provider models.Provider) bool
	Initiate(ctx context.Context, provider models.Provider) (models.OAuthStart, error)
	Callback(ctx context.Context, provider models.Provider, callback models.OAuthCallback) models.OAuthResult
}

type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
