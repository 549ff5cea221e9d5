// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/with-auth/internal/config"
	"github.com/MKhiriev/with-auth/internal/utils"
	"github.com/MKhiriev/with-auth/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

const googleStateLength = 30

type googleProvider struct {
	oauth      *oauth2.Config
	profileURL string
	httpClient *http.Client
}

// NewGoogleProvider returns the Google [IdentityProvider].
//
// Empty endpoint overrides in cfg select Google's production endpoints.
// httpClient is used for the token exchange and the userinfo call; nil
// selects [http.DefaultClient].
func NewGoogleProvider(cfg config.OAuthClient, httpClient *http.Client) IdentityProvider {
	endpoint := google.Endpoint
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &googleProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       strings.Fields(cfg.Scope),
			Endpoint:     endpoint,
		},
		profileURL: cfg.ProfileURL,
		httpClient: httpClient,
	}
}

func (g *googleProvider) Name() models.Provider {
	return models.ProviderGoogle
}

func (g *googleProvider) NewState() (string, error) {
	return utils.RandomAlphanumeric(googleStateLength)
}

func (g *googleProvider) AuthorizationURL(state string) string {
	return g.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
}

func (g *googleProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	token, err := g.oauth.Exchange(g.clientContext(ctx), code)
	if err != nil {
		return "", fmt.Errorf("google code exchange: %w", err)
	}
	if token.AccessToken == "" {
		return "", ErrEmptyAccessToken
	}

	return token.AccessToken, nil
}

func (g *googleProvider) FetchProfile(ctx context.Context, accessToken string) (models.ExternalProfile, error) {
	ctx = g.clientContext(ctx)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))

	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if g.profileURL != "" {
		opts = append(opts, option.WithEndpoint(g.profileURL))
	}

	svc, err := googleoauth2.NewService(ctx, opts...)
	if err != nil {
		return models.ExternalProfile{}, fmt.Errorf("google userinfo client: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return models.ExternalProfile{}, fmt.Errorf("%w: google userinfo: %w", ErrProviderResponse, err)
	}
	if info.Id == "" {
		return models.ExternalProfile{}, fmt.Errorf("%w: google userinfo has no id", ErrInvalidProfile)
	}

	profile := models.ExternalProfile{
		Provider:      models.ProviderGoogle,
		ExternalID:    info.Id,
		Name:          info.Name,
		EmailVerified: info.VerifiedEmail != nil && *info.VerifiedEmail,
		AvatarURL:     info.Picture,
	}
	if info.Email != "" {
		email := info.Email
		profile.Email = &email
	}

	return profile, nil
}

func (g *googleProvider) clientContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, g.httpClient)
}
