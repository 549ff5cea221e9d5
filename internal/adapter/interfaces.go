// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services the with-auth
// server depends on: OAuth identity providers and the bot-detection API.
//
// The primary abstraction is [IdentityProvider]. The OAuth flow in the
// service layer is written once against it, and each provider (Google,
// Kakao) is one implementation. [AbuseScorer] decouples the HTTP layer from
// reCAPTCHA Enterprise.
//
// Error values defined in errors.go are mapped from provider HTTP answers by
// mapHTTPError so callers can use [errors.Is] regardless of the provider.
package adapter

import (
	"context"

	"github.com/MKhiriev/with-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// IdentityProvider is the capability set of an OAuth 2.0 identity provider.
type IdentityProvider interface {
	// Name returns the provider identifier stored on provider links.
	Name() models.Provider

	// NewState returns a fresh random state value bound to one login attempt.
	NewState() (string, error)

	// AuthorizationURL returns the consent page URL the browser is redirected
	// to. The state is round-tripped by the provider unchanged.
	AuthorizationURL(state string) string

	// ExchangeCode trades an authorization code for an access token.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// FetchProfile reads the identity of the access token owner.
	FetchProfile(ctx context.Context, accessToken string) (models.ExternalProfile, error)
}

// AbuseScorer decides whether a client token proves a human sender.
type AbuseScorer interface {
	// Score reports whether token passes verification for the given action.
	// A non-nil error means the verdict could not be obtained.
	Score(ctx context.Context, token, clientIP, action string) (bool, error)
}
