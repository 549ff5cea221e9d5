// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/with-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenIssuer is the fixed "iss" claim of every session token.
	TokenIssuer = "with"

	// TokenLifetime is the validity window of a session token.
	TokenLifetime = 5 * 7 * 24 * time.Hour
)

var (
	ErrEmptySignKey       = errors.New("empty JWT sign key")
	ErrMissingIssuedAt    = errors.New("token has no iat claim")
	ErrInvalidAudience    = errors.New("token audience is not accepted")
	ErrInvalidSubject     = errors.New("token subject is not a positive user id")
	ErrInvalidBearerToken = errors.New("invalid authorization header")
)

// GenerateJWTToken creates a signed HS256 session token for the user.
//
// The token carries exactly the registered claims
// {sub, aud, iat, exp, iss}: sub is the decimal user id, aud is derived from
// the role, iat is now and exp is now plus [TokenLifetime].
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(42, models.RoleUser, time.Now(), "secret")
func GenerateJWTToken(userID int64, role models.Role, now time.Time, signKey string) (models.Token, error) {
	if signKey == "" {
		return models.Token{}, ErrEmptySignKey
	}

	audience, err := role.Audience()
	if err != nil {
		return models.Token{}, fmt.Errorf("error resolving token audience: %w", err)
	}

	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   strconv.FormatInt(userID, 10),
			Audience:  audience,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies a session token and extracts its claims.
//
// Validation includes:
//   - HS256 signature verification; any other algorithm (including "none") is rejected
//   - iss equal to [TokenIssuer]
//   - exp present and after now
//   - iat present
//   - aud containing at least one of the accepted audiences
//   - sub parsing as a positive int64
func ValidateAndParseJWTToken(tokenString, signKey string, now time.Time) (models.Token, error) {
	if signKey == "" {
		return models.Token{}, ErrEmptySignKey
	}

	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.IssuedAt == nil {
		return models.Token{}, ErrMissingIssuedAt
	}

	if !slices.ContainsFunc(claims.Audience, acceptedAudience) {
		return models.Token{}, ErrInvalidAudience
	}

	userID, err := claims.GetUserID()
	if err != nil || userID <= 0 {
		return models.Token{}, ErrInvalidSubject
	}

	return models.Token{Claims: claims, SignedString: tokenString, UserID: userID}, nil
}

func acceptedAudience(aud string) bool {
	return aud == models.AudienceUser || aud == models.AudienceAdmin
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. It returns an empty token when the scheme is right but the
// token part is blank.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found && scheme == "Bearer" {
		return "", nil
	}
	if !found || scheme != "Bearer" {
		return "", ErrInvalidBearerToken
	}
	return strings.TrimSpace(token), nil
}
