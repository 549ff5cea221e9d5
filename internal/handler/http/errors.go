// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the bearer authentication middleware. Their messages are
// the response reasons.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("Authorization header is missing")

	// ErrInvalidAuthorizationHeader is returned when the header does not use
	// the Bearer scheme.
	ErrInvalidAuthorizationHeader = errors.New("Authorization must be Bearer token")

	// ErrEmptyToken is returned when the scheme is Bearer but the token part
	// is blank.
	ErrEmptyToken = errors.New("JWT token is missing")

	// ErrUnauthorizedToken is returned when the token fails verification.
	ErrUnauthorizedToken = errors.New("JWT is invalid or unauthorized")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("Invalid JSON was passed")

	// ErrRecaptchaFailed is returned when the bot-detection check rejects the
	// request or cannot be performed.
	ErrRecaptchaFailed = errors.New("Recaptcha verification failed")

	// ErrTooManyRequests is returned by the rate limiter.
	ErrTooManyRequests = errors.New("Too many requests")
)

// Response reasons that do not correspond to a sentinel error.
const (
	msgInvalidCredentials = "invalid credentials"
	msgUserNotFound       = "User not found"
	msgConflict           = "Username or email is already taken"
	msgInternal           = "Server currently unable to handle this request"
)
