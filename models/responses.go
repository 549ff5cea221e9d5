// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON envelope returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	State   string `json:"state"`
	Message string `json:"message"`
}

// TokenResponse is returned by password signin and signup.
type TokenResponse struct {
	Code   int    `json:"code"`
	State  string `json:"state"`
	Result string `json:"result"`
	Token  string `json:"token"`
}

// AuthorizationResponse is returned by the token check endpoint.
type AuthorizationResponse struct {
	Code       int    `json:"code"`
	State      string `json:"state"`
	Authorized bool   `json:"authorized"`
}

// AvailabilityResponse tells whether a local username can still be taken.
type AvailabilityResponse struct {
	Code      int    `json:"code"`
	State     string `json:"state"`
	Available bool   `json:"available"`
}

// UserResponse wraps the authenticated user's public record.
type UserResponse struct {
	Code  int    `json:"code"`
	State string `json:"state"`
	User  User   `json:"user"`
}

// VersionResponse is returned by /api/version/.
type VersionResponse struct {
	Version string `json:"version"`
}
