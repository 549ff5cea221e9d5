// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PasswordSignInRequest is the body of POST /api/auth/signin/password.
type PasswordSignInRequest struct {
	// ID is the local username chosen at signup.
	ID string `json:"id" validate:"min=1,max=255"`

	// Password is the plain-text password. It is never logged.
	Password string `json:"password" validate:"min=6"`

	// Recaptcha is the bot-detection token issued to the frontend.
	Recaptcha string `json:"recaptcha" validate:"required"`
}

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Name      string `json:"name" validate:"min=1,max=100"`
	Email     string `json:"email" validate:"min=5,max=255,email_format"`
	Sex       string `json:"sex" validate:"oneof=M F N"`
	ID        string `json:"id" validate:"min=1,max=255"`
	Password  string `json:"password" validate:"min=6,max_bytes=72"`
	Recaptcha string `json:"recaptcha" validate:"required"`
}

// WithDefaults fills optional fields with their default values.
func (r SignUpRequest) WithDefaults() SignUpRequest {
	if r.Sex == "" {
		r.Sex = SexNeutral
	}
	return r
}

// UsernameAvailabilityRequest is the query of GET /api/auth/signup/available.
type UsernameAvailabilityRequest struct {
	ID string `json:"id" validate:"min=1,max=255"`
}
