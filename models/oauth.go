// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ExternalProfile is the identity returned by an OAuth provider after a
// successful code exchange.
type ExternalProfile struct {
	Provider   Provider
	ExternalID string

	Name          string
	Email         *string
	EmailVerified bool
	AvatarURL     string
}

// OAuthStart is the outcome of initiating a federated login.
type OAuthStart struct {
	// AuthorizationURL is where the browser is redirected.
	AuthorizationURL string

	// EncryptedState is the cookie value binding this attempt to its callback.
	EncryptedState string
}

// OAuthCallback holds the values received on the provider redirect.
// An empty string means the parameter (or cookie) was absent.
type OAuthCallback struct {
	Error       string
	State       string
	Code        string
	CookieState string
}

// OAuthStatus is the terminal state of a callback.
type OAuthStatus string

const (
	OAuthResolved OAuthStatus = "RESOLVED"
	OAuthFailed   OAuthStatus = "FAILED"
)

// OAuthErrorCode is the machine-readable failure code appended to the
// frontend redirect.
type OAuthErrorCode string

const (
	OAuthErrorGoogle        OAuthErrorCode = "google_error"
	OAuthErrorKakao         OAuthErrorCode = "kakao_error"
	OAuthErrorStateUnset    OAuthErrorCode = "state_unset"
	OAuthErrorStateMismatch OAuthErrorCode = "state_mismatch"
	OAuthErrorCodeUnset     OAuthErrorCode = "code_unset"
	OAuthErrorInternal      OAuthErrorCode = "internal_server_error"
)

// OAuthResult is the outcome of a callback: either a resolved session token
// or a failure code.
type OAuthResult struct {
	Status    OAuthStatus
	ErrorCode OAuthErrorCode
	Token     Token
	UserID    int64
}

// Failed reports whether the callback ended in the FAILED state.
func (r OAuthResult) Failed() bool {
	return r.Status != OAuthResolved
}
