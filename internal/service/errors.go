package service

import "errors"

var (
	// ErrValidation wraps a request that broke an input rule. The wrapped
	// validators.ValidationError carries the readable reason.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidToken        = errors.New("token is expired or invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrConflict     = errors.New("account already exists")
	ErrUserNotFound = errors.New("user not found")

	ErrUnknownProvider = errors.New("unknown identity provider")
	ErrInvalidProfile  = errors.New("invalid external profile")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
