package adapter

import "errors"

var (
	ErrProviderResponse = errors.New("unexpected provider response")

	ErrBadRequest          = errors.New("provider rejected request")
	ErrUnauthorized        = errors.New("provider rejected credentials")
	ErrForbidden           = errors.New("provider denied access")
	ErrNotFound            = errors.New("provider resource not found")
	ErrTooManyRequests     = errors.New("provider rate limit exceeded")
	ErrProviderUnavailable = errors.New("provider unavailable")

	ErrInvalidTokenType  = errors.New("token type is not bearer")
	ErrEmptyAccessToken  = errors.New("provider returned empty access token")
	ErrInvalidProfile    = errors.New("provider returned incomplete profile")
	ErrEmptyAbuseToken   = errors.New("empty bot-detection token")
	ErrVerificationCheck = errors.New("bot-detection assessment failed")
)
