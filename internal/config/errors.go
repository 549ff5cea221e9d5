package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAppConfigs indicates a missing sign key, an out of range
	// bcrypt cost or a relative frontend url.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a negative timeout or rate limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidOAuthConfigs indicates an enabled provider without a
	// redirect url.
	ErrInvalidOAuthConfigs = errors.New("invalid oauth configuration")
	// ErrInvalidRecaptchaConfigs indicates an out of range threshold or an
	// enabled project without a site key.
	ErrInvalidRecaptchaConfigs = errors.New("invalid recaptcha configuration")
)
