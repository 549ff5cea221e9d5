// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/with-auth/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 30 * time.Second
	defaultRateLimit      = 5
	defaultRateBurst      = 20
	defaultEnv            = "development"
	defaultFrontendURL    = "http://localhost:3000"

	defaultGoogleScope = "openid https://www.googleapis.com/auth/userinfo.email https://www.googleapis.com/auth/userinfo.profile"
	defaultKakaoScope  = "profile_nickname profile_image"

	// DefaultRecaptchaThreshold is the minimal accepted reCAPTCHA score.
	DefaultRecaptchaThreshold = 0.7
)

// applyDefaults fills every optional field that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Env == "" {
		cfg.App.Env = defaultEnv
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.App.FrontendURL == "" {
		cfg.App.FrontendURL = defaultFrontendURL
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.RateLimit == 0 {
		cfg.Server.RateLimit = defaultRateLimit
	}
	if cfg.Server.RateBurst == 0 {
		cfg.Server.RateBurst = defaultRateBurst
	}

	if cfg.OAuth.Google.Scope == "" {
		cfg.OAuth.Google.Scope = defaultGoogleScope
	}
	if cfg.OAuth.Kakao.Scope == "" {
		cfg.OAuth.Kakao.Scope = defaultKakaoScope
	}

	if cfg.Recaptcha.Threshold == 0 {
		cfg.Recaptcha.Threshold = DefaultRecaptchaThreshold
	}
}

// validate checks that the merged [StructuredConfig] can be used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost must be in [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if u, err := url.Parse(cfg.App.FrontendURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: frontend url must be absolute", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 {
		return ErrInvalidServerConfigs
	}
	if _, err := utils.NewClientIPResolver(cfg.Server.TrustedProxies); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	for name, client := range map[string]OAuthClient{"google": cfg.OAuth.Google, "kakao": cfg.OAuth.Kakao} {
		if client.Enabled() && client.RedirectURL == "" {
			return fmt.Errorf("%w: %s redirect url is required", ErrInvalidOAuthConfigs, name)
		}
	}

	if cfg.Recaptcha.Threshold < 0 || cfg.Recaptcha.Threshold > 1 {
		return fmt.Errorf("%w: threshold must be in [0, 1]", ErrInvalidRecaptchaConfigs)
	}
	if cfg.Recaptcha.Enabled() && cfg.Recaptcha.SiteKey == "" {
		return fmt.Errorf("%w: site key is required", ErrInvalidRecaptchaConfigs)
	}

	return nil
}
