// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/with-auth/internal/config"
	"google.golang.org/api/option"
	recaptcha "google.golang.org/api/recaptchaenterprise/v1"
)

// Actions submitted with bot-detection tokens.
const (
	ActionSigninPassword = "signin_password"
	ActionSignup         = "signup"
)

type recaptchaScorer struct {
	assessments *recaptcha.ProjectsAssessmentsService
	parent      string
	siteKey     string
	threshold   float64
}

// NewRecaptchaScorer returns an [AbuseScorer] backed by reCAPTCHA Enterprise
// assessments. An API key from cfg is used when set, otherwise Application
// Default Credentials. Extra options are appended after the key.
func NewRecaptchaScorer(ctx context.Context, cfg config.Recaptcha, opts ...option.ClientOption) (AbuseScorer, error) {
	var clientOpts []option.ClientOption
	if cfg.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(cfg.APIKey))
	}
	clientOpts = append(clientOpts, opts...)

	svc, err := recaptcha.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating recaptcha enterprise client: %w", err)
	}

	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = config.DefaultRecaptchaThreshold
	}

	return &recaptchaScorer{
		assessments: svc.Projects.Assessments,
		parent:      "projects/" + cfg.ProjectID,
		siteKey:     cfg.SiteKey,
		threshold:   threshold,
	}, nil
}

func (s *recaptchaScorer) Score(ctx context.Context, token, clientIP, action string) (bool, error) {
	if token == "" {
		return false, ErrEmptyAbuseToken
	}

	assessment := &recaptcha.GoogleCloudRecaptchaenterpriseV1Assessment{
		Event: &recaptcha.GoogleCloudRecaptchaenterpriseV1Event{
			Token:          token,
			SiteKey:        s.siteKey,
			UserIpAddress:  clientIP,
			ExpectedAction: action,
		},
	}

	result, err := s.assessments.Create(s.parent, assessment).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrVerificationCheck, err)
	}

	if result.TokenProperties == nil || !result.TokenProperties.Valid {
		return false, nil
	}
	if result.RiskAnalysis == nil {
		return false, nil
	}

	return result.RiskAnalysis.Score >= s.threshold, nil
}

type permissiveScorer struct{}

// NewPermissiveScorer returns an [AbuseScorer] accepting every request.
// It is installed when bot detection is not configured.
func NewPermissiveScorer() AbuseScorer {
	return permissiveScorer{}
}

func (permissiveScorer) Score(context.Context, string, string, string) (bool, error) {
	return true, nil
}
