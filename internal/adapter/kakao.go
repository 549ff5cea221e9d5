// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/with-auth/internal/config"
	"github.com/MKhiriev/with-auth/internal/utils"
	"github.com/MKhiriev/with-auth/models"
)

const (
	kakaoAuthURL    = "https://kauth.kakao.com/oauth/authorize"
	kakaoTokenURL   = "https://kauth.kakao.com/oauth/token"
	kakaoProfileURL = "https://kapi.kakao.com/v2/user/me"

	kakaoStateLength     = 16
	kakaoFormContentType = "application/x-www-form-urlencoded;charset=utf-8"
	kakaoTokenType       = "bearer"
)

type kakaoTokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
}

type kakaoProfileResponse struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Profile struct {
			Nickname        string `json:"nickname"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"profile"`
		Email           string `json:"email"`
		IsEmailVerified bool   `json:"is_email_verified"`
	} `json:"kakao_account"`
}

type kakaoProvider struct {
	cfg    config.OAuthClient
	client *utils.HTTPClient
}

// NewKakaoProvider returns the Kakao [IdentityProvider]. Empty endpoint
// overrides in cfg select Kakao's production endpoints.
func NewKakaoProvider(cfg config.OAuthClient, client *utils.HTTPClient) IdentityProvider {
	if cfg.AuthURL == "" {
		cfg.AuthURL = kakaoAuthURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = kakaoTokenURL
	}
	if cfg.ProfileURL == "" {
		cfg.ProfileURL = kakaoProfileURL
	}
	if client == nil {
		client = utils.NewHTTPClient(0)
	}

	return &kakaoProvider{cfg: cfg, client: client}
}

func (k *kakaoProvider) Name() models.Provider {
	return models.ProviderKakao
}

func (k *kakaoProvider) NewState() (string, error) {
	return utils.RandomAlphanumeric(kakaoStateLength)
}

func (k *kakaoProvider) AuthorizationURL(state string) string {
	query := url.Values{
		"client_id":     {k.cfg.ClientID},
		"redirect_uri":  {k.cfg.RedirectURL},
		"response_type": {"code"},
		"scope":         {k.cfg.Scope},
		"state":         {state},
	}

	return k.cfg.AuthURL + "?" + query.Encode()
}

func (k *kakaoProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {k.cfg.ClientID},
		"redirect_uri":  {k.cfg.RedirectURL},
		"code":          {code},
		"client_secret": {k.cfg.ClientSecret},
	}

	resp, err := k.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", kakaoFormContentType).
		SetBody(form.Encode()).
		Post(k.cfg.TokenURL)
	if err != nil {
		return "", fmt.Errorf("kakao token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("kakao token request: %w", err)
	}

	var token kakaoTokenResponse
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return "", fmt.Errorf("%w: decoding kakao token: %w", ErrProviderResponse, err)
	}
	if token.TokenType != kakaoTokenType {
		return "", fmt.Errorf("%w: got %q", ErrInvalidTokenType, token.TokenType)
	}
	if token.AccessToken == "" {
		return "", ErrEmptyAccessToken
	}

	return token.AccessToken, nil
}

func (k *kakaoProvider) FetchProfile(ctx context.Context, accessToken string) (models.ExternalProfile, error) {
	resp, err := k.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetHeader("Content-Type", kakaoFormContentType).
		SetQueryParam("secure_resource", "true").
		Post(k.cfg.ProfileURL)
	if err != nil {
		return models.ExternalProfile{}, fmt.Errorf("kakao profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExternalProfile{}, fmt.Errorf("kakao profile request: %w", err)
	}

	var me kakaoProfileResponse
	if err = json.Unmarshal(resp.Body(), &me); err != nil {
		return models.ExternalProfile{}, fmt.Errorf("%w: decoding kakao profile: %w", ErrProviderResponse, err)
	}
	if me.ID == 0 {
		return models.ExternalProfile{}, fmt.Errorf("%w: kakao profile has no id", ErrInvalidProfile)
	}

	account := me.KakaoAccount
	profile := models.ExternalProfile{
		Provider:   models.ProviderKakao,
		ExternalID: strconv.FormatInt(me.ID, 10),
		Name:       account.Profile.Nickname,
		AvatarURL:  account.Profile.ProfileImageURL,
	}
	if account.Email != "" {
		email := account.Email
		profile.Email = &email
		profile.EmailVerified = account.IsEmailVerified
	}

	return profile, nil
}
