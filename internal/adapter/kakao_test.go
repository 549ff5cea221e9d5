// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/with-auth/internal/config"
	"github.com/MKhiriev/with-auth/internal/utils"
	"github.com/MKhiriev/with-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKakao(t *testing.T, handler http.HandlerFunc) IdentityProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewKakaoProvider(config.OAuthClient{
		ClientID:     "kakao-client",
		ClientSecret: "kakao-secret",
		RedirectURL:  "https://api.with.test/api/auth/callback/kakao",
		Scope:        "profile_nickname profile_image",
		TokenURL:     srv.URL + "/oauth/token",
		ProfileURL:   srv.URL + "/v2/user/me",
	}, utils.NewHTTPClient(time.Second))
}

func TestKakao_NewState(t *testing.T) {
	p := NewKakaoProvider(config.OAuthClient{ClientID: "id"}, nil)

	seen := make(map[string]struct{})
	for range 20 {
		state, err := p.NewState()
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9]{16}$`), state)
		seen[state] = struct{}{}
	}
	assert.Len(t, seen, 20)
	assert.Equal(t, models.ProviderKakao, p.Name())
}

func TestKakao_AuthorizationURL(t *testing.T) {
	p := NewKakaoProvider(config.OAuthClient{
		ClientID:    "kakao-client",
		RedirectURL: "https://api.with.test/api/auth/callback/kakao",
		Scope:       "profile_nickname profile_image",
	}, nil)

	u, err := url.Parse(p.AuthorizationURL("abc123"))
	require.NoError(t, err)

	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "kauth.kakao.com", u.Host)
	assert.Equal(t, "/oauth/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "kakao-client", q.Get("client_id"))
	assert.Equal(t, "https://api.with.test/api/auth/callback/kakao", q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "profile_nickname profile_image", q.Get("scope"))
	assert.Equal(t, "abc123", q.Get("state"))
}

func TestKakao_ExchangeCode(t *testing.T) {
	p := newTestKakao(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/oauth/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded;charset=utf-8", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "kakao-client", r.PostForm.Get("client_id"))
		assert.Equal(t, "kakao-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "https://api.with.test/api/auth/callback/kakao", r.PostForm.Get("redirect_uri"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json;charset=UTF-8")
		_, _ = w.Write([]byte(`{"access_token":"kakao-access","token_type":"bearer","refresh_token":"r","expires_in":21599}`))
	})

	token, err := p.ExchangeCode(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "kakao-access", token)
}

func TestKakao_ExchangeCode_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, `{"error":"invalid_grant"}`, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, `{"error":"invalid_client"}`, ErrUnauthorized},
		{"created is not ok", http.StatusCreated, `{"access_token":"a","token_type":"bearer"}`, ErrProviderResponse},
		{"wrong token type", http.StatusOK, `{"access_token":"a","token_type":"Bearer"}`, ErrInvalidTokenType},
		{"empty access token", http.StatusOK, `{"access_token":"","token_type":"bearer"}`, ErrEmptyAccessToken},
		{"malformed json", http.StatusOK, `{not json`, ErrProviderResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestKakao(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			token, err := p.ExchangeCode(context.Background(), "code")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, token)
		})
	}
}

func TestKakao_ExchangeCode_ServerError(t *testing.T) {
	var calls atomic.Int32
	p := newTestKakao(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := p.ExchangeCode(context.Background(), "code")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
	assert.Equal(t, int32(1), calls.Load(), "a single-use code is exchanged once")
}

func TestKakao_FetchProfile(t *testing.T) {
	p := newTestKakao(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/user/me", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("secure_resource"))
		assert.Equal(t, "Bearer kakao-access", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 2632890179,
			"kakao_account": {
				"profile": {"nickname": "홍길동", "profile_image_url": "https://k.kakaocdn.net/p.jpg"}
			}
		}`))
	})

	profile, err := p.FetchProfile(context.Background(), "kakao-access")
	require.NoError(t, err)
	assert.Equal(t, models.ProviderKakao, profile.Provider)
	assert.Equal(t, "2632890179", profile.ExternalID)
	assert.Equal(t, "홍길동", profile.Name)
	assert.Equal(t, "https://k.kakaocdn.net/p.jpg", profile.AvatarURL)
	assert.Nil(t, profile.Email)
	assert.False(t, profile.EmailVerified)
}

func TestKakao_FetchProfile_WithEmail(t *testing.T) {
	p := newTestKakao(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 5, "kakao_account": {"email": "k@example.com", "is_email_verified": true}}`))
	})

	profile, err := p.FetchProfile(context.Background(), "kakao-access")
	require.NoError(t, err)
	require.NotNil(t, profile.Email)
	assert.Equal(t, "k@example.com", *profile.Email)
	assert.True(t, profile.EmailVerified)
}

func TestKakao_FetchProfile_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"msg":"this access token does not exist","code":-401}`, ErrUnauthorized},
		{"missing id", http.StatusOK, `{"kakao_account":{}}`, ErrInvalidProfile},
		{"malformed json", http.StatusOK, `[`, ErrProviderResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestKakao(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := p.FetchProfile(context.Background(), "kakao-access")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
