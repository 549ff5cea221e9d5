package http

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/MKhiriev/with-auth/internal/config"
	"github.com/MKhiriev/with-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func findCookie(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestSigninProvider_SetsCookieAndRedirects(t *testing.T) {
	tests := []struct {
		provider models.Provider
		path     string
		sameSite http.SameSite
	}{
		{models.ProviderGoogle, "/api/auth/signin/google", http.SameSiteLaxMode},
		{models.ProviderKakao, "/api/auth/signin/kakao", http.SameSiteLaxMode},
	}

	for _, tt := range tests {
		t.Run(tt.provider.String(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newHandlerFixture(t, ctrl, newTestConfig())

			f.oauth.EXPECT().Supports(tt.provider).Return(true)
			f.oauth.EXPECT().Initiate(gomock.Any(), tt.provider).Return(models.OAuthStart{
				AuthorizationURL: "https://provider.example.com/authorize?state=plain",
				EncryptedState:   "iv.ciphertext",
			}, nil)

			rr := f.do(http.MethodGet, tt.path, nil, nil)

			require.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, "https://provider.example.com/authorize?state=plain", rr.Header().Get("Location"))

			cookie := findCookie(t, rr.Result(), "with-state")
			assert.Equal(t, "iv.ciphertext", cookie.Value)
			assert.Equal(t, "/", cookie.Path)
			assert.Equal(t, 600, cookie.MaxAge)
			assert.True(t, cookie.HttpOnly)
			assert.False(t, cookie.Secure)
			assert.Equal(t, tt.sameSite, cookie.SameSite)
		})
	}
}

func TestSigninProvider_SecureCookieInProduction(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := newTestConfig()
	cfg.App.Env = config.EnvProduction
	f := newHandlerFixture(t, ctrl, cfg)

	f.oauth.EXPECT().Supports(models.ProviderGoogle).Return(true)
	f.oauth.EXPECT().Initiate(gomock.Any(), models.ProviderGoogle).
		Return(models.OAuthStart{AuthorizationURL: "https://accounts.google.com/o/oauth2/auth", EncryptedState: "x.y"}, nil)

	rr := f.do(http.MethodGet, "/api/auth/signin/google", nil, nil)

	assert.True(t, findCookie(t, rr.Result(), "with-state").Secure)
}

func TestSigninProvider_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl, newTestConfig())

	f.oauth.EXPECT().Supports(models.ProviderKakao).Return(false)

	rr := f.do(http.MethodGet, "/api/auth/signin/kakao", nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSigninProvider_InitiateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl, newTestConfig())

	f.oauth.EXPECT().Supports(models.ProviderGoogle).Return(true)
	f.oauth.EXPECT().Initiate(gomock.Any(), models.ProviderGoogle).Return(models.OAuthStart{}, errors.New("entropy"))

	rr := f.do(http.MethodGet, "/api/auth/signin/google", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Result().Cookies())
}

func TestCallbackProvider_PassesParametersAndCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl, newTestConfig())

	f.oauth.EXPECT().Supports(models.ProviderKakao).Return(true)
	f.oauth.EXPECT().Callback(gomock.Any(), models.ProviderKakao, models.OAuthCallback{
		State:       "plain",
		Code:        "auth-code",
		CookieState: "iv.ciphertext",
	}).Return(models.OAuthResult{Status: models.OAuthResolved, Token: testToken, UserID: 5})

	rr := f.do(http.MethodGet, "/api/auth/callback/kakao?state=plain&code=auth-code", nil,
		map[string]string{"Cookie": "with-state=iv.ciphertext"})

	require.Equal(t, http.StatusFound, rr.Code)

	location, err := url.Parse(rr.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "with.example.com", location.Host)
	assert.Equal(t, "/auth/signin/complete", location.Path)
	assert.Equal(t, testToken.SignedString, location.Query().Get("jwt"))

	cookie := findCookie(t, rr.Result(), "with-state")
	assert.Negative(t, cookie.MaxAge)
	assert.Empty(t, cookie.Value)
}

func TestCallbackProvider_FailureRedirect(t *testing.T) {
	codes := []models.OAuthErrorCode{
		models.OAuthErrorGoogle,
		models.OAuthErrorStateUnset,
		models.OAuthErrorStateMismatch,
		models.OAuthErrorCodeUnset,
		models.OAuthErrorInternal,
	}

	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newHandlerFixture(t, ctrl, newTestConfig())

			f.oauth.EXPECT().Supports(models.ProviderGoogle).Return(true)
			f.oauth.EXPECT().Callback(gomock.Any(), models.ProviderGoogle, models.OAuthCallback{Error: "access_denied"}).
				Return(models.OAuthResult{Status: models.OAuthFailed, ErrorCode: code})

			rr := f.do(http.MethodGet, "/api/auth/callback/google?error=access_denied", nil, nil)

			require.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, testFrontend+"/auth/signin?error="+string(code), rr.Header().Get("Location"))
			assert.Empty(t, rr.Result().Cookies())
		})
	}
}

func TestFrontendURL_TrailingSlash(t *testing.T) {
	h := &Handler{app: config.App{FrontendURL: "https://with.example.com/"}}

	got := h.frontendURL(signinPath, url.Values{"error": {"code_unset"}})
	assert.Equal(t, "https://with.example.com/auth/signin?error=code_unset", got)
}
