package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/with-auth/internal/adapter"
	"github.com/MKhiriev/with-auth/internal/service"
	"github.com/MKhiriev/with-auth/internal/validators"
	"github.com/MKhiriev/with-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testToken = models.Token{SignedString: "header.payload.signature", UserID: 5}

func signinBody() models.PasswordSignInRequest {
	return models.PasswordSignInRequest{ID: "alice", Password: "s3cret!", Recaptcha: "captcha-token"}
}

func signupBody() models.SignUpRequest {
	return models.SignUpRequest{
		Name:      "Alice",
		Email:     "alice@example.com",
		ID:        "alice",
		Password:  "s3cret!",
		Recaptcha: "captcha-token",
	}
}

// ---- POST /api/auth/signin/password ----

func TestSigninPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl, newTestConfig())

	user := models.User{UserID: 5, Role: models.RoleUser}
	gomock.InOrder(
		f.scorer.EXPECT().Score(gomock.Any(), "captcha-token", "203.0.113.9", adapter.ActionSigninPassword).Return(true, nil),
		f.auth.EXPECT().Authenticate(gomock.Any(), "alice", "s3cret!").Return(user, nil),
		f.tokens.EXPECT().CreateToken(gomock.Any(), user).Return(testToken, nil),
	)

	rr := f.do(http.MethodPost, "/api/auth/signin/password", signinBody(), nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.TokenResponse{Code: 200, State: "OK", Result: "success", Token: testToken.SignedString}, resp)
}

func TestSigninPassword_ScoresPeerAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl, newTestConfig())

	user := models.User{UserID: 5, Role: models.RoleUser}
	f.scorer.EXPECT().Score(gomock.Any(), "captcha-token", "203.0.113.9", adapter.ActionSigninPassword).Return(true, nil)
	f.auth.EXPECT().Authenticate(gomock.Any(), "alice", "s3cret!").Return(user, nil)
	f.tokens.EXPECT().CreateToken(gomock.Any(), user).Return(testToken, nil)

	rr := f.do(http.MethodPost, "/api/auth/signin/password", signinBody(), map[string]string{
		"X-Forwarded-For": "198.51.100.77",
		"X-Real-IP":       "198.51.100.78",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSigninPassword_InvalidCredentialsLookTheSame(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl, newTestConfig())

	f.scorer.EXPECT().Score(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	f.auth.EXPECT().Authenticate(gomock.Any(), "ghost", gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)
	f.auth.EXPECT().Authenticate(gomock.Any(), "alice", gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)

	unknown := signinBody()
	unknown.ID = "ghost"
	rrUnknown := f.do(http.MethodPost, "/api/auth/signin/password", unknown, nil)
	rrWrong := f.do(http.MethodPost, "/api/auth/signin/password", signinBody(), nil)

	assert.Equal(t, http.StatusBadRequest, rrUnknown.Code)
	assert.Equal(t, rrUnknown.Code, rrWrong.Code)
	assert.Equal(t, rrUnknown.Body.String(), rrWrong.Body.String())
	assert.Equal(t, "invalid credentials", decodeError(t, rrWrong).Message)
}

func TestSigninPassword_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		body        any
		scorer      func(f handlerFixture)
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "malformed JSON",
			body:        "{not json",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON was passed",
		},
		{
			name:        "short password",
			body:        models.PasswordSignInRequest{ID: "alice", Password: "123", Recaptcha: "t"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Password must be over 6 characters long",
		},
		{
			name:        "missing recaptcha",
			body:        models.PasswordSignInRequest{ID: "alice", Password: "s3cret!"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "reCAPTCHA token was not passed",
		},
		{
			name: "bot detected",
			body: signinBody(),
			scorer: func(f handlerFixture) {
				f.scorer.EXPECT().Score(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Recaptcha verification failed",
		},
		{
			name: "bot detection unavailable",
			body: signinBody(),
			scorer: func(f handlerFixture) {
				f.scorer.EXPECT().Score(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, adapter.ErrVerificationCheck)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Recaptcha verification failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newHandlerFixture(t, ctrl, newTestConfig())
			if tt.scorer != nil {
				tt.scorer(f)
			}

			rr := f.do(http.MethodPost, "/api/auth/signin/password", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rr).Message)
		})
	}
}

func TestSigninPassword_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl, newTestConfig())

	f.scorer.EXPECT().Score(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	f.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("connection refused"))

	rr := f.do(http.MethodPost, "/api/auth/signin/password", signinBody(), nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, "Server currently unable to handle this request", resp.Message)
	assert.NotContains(t, rr.Body.String(), "connection refused")
}

// ---- POST /api/auth/signup ----

func TestSignup_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl, newTestConfig())

	user := models.User{UserID: 5, Role: models.RoleUser}
	gomock.InOrder(
		f.scorer.EXPECT().Score(gomock.Any(), "captcha-token", gomock.Any(), adapter.ActionSignup).Return(true, nil),
		f.auth.EXPECT().SignUp(gomock.Any(), signupBody()).Return(user, nil),
		f.tokens.EXPECT().CreateToken(gomock.Any(), user).Return(testToken, nil),
	)

	rr := f.do(http.MethodPost, "/api/auth/signup", signupBody(), nil)

	require.Equal(t, http.StatusCreated, rr.Code)
	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 201, resp.Code)
	assert.Equal(t, "Created", resp.State)
	assert.Equal(t, testToken.SignedString, resp.Token)
}

func TestSignup_ValidationBeforeBotDetection(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl, newTestConfig())

	body := signupBody()
	body.Email = "not-an-email"
	body.Sex = "X"

	rr := f.do(http.MethodPost, "/api/auth/signup", body, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	msg := decodeError(t, rr).Message
	assert.Contains(t, msg, "Email regex check failed")
	assert.Contains(t, msg, "Sex must be one of M, F, N")
}

func TestSignup_PasswordOverBcryptLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl, newTestConfig())

	body := signupBody()
	body.Password = strings.Repeat("p", 80)

	rr := f.do(http.MethodPost, "/api/auth/signup", body, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Password must be at most 72 bytes long", decodeError(t, rr).Message)
}

func TestSignup_ServiceValidationIsBadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl, newTestConfig())

	f.scorer.EXPECT().Score(gomock.Any(), "captcha-token", "203.0.113.9", adapter.ActionSignup).Return(true, nil)
	f.auth.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(models.User{}, fmt.Errorf("%w: %w",
		service.ErrValidation, &validators.ValidationError{Messages: []string{"Password must be at most 72 bytes long"}}))

	rr := f.do(http.MethodPost, "/api/auth/signup", signupBody(), nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Password must be at most 72 bytes long", decodeError(t, rr).Message)
}

func TestSignup_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl, newTestConfig())

	f.scorer.EXPECT().Score(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	f.auth.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrConflict)

	rr := f.do(http.MethodPost, "/api/auth/signup", signupBody(), nil)

	assert.Equal(t, http.StatusConflict, rr.Code)
	decodeError(t, rr)
}

// ---- GET /api/auth/signup/available ----

func TestUsernameAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl, newTestConfig())

	f.auth.EXPECT().UsernameAvailable(gomock.Any(), "alice").Return(false, nil)
	f.auth.EXPECT().UsernameAvailable(gomock.Any(), "bob").Return(true, nil)

	for id, want := range map[string]bool{"alice": false, "bob": true} {
		rr := f.do(http.MethodGet, "/api/auth/signup/available?id="+id, nil, nil)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.AvailabilityResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, want, resp.Available, id)
	}
}

func TestUsernameAvailable_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl, newTestConfig())

	f.auth.EXPECT().UsernameAvailable(gomock.Any(), "").Return(false, service.ErrValidation)

	rr := f.do(http.MethodGet, "/api/auth/signup/available", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ---- POST /api/auth/authorization ----

func TestAuthorization(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl, newTestConfig())

	f.tokens.EXPECT().ParseToken(gomock.Any(), "good").Return(testToken, nil)

	rr := f.do(http.MethodPost, "/api/auth/authorization", nil, map[string]string{"Authorization": "Bearer good"})

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.AuthorizationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.AuthorizationResponse{Code: 200, State: "OK", Authorized: true}, resp)
}
