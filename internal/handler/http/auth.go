package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/with-auth/internal/adapter"
	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/internal/service"
	"github.com/MKhiriev/with-auth/models"
)

const resultSuccess = "success"

func (h *Handler) signinPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.PasswordSignInRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, ErrInvalidJSON.Error())
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		writeServiceError(w, r, wrapValidation(err))
		return
	}

	if !h.verifyHuman(ctx, r, request.Recaptcha, adapter.ActionSigninPassword) {
		writeError(w, r, http.StatusBadRequest, ErrRecaptchaFailed.Error())
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, request.ID, request.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.respondWithToken(w, r, user, http.StatusOK)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, ErrInvalidJSON.Error())
		return
	}

	if err := h.validator.Validate(ctx, request.WithDefaults()); err != nil {
		writeServiceError(w, r, wrapValidation(err))
		return
	}

	if !h.verifyHuman(ctx, r, request.Recaptcha, adapter.ActionSignup) {
		writeError(w, r, http.StatusBadRequest, ErrRecaptchaFailed.Error())
		return
	}

	user, err := h.services.AuthService.SignUp(ctx, request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.respondWithToken(w, r, user, http.StatusCreated)
}

func (h *Handler) usernameAvailable(w http.ResponseWriter, r *http.Request) {
	available, err := h.services.AuthService.UsernameAvailable(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, models.AvailabilityResponse{
		Code:      http.StatusOK,
		State:     http.StatusText(http.StatusOK),
		Available: available,
	}, http.StatusOK)
}

// authorization answers requests that passed the auth middleware.
func (h *Handler) authorization(w http.ResponseWriter, r *http.Request) {
	writeOK(w, r, models.AuthorizationResponse{
		Code:       http.StatusOK,
		State:      http.StatusText(http.StatusOK),
		Authorized: true,
	}, http.StatusOK)
}

// verifyHuman runs the bot-detection check for action. Errors of the check
// itself count as a failure.
func (h *Handler) verifyHuman(ctx context.Context, r *http.Request, token, action string) bool {
	ok, err := h.scorer.Score(ctx, token, h.clientIPs.ClientIP(r), action)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("action", action).Msg("bot-detection check failed")
		return false
	}
	if !ok {
		logger.FromRequest(r).Info().Str("action", action).Msg("bot-detection check rejected the request")
	}
	return ok
}

func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.TokenService.CreateToken(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, models.TokenResponse{
		Code:   status,
		State:  http.StatusText(status),
		Result: resultSuccess,
		Token:  token.SignedString,
	}, status)
}

func wrapValidation(err error) error {
	return fmt.Errorf("%w: %w", service.ErrValidation, err)
}
