package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/internal/utils"
)

// auth is the bearer token middleware. On success the token's user id is
// stored in the request context under [utils.UserIDCtxKey].
//
// Header problems are answered with 400 and a failed verification with 401:
//   - no header: [ErrEmptyAuthorizationHeader];
//   - a scheme other than Bearer: [ErrInvalidAuthorizationHeader];
//   - Bearer without a token: [ErrEmptyToken];
//   - a token rejected by the token service: [ErrUnauthorizedToken].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("bad authorization header")
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			writeError(w, r, http.StatusUnauthorized, ErrUnauthorizedToken.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form "Bearer <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if errors.Is(err, utils.ErrInvalidBearerToken) {
		return "", ErrInvalidAuthorizationHeader
	}
	if err != nil {
		return "", err
	}
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
