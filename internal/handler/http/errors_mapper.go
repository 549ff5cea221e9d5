package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/internal/service"
	"github.com/MKhiriev/with-auth/internal/utils"
	"github.com/MKhiriev/with-auth/internal/validators"
	"github.com/MKhiriev/with-auth/models"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is checked in order; the first target matched with
// errors.Is decides the answer.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{service.ErrValidation, errorResponse{http.StatusBadRequest, ""}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusBadRequest, msgInvalidCredentials}},
	{service.ErrInvalidToken, errorResponse{http.StatusUnauthorized, ErrUnauthorizedToken.Error()}},
	{service.ErrConflict, errorResponse{http.StatusConflict, msgConflict}},
	{service.ErrUserNotFound, errorResponse{http.StatusBadRequest, msgUserNotFound}},
}

// responseFromError maps a service error to its status and reason. Unknown
// errors become a 500 without details.
func responseFromError(err error) errorResponse {
	for _, entry := range errorStatusMap {
		if !errors.Is(err, entry.target) {
			continue
		}
		if entry.message != "" {
			return entry.errorResponse
		}

		var verr *validators.ValidationError
		if errors.As(err, &verr) {
			return errorResponse{entry.status, verr.Error()}
		}
		return errorResponse{entry.status, http.StatusText(entry.status)}
	}

	return errorResponse{http.StatusInternalServerError, msgInternal}
}

// writeError answers with the JSON error envelope. 401 answers also carry
// the Bearer challenge.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	if _, err := utils.WriteJSON(w, models.ErrorResponse{
		Code:    status,
		State:   http.StatusText(status),
		Message: message,
	}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}

// writeServiceError logs err and answers with its mapped envelope.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	writeError(w, r, resp.status, resp.message)
}

func writeOK(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
