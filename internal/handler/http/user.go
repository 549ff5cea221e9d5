package http

import (
	"net/http"

	"github.com/MKhiriev/with-auth/internal/utils"
	"github.com/MKhiriev/with-auth/models"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, ErrUnauthorizedToken.Error())
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, models.UserResponse{
		Code:  http.StatusOK,
		State: http.StatusText(http.StatusOK),
		User:  user,
	}, http.StatusOK)
}
