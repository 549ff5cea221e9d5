package http

import (
	"net/http"

	"github.com/MKhiriev/with-auth/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeOK(w, r, models.VersionResponse{
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}
