package http

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/models"
)

const (
	stateCookieName   = "with-state"
	stateCookieMaxAge = 10 * time.Minute

	signinPath         = "/auth/signin"
	signinCompletePath = "/auth/signin/complete"
)

// signinProvider starts a federated login: the encrypted state goes into the
// cookie and the browser is sent to the provider's consent page.
func (h *Handler) signinProvider(provider models.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.services.OAuthService.Supports(provider) {
			writeError(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
			return
		}

		start, err := h.services.OAuthService.Initiate(r.Context(), provider)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		http.SetCookie(w, h.stateCookie(start.EncryptedState, int(stateCookieMaxAge.Seconds())))
		http.Redirect(w, r, start.AuthorizationURL, http.StatusFound)
	}
}

// callbackProvider finishes a federated login and redirects to the frontend
// with either the session token or the error code.
func (h *Handler) callbackProvider(provider models.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.services.OAuthService.Supports(provider) {
			writeError(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
			return
		}

		query := r.URL.Query()
		callback := models.OAuthCallback{
			Error: query.Get("error"),
			State: query.Get("state"),
			Code:  query.Get("code"),
		}
		if cookie, err := r.Cookie(stateCookieName); err == nil {
			callback.CookieState = cookie.Value
		}

		result := h.services.OAuthService.Callback(r.Context(), provider, callback)
		if result.Failed() {
			logger.FromRequest(r).Debug().Str("code", string(result.ErrorCode)).Msg("oauth callback failed")
			http.Redirect(w, r, h.frontendURL(signinPath, url.Values{"error": {string(result.ErrorCode)}}), http.StatusFound)
			return
		}

		http.SetCookie(w, h.stateCookie("", -1))
		http.Redirect(w, r, h.frontendURL(signinCompletePath, url.Values{"jwt": {result.Token.SignedString}}), http.StatusFound)
	}
}

// stateCookie builds the state cookie; a negative maxAge deletes it.
//
// SameSite is Lax for every provider: the callback is a top-level navigation
// coming back from the provider's site, and a Strict cookie is not sent on it.
func (h *Handler) stateCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     stateCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.app.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *Handler) frontendURL(path string, query url.Values) string {
	return strings.TrimRight(h.app.FrontendURL, "/") + path + "?" + query.Encode()
}
