package http

import (
	"github.com/MKhiriev/with-auth/internal/metrics"
	"github.com/MKhiriev/with-auth/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	// authentication flows, throttled per client
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)

		r.Get("/api/auth/signin/google", h.signinProvider(models.ProviderGoogle))
		r.Get("/api/auth/callback/google", h.callbackProvider(models.ProviderGoogle))
		r.Get("/api/auth/signin/kakao", h.signinProvider(models.ProviderKakao))
		r.Get("/api/auth/callback/kakao", h.callbackProvider(models.ProviderKakao))

		r.Post("/api/auth/signin/password", h.signinPassword)
		r.Post("/api/auth/signup", h.signup)
		r.Get("/api/auth/signup/available", h.usernameAvailable)

		r.With(h.auth).Post("/api/auth/authorization", h.authorization)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/user/get", h.getUser)
	})

	router.Get("/api/version/", h.getServerVersion)
	if h.gatherer != nil {
		router.Get("/metrics", metrics.Handler(h.gatherer).ServeHTTP)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
