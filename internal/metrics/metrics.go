// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics collects Prometheus counters for the authentication flows
// and exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Signin outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeRejected = "rejected"
)

// Recorder is the metrics surface used by the service and HTTP layers.
type Recorder interface {
	RecordSignin(method, outcome string)
	RecordOAuthCallback(provider, result string)
	RecordAccountCreated(provider string)
	RecordTokenIssued()
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

// Collector is the Prometheus backed [Recorder].
type Collector struct {
	signins         *prometheus.CounterVec
	oauthCallbacks  *prometheus.CounterVec
	accountsCreated *prometheus.CounterVec
	tokensIssued    prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		signins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "with_auth_signin_total",
			Help: "Signin attempts by method and outcome.",
		}, []string{"method", "outcome"}),
		oauthCallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "with_auth_oauth_callback_total",
			Help: "OAuth callbacks by provider and result code.",
		}, []string{"provider", "result"}),
		accountsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "with_auth_accounts_created_total",
			Help: "Accounts created by login provider.",
		}, []string{"provider"}),
		tokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "with_auth_tokens_issued_total",
			Help: "Session tokens issued.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "with_auth_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "with_auth_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.signins,
		c.oauthCallbacks,
		c.accountsCreated,
		c.tokensIssued,
		c.httpRequests,
		c.httpLatency,
	)

	return c
}

func (c *Collector) RecordSignin(method, outcome string) {
	c.signins.WithLabelValues(method, outcome).Inc()
}

func (c *Collector) RecordOAuthCallback(provider, result string) {
	c.oauthCallbacks.WithLabelValues(provider, result).Inc()
}

func (c *Collector) RecordAccountCreated(provider string) {
	c.accountsCreated.WithLabelValues(provider).Inc()
}

func (c *Collector) RecordTokenIssued() {
	c.tokensIssued.Inc()
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

type nopRecorder struct{}

// Nop returns a Recorder that drops every observation.
func Nop() Recorder {
	return nopRecorder{}
}

func (nopRecorder) RecordSignin(string, string) {}
func (nopRecorder) RecordOAuthCallback(string, string) {}
func (nopRecorder) RecordAccountCreated(string) {}
func (nopRecorder) RecordTokenIssued() {}
func (nopRecorder) RecordHTTPRequest(string, string, int, time.Duration) {}
