// Package http implements the REST transport of the auth server.
//
// It wires the chi router, the OAuth redirect handlers, password signin and
// signup, the token check endpoints and the middleware chain: panic
// recovery, trace ids, access logging with request metrics, request
// timeouts, per-client rate limiting and bearer token authentication.
package http
