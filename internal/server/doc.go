// Package server runs the HTTP server and stops it gracefully on
// SIGTERM, SIGINT or SIGQUIT.
package server
