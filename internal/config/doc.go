// Package config provides configuration loading, merging, and validation
// for the with-auth server.
//
// Configuration is assembled from multiple sources in the following order;
// a field set by an earlier source is kept:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Unset optional fields receive defaults, then the result is validated.
// The entry point is [GetStructuredConfig].
package config
