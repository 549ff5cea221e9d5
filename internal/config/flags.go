package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-env deployment environment name
//	-token-sign-key token signing key
//	-bcrypt-cost bcrypt work factor
//	-frontend-url frontend origin for OAuth redirects
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit requests per second per client IP
//	-rate-burst per client IP burst size
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("with-auth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var appEnv string
	var tokenSignKey string
	var bcryptCost int
	var frontendURL string
	var requestTimeout time.Duration
	var rateLimit float64
	var rateBurst int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&appEnv, "env", "", "Deployment environment")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt cost")
	fs.StringVar(&frontendURL, "frontend-url", "", "Frontend URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Requests per second per client IP")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Burst size per client IP")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Env:          appEnv,
			TokenSignKey: tokenSignKey,
			BcryptCost:   bcryptCost,
			FrontendURL:  frontendURL,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces.
func (a *NetAddress) Set(s string) error {
	host, portString, found := strings.Cut(s, ":")
	if !found || strings.Contains(portString, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
