package utils

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// WriteJSON serializes data to JSON and writes it with the given status code
// and an "application/json" content type.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ClientIP returns the host part of r.RemoteAddr, the peer that opened the
// connection. Forwarding headers are ignored; see [ClientIPResolver].
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ClientIPResolver finds the client address of requests that may pass
// through reverse proxies. X-Forwarded-For and X-Real-IP are read only when
// the connecting peer is one of the trusted proxies.
//
// A nil *ClientIPResolver trusts no proxy.
type ClientIPResolver struct {
	trusted []netip.Prefix
}

// NewClientIPResolver parses proxies, each an IP address or a CIDR prefix
// (e.g. "10.0.0.0/8", "127.0.0.1").
func NewClientIPResolver(proxies []string) (*ClientIPResolver, error) {
	trusted := make([]netip.Prefix, 0, len(proxies))
	for _, proxy := range proxies {
		prefix, err := ParseProxyPrefix(proxy)
		if err != nil {
			return nil, err
		}
		trusted = append(trusted, prefix)
	}

	return &ClientIPResolver{trusted: trusted}, nil
}

// ParseProxyPrefix parses an IP address or a CIDR prefix. A bare address
// becomes a single-host prefix.
func ParseProxyPrefix(proxy string) (netip.Prefix, error) {
	proxy = strings.TrimSpace(proxy)
	if strings.Contains(proxy, "/") {
		prefix, err := netip.ParsePrefix(proxy)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("invalid trusted proxy %q: %w", proxy, err)
		}
		return prefix.Masked(), nil
	}

	addr, err := netip.ParseAddr(proxy)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("invalid trusted proxy %q: %w", proxy, err)
	}
	addr = addr.Unmap()
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

// ClientIP returns the client address of r.
//
// Behind a trusted peer the X-Forwarded-For chain is walked from the right
// and the first untrusted hop wins; X-Real-IP is the fallback. Any other
// peer is the client itself.
func (c *ClientIPResolver) ClientIP(r *http.Request) string {
	peer := ClientIP(r)
	if !c.isTrusted(peer) {
		return peer
	}

	hops := strings.Split(strings.Join(r.Header.Values("X-Forwarded-For"), ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if _, err := netip.ParseAddr(hop); err != nil {
			// a malformed hop was not written by a trusted proxy
			return peer
		}
		if !c.isTrusted(hop) {
			return hop
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		if _, err := netip.ParseAddr(realIP); err == nil {
			return realIP
		}
	}

	return peer
}

func (c *ClientIPResolver) isTrusted(ip string) bool {
	if c == nil || len(c.trusted) == 0 {
		return false
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()

	for _, prefix := range c.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
