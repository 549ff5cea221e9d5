package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]any{"code": 200, "state": "OK"}

	n, err := WriteJSON(w, data, http.StatusCreated)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestClientIP_IgnoresForwardingHeaders(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr", "10.0.0.1:5555", nil, "10.0.0.1"},
		{"remote addr without port", "10.0.0.1", nil, "10.0.0.1"},
		{"forwarded for", "10.0.0.1:5555", map[string]string{"X-Forwarded-For": "203.0.113.7"}, "10.0.0.1"},
		{"real ip", "10.0.0.1:5555", map[string]string{"X-Real-IP": "198.51.100.3"}, "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			if got := ClientIP(r); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestClientIPResolver(t *testing.T) {
	resolver, err := NewClientIPResolver([]string{"10.0.0.0/8", "192.0.2.1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"untrusted peer keeps its address", "203.0.113.9:41000", map[string]string{"X-Forwarded-For": "198.51.100.1"}, "203.0.113.9"},
		{"untrusted peer ignores real ip", "203.0.113.9:41000", map[string]string{"X-Real-IP": "198.51.100.1"}, "203.0.113.9"},
		{"trusted peer without headers", "10.1.2.3:5555", nil, "10.1.2.3"},
		{"trusted peer forwards client", "10.1.2.3:5555", map[string]string{"X-Forwarded-For": "198.51.100.1"}, "198.51.100.1"},
		{"spoofed left entries are skipped", "10.1.2.3:5555", map[string]string{"X-Forwarded-For": "1.2.3.4, 198.51.100.1, 10.0.0.7"}, "198.51.100.1"},
		{"single host proxy", "192.0.2.1:80", map[string]string{"X-Forwarded-For": "198.51.100.2"}, "198.51.100.2"},
		{"real ip fallback", "10.1.2.3:5555", map[string]string{"X-Real-IP": "198.51.100.3"}, "198.51.100.3"},
		{"malformed hop", "10.1.2.3:5555", map[string]string{"X-Forwarded-For": "not-an-ip"}, "10.1.2.3"},
		{"only proxies in chain", "10.1.2.3:5555", map[string]string{"X-Forwarded-For": "10.9.9.9"}, "10.1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			if got := resolver.ClientIP(r); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestClientIPResolver_NilTrustsNoProxy(t *testing.T) {
	var resolver *ClientIPResolver

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.1.2.3:5555"
	r.Header.Set("X-Forwarded-For", "198.51.100.1")

	if got := resolver.ClientIP(r); got != "10.1.2.3" {
		t.Errorf("expected %q, got %q", "10.1.2.3", got)
	}
}

func TestNewClientIPResolver_Invalid(t *testing.T) {
	for _, proxy := range []string{"", "10.0.0.0/33", "proxy.local"} {
		if _, err := NewClientIPResolver([]string{proxy}); err == nil {
			t.Errorf("expected error for %q", proxy)
		}
	}
}
