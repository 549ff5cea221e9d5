package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds the provider answer copied into error messages.
const maxErrorBody = 256

// mapHTTPError converts a non-200 provider answer into an error wrapping
// ErrProviderResponse and, when the status is known, a more specific sentinel.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrProviderResponse, ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w: %s", ErrProviderResponse, ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w: %s", ErrProviderResponse, ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrProviderResponse, ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w: %s", ErrProviderResponse, ErrTooManyRequests, body)
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %w: %s", ErrProviderResponse, ErrProviderUnavailable, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrProviderResponse, resp.StatusCode(), body)
	}
}
