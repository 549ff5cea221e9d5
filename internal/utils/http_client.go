package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultHTTPClientTimeout = 10 * time.Second
	defaultHTTPClientRetries = 2
)

// HTTPClient wraps resty.Client for calls to external identity and
// bot-detection APIs. It embeds *resty.Client to expose all of its methods.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient with a request timeout and a small
// retry budget for transport errors and 5xx answers of idempotent requests.
// POSTs are sent once: an authorization code is single-use, so a repeated
// exchange fails even when the first one succeeded. A zero timeout selects
// the default of 10 seconds.
//
// Example usage:
//
//	client := utils.NewHTTPClient(5 * time.Second)
//	resp, err := client.R().SetContext(ctx).Get("https://kapi.kakao.com/v2/user/me")
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultHTTPClientTimeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(defaultHTTPClientRetries).
		SetRetryWaitTime(100 * time.Millisecond).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if !isIdempotent(resp) {
				return false
			}
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})

	return &HTTPClient{Client: client}
}

func isIdempotent(resp *resty.Response) bool {
	if resp == nil || resp.Request == nil {
		return false
	}

	switch resp.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}
