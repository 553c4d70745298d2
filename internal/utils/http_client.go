package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient().WithBaseURL("http://localhost:8080")
//	resp, err := client.R().Get("/api/vaults")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithBaseURL sets the URL every relative request path is resolved against.
func (c *HTTPClient) WithBaseURL(baseURL string) *HTTPClient {
	c.SetBaseURL(baseURL)
	return c
}

// WithTimeout sets the per-request timeout. Non-positive values keep the default.
func (c *HTTPClient) WithTimeout(timeout time.Duration) *HTTPClient {
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}

// WithRetries enables retries on transport errors and 502/503/504 answers.
func (c *HTTPClient) WithRetries(count int) *HTTPClient {
	if count <= 0 {
		return c
	}

	c.SetRetryCount(count).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			switch r.StatusCode() {
			case 502, 503, 504:
				return true
			}
			return false
		})
	return c
}
