package hub

import (
	"net/http"
	"time"
)

type ClientOpt func(*Client)

// WithTimeout bounds every outbound call.
func WithTimeout(d time.Duration) ClientOpt {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the default HTTP client. The timeout option is
// ignored when a client is supplied.
func WithHTTPClient(hc *http.Client) ClientOpt {
	return func(c *Client) {
		c.http = hc
	}
}
