package flightplandb

import (
	"net/http"
	"time"
)

// Units selects the unit system the API reports distances, elevations and
// lengths in, via the X-Units request header.
type Units string

const (
	UnitsAviation Units = "AVIATION"
	UnitsMetric   Units = "METRIC"
	UnitsSI       Units = "SI"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client. Use this to impose timeouts or
// share a connection pool; the library sets none of its own.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets a timeout on a copy of the client's http.Client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = timeout
		c.httpClient = &hc
	}
}

// WithUnits asks the API to return values in the given unit system.
func WithUnits(units Units) Option {
	return func(c *Client) {
		c.units = units
	}
}

// WithUserAgent sets a custom User-Agent string.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}
