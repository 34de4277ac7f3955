package flightplandb

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// Ping checks API connectivity. Works without credentials.
func (c *Client) Ping(ctx context.Context) (*StatusResponse, error) {
	var status StatusResponse
	if err := c.getJSON(ctx, "/", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// RevokeKey revokes the client's API key. The key stops working immediately;
// a new one must be generated on the website. Requires authentication.
func (c *Client) RevokeKey(ctx context.Context) (*StatusResponse, error) {
	var status StatusResponse
	if err := c.getJSON(ctx, "/auth/revoke", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// headerValue issues a bare request and returns one response header.
func (c *Client) headerValue(ctx context.Context, key string) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/", nil, nil, FormatNative)
	if err != nil {
		return "", err
	}
	return resp.header.Get(key), nil
}

func (c *Client) headerInt(ctx context.Context, key string) (int, error) {
	value, err := c.headerValue(ctx, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("header %s: %w", key, err)
	}
	return n, nil
}

// Version returns the API version that replied to the request.
func (c *Client) Version(ctx context.Context) (int, error) {
	return c.headerInt(ctx, headerAPIVersion)
}

// ServerUnits returns the unit system responses are reported in: AVIATION,
// METRIC or SI.
func (c *Client) ServerUnits(ctx context.Context) (Units, error) {
	value, err := c.headerValue(ctx, headerUnits)
	return Units(value), err
}

// LimitCap returns the allowed number of requests per 24-hour window. The
// window rolls per request: quota spent at 19:00 frees up at 19:00 the next
// day. Authenticated clients get a higher cap.
func (c *Client) LimitCap(ctx context.Context) (int, error) {
	return c.headerInt(ctx, headerLimitCap)
}

// LimitUsed returns the number of requests already spent in the current
// window, counted against the API key or, anonymously, the IP address.
func (c *Client) LimitUsed(ctx context.Context) (int, error) {
	return c.headerInt(ctx, headerLimitUsed)
}
