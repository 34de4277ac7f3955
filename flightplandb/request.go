package flightplandb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Pagination and quota headers returned by the API.
const (
	headerPageCount   = "X-Page-Count"
	headerPageCurrent = "X-Page-Current"
	headerPagePerPage = "X-Page-PerPage"
	headerItemCount   = "X-Item-Count"
	headerSortOrder   = "X-Sort-Order"
	headerLimitCap    = "X-Limit-Cap"
	headerLimitUsed   = "X-Limit-Used"
	headerAPIVersion  = "X-API-Version"
	headerUnits       = "X-Units"
)

// response is one round trip's worth of result: the headers (which carry
// quota and pagination metadata) and the raw body.
type response struct {
	header http.Header
	body   []byte
}

// do performs exactly one HTTP round trip. Auth is attached only when the
// client has a key; unset query parameters must already have been dropped by
// the caller. Non-2xx statuses are returned as classified *APIError values.
// It never retries.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any, format Format) (*response, error) {
	accept, err := format.mediaType()
	if err != nil {
		return nil, err
	}

	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.units != "" {
		req.Header.Set(headerUnits, string(c.units))
	}
	// The API key rides as the Basic auth username with an empty password.
	if c.apiKey != "" {
		req.SetBasicAuth(c.apiKey, "")
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Msg("Making Flight Plan Database API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyStatus(resp.StatusCode, respBody)
	}

	return &response{header: resp.Header, body: respBody}, nil
}

// getJSON performs a GET and decodes the native JSON response into v.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, v any) error {
	resp, err := c.do(ctx, http.MethodGet, path, params, nil, FormatNative)
	if err != nil {
		return err
	}
	return decodeJSON(resp.body, v)
}

// postJSON performs a POST with a JSON body and decodes the response into v.
func (c *Client) postJSON(ctx context.Context, path string, body, v any) error {
	resp, err := c.do(ctx, http.MethodPost, path, nil, body, FormatNative)
	if err != nil {
		return err
	}
	return decodeJSON(resp.body, v)
}

// patchJSON performs a PATCH with a JSON body and decodes the response into v.
func (c *Client) patchJSON(ctx context.Context, path string, body, v any) error {
	resp, err := c.do(ctx, http.MethodPatch, path, nil, body, FormatNative)
	if err != nil {
		return err
	}
	return decodeJSON(resp.body, v)
}

func decodeJSON(data []byte, v any) error {
	if v == nil {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
