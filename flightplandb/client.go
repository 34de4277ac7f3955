package flightplandb

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.flightplandatabase.com"

const defaultUserAgent = "flightplandb-go"

// Client wraps the Flight Plan Database API. A zero API key makes all
// requests anonymously; the daily quota is then tracked per IP address
// instead of per key.
//
// A Client is safe for concurrent use. It holds no mutable state between
// calls beyond the connection pool of its http.Client.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	units      Units
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Flight Plan Database client. The key may be empty
// for anonymous access. No network call is made; use Ping to verify
// connectivity.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		userAgent:  defaultUserAgent,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	return c
}

// Authenticated reports whether the client carries an API key.
func (c *Client) Authenticated() bool {
	return c.apiKey != ""
}
