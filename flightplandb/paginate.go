package flightplandb

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"strconv"
)

// SortOrder selects the order paginated listings are returned in.
type SortOrder string

const (
	SortCreated    SortOrder = "created"
	SortUpdated    SortOrder = "updated"
	SortPopularity SortOrder = "popularity"
	SortDistance   SortOrder = "distance"
)

// Valid reports whether s is an order the API accepts.
func (s SortOrder) Valid() bool {
	switch s {
	case SortCreated, SortUpdated, SortPopularity, SortDistance:
		return true
	}
	return false
}

// SearchOption configures a paginated listing call.
type SearchOption func(*searchSettings)

type searchSettings struct {
	sort       SortOrder
	pageSize   int
	maxResults int
}

// WithSort sets the server-side sort order for the listing.
func WithSort(sort SortOrder) SearchOption {
	return func(s *searchSettings) {
		s.sort = sort
	}
}

// WithPageSize sets how many records the server returns per page (the API's
// "limit" parameter, capped server-side at 100).
func WithPageSize(n int) SearchOption {
	return func(s *searchSettings) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithMaxResults stops the iterator after n records even if more pages
// remain. Zero means no cap.
func WithMaxResults(n int) SearchOption {
	return func(s *searchSettings) {
		if n > 0 {
			s.maxResults = n
		}
	}
}

func newSearchSettings(opts []SearchOption) searchSettings {
	var s searchSettings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// paginate returns a lazy iterator over every record of a paginated
// endpoint. Pages are fetched sequentially and on demand, starting at page 1;
// the total page count is read from the X-Page-Count header of each response,
// and a response without that header is treated as the only page. Record
// order follows the server within a page and page numbers strictly increase.
//
// A failing page request ends the sequence by yielding the classified error
// once; records already yielded remain valid. Breaking out of the loop stops
// further page requests.
func paginate[T any](c *Client, ctx context.Context, path string, params url.Values, settings searchSettings) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		if settings.sort != "" && !settings.sort.Valid() {
			yield(zero, fmt.Errorf("invalid sort order %q", string(settings.sort)))
			return
		}

		yielded := 0
		page, pageCount := 1, 1
		for page <= pageCount {
			query := url.Values{}
			for k, vs := range params {
				query[k] = vs
			}
			query.Set("page", strconv.Itoa(page))
			if settings.sort != "" {
				query.Set("sort", string(settings.sort))
			}
			if settings.pageSize > 0 {
				query.Set("limit", strconv.Itoa(settings.pageSize))
			}

			resp, err := c.do(ctx, http.MethodGet, path, query, nil, FormatNative)
			if err != nil {
				yield(zero, err)
				return
			}

			if pc := resp.header.Get(headerPageCount); pc != "" {
				if n, err := strconv.Atoi(pc); err == nil {
					pageCount = n
				}
			}

			var records []T
			if err := json.Unmarshal(resp.body, &records); err != nil {
				yield(zero, fmt.Errorf("failed to parse page %d: %w", page, err))
				return
			}

			c.logger.Debug().
				Str("path", path).
				Int("page", page).
				Int("pages", pageCount).
				Int("records", len(records)).
				Msg("Fetched page")

			for _, record := range records {
				if !yield(record, nil) {
					return
				}
				yielded++
				if settings.maxResults > 0 && yielded >= settings.maxResults {
					return
				}
			}
			page++
		}
	}
}
