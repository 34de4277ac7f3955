package flightplandb

import (
	"context"
	"fmt"
	"iter"
	"net/url"
)

// Airport fetches the full airport record for an ICAO code.
func (c *Client) Airport(ctx context.Context, icao string) (*Airport, error) {
	var airport Airport
	if err := c.getJSON(ctx, "/nav/airport/"+url.PathEscape(icao), nil, &airport); err != nil {
		return nil, err
	}
	return &airport, nil
}

// NATS returns the current North Atlantic tracks.
func (c *Client) NATS(ctx context.Context) ([]Track, error) {
	var tracks []Track
	if err := c.getJSON(ctx, "/nav/NATS", nil, &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

// PACOTS returns the current Pacific Organized Track System tracks.
func (c *Client) PACOTS(ctx context.Context) ([]Track, error) {
	var tracks []Track
	if err := c.getJSON(ctx, "/nav/PACOTS", nil, &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

// SearchNavaids iterates over navaids whose ident or name matches the query.
// navType optionally restricts results to one node type (NodeVOR, NodeNDB,
// ...); empty returns all types.
func (c *Client) SearchNavaids(ctx context.Context, q, navType string, opts ...SearchOption) iter.Seq2[SearchNavaid, error] {
	params := url.Values{}
	params.Set("q", q)
	if navType != "" {
		switch navType {
		case NodeUnknown, NodeAirport, NodeNDB, NodeVOR, NodeFix, NodeDME, NodeLatLon:
			params.Set("types", navType)
		default:
			return func(yield func(SearchNavaid, error) bool) {
				yield(SearchNavaid{}, fmt.Errorf("%q is not a valid navaid type", navType))
			}
		}
	}
	return paginate[SearchNavaid](c, ctx, "/search/nav", params, newSearchSettings(opts))
}
