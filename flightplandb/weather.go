package flightplandb

import (
	"context"
	"net/url"
)

// AirportWeather fetches the current METAR and TAF for an airport.
func (c *Client) AirportWeather(ctx context.Context, icao string) (*Weather, error) {
	var weather Weather
	if err := c.getJSON(ctx, "/weather/"+url.PathEscape(icao), nil, &weather); err != nil {
		return nil, err
	}
	return &weather, nil
}
