package flightplandb

import "context"

// Tags returns all flight plan tags with their usage statistics.
func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.getJSON(ctx, "/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
