package flightplandb

import (
	"context"
	"fmt"
	"iter"
	"net/url"
)

// Me returns the currently authenticated user. Requires authentication.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// User fetches the profile of a registered user by username.
func (c *Client) User(ctx context.Context, username string) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/user/"+url.PathEscape(username), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserPlans iterates over the flight plans a user created.
func (c *Client) UserPlans(ctx context.Context, username string, opts ...SearchOption) iter.Seq2[Plan, error] {
	path := fmt.Sprintf("/user/%s/plans", url.PathEscape(username))
	return paginate[Plan](c, ctx, path, nil, newSearchSettings(opts))
}

// UserLikes iterates over the flight plans a user has liked.
func (c *Client) UserLikes(ctx context.Context, username string, opts ...SearchOption) iter.Seq2[Plan, error] {
	path := fmt.Sprintf("/user/%s/likes", url.PathEscape(username))
	return paginate[Plan](c, ctx, path, nil, newSearchSettings(opts))
}

// SearchUsers iterates over users whose name approximately matches the
// query. The abbreviated UserSmall record is returned; fetch the full
// profile with User.
func (c *Client) SearchUsers(ctx context.Context, username string, opts ...SearchOption) iter.Seq2[UserSmall, error] {
	params := url.Values{}
	params.Set("q", username)
	return paginate[UserSmall](c, ctx, "/search/users", params, newSearchSettings(opts))
}
