package flightplandb

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"

	"github.com/google/go-querystring/query"
)

// Plan fetches a flight plan and its associated attributes by ID.
func (c *Client) Plan(ctx context.Context, id int) (*Plan, error) {
	var plan Plan
	if err := c.getJSON(ctx, fmt.Sprintf("/plan/%d", id), nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// ExportPlan fetches a flight plan in the given export format. The body is
// returned untouched: binary for FormatPDF, text for everything else.
// FormatNative is not an export; use Plan for decoded records.
func (c *Client) ExportPlan(ctx context.Context, id int, format Format) ([]byte, error) {
	if format == FormatNative {
		return nil, errors.New("native format is not an export; use Plan")
	}
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/plan/%d", id), nil, nil, format)
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}

// CreatePlan registers a new flight plan and returns it with its assigned ID.
// Requires authentication.
func (c *Client) CreatePlan(ctx context.Context, plan Plan) (*Plan, error) {
	var created Plan
	if err := c.postJSON(ctx, "/plan/", plan, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// EditPlan replaces the plan with the given plan's ID. Requires
// authentication and ownership of the plan.
func (c *Client) EditPlan(ctx context.Context, plan Plan) (*Plan, error) {
	var edited Plan
	if err := c.patchJSON(ctx, fmt.Sprintf("/plan/%d", plan.ID), plan, &edited); err != nil {
		return nil, err
	}
	return &edited, nil
}

// DeletePlan deletes a flight plan linked to the authenticated account.
func (c *Client) DeletePlan(ctx context.Context, id int) (*StatusResponse, error) {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/plan/%d", id), nil, nil, FormatNative)
	if err != nil {
		return nil, err
	}
	var status StatusResponse
	if err := decodeJSON(resp.body, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// SearchPlans searches for flight plans, following pagination lazily.
// Unset query fields are dropped from the request. Including routes in the
// results requires authentication.
func (c *Client) SearchPlans(ctx context.Context, q PlanQuery, opts ...SearchOption) iter.Seq2[Plan, error] {
	params, err := query.Values(q)
	if err != nil {
		return func(yield func(Plan, error) bool) {
			yield(Plan{}, fmt.Errorf("failed to encode plan query: %w", err))
		}
	}
	return paginate[Plan](c, ctx, "/search/plans", params, newSearchSettings(opts))
}

// HasLiked reports whether the authenticated user has liked the plan.
func (c *Client) HasLiked(ctx context.Context, id int) (bool, error) {
	err := c.getJSON(ctx, fmt.Sprintf("/plan/%d/like", id), nil, nil)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// LikePlan likes a plan on behalf of the authenticated user.
func (c *Client) LikePlan(ctx context.Context, id int) (*StatusResponse, error) {
	var status StatusResponse
	if err := c.postJSON(ctx, fmt.Sprintf("/plan/%d/like", id), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// UnlikePlan removes the authenticated user's like from a plan. ErrNotFound
// means there was no like to remove.
func (c *Client) UnlikePlan(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/plan/%d/like", id), nil, nil, FormatNative)
	return err
}

// GeneratePlan creates a new flight plan from a route generation query.
// Requires authentication.
func (c *Client) GeneratePlan(ctx context.Context, q GenerateQuery) (*Plan, error) {
	var plan Plan
	if err := c.postJSON(ctx, "/auto/generate", q, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// DecodeRoute turns a space-separated route string, for example
// "KSAN BROWS TRM LRAIN KDEN", into a full flight plan. Requires
// authentication.
func (c *Client) DecodeRoute(ctx context.Context, route string) (*Plan, error) {
	var plan Plan
	body := map[string]string{"route": route}
	if err := c.postJSON(ctx, "/auto/decode", body, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
