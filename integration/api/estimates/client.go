package estimates

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/buildcost/buildcost-go/core/apiclient"
)

// Client issues requests against the /estimates endpoint group.
type Client struct {
	api *apiclient.Client
}

// New creates an estimates client on top of the shared request pipeline.
func New(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// List returns a page of the account's estimates.
func (c *Client) List(ctx context.Context, opts ListOptions) (apiclient.Page[Estimate], error) {
	var out apiclient.Page[Estimate]
	if err := c.api.Get(ctx, "/estimates/", opts.query(), &out); err != nil {
		return apiclient.Page[Estimate]{}, err
	}
	return out, nil
}

// Get fetches a single estimate with its line items.
func (c *Client) Get(ctx context.Context, id int64) (Estimate, error) {
	var out Estimate
	if err := c.api.Get(ctx, fmt.Sprintf("/estimates/%d/", id), nil, &out); err != nil {
		return Estimate{}, err
	}
	return out, nil
}

// Create submits a manual-entry estimate. All cost fields in the response
// are server-computed.
func (c *Client) Create(ctx context.Context, req CreateRequest) (Estimate, error) {
	var out Estimate
	if err := c.api.Post(ctx, "/estimates/", req, &out); err != nil {
		return Estimate{}, err
	}
	return out, nil
}

// Update patches an estimate with the given fields.
func (c *Client) Update(ctx context.Context, id int64, fields map[string]any) (Estimate, error) {
	var out Estimate
	if err := c.api.Patch(ctx, fmt.Sprintf("/estimates/%d/", id), fields, &out); err != nil {
		return Estimate{}, err
	}
	return out, nil
}

// Delete removes an estimate.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("/estimates/%d/", id))
}

// Calculate prices a project without saving it.
func (c *Client) Calculate(ctx context.Context, req CalculationRequest) (Calculation, error) {
	var out Calculation
	if err := c.api.Post(ctx, "/estimates/calculate/", req, &out); err != nil {
		return Calculation{}, err
	}
	return out, nil
}

// Save persists a previously calculated estimate.
func (c *Client) Save(ctx context.Context, req CreateRequest) (Estimate, error) {
	var out Estimate
	if err := c.api.Post(ctx, "/estimates/save/", req, &out); err != nil {
		return Estimate{}, err
	}
	return out, nil
}

// Upload creates an estimate from an uploaded document. The payload is
// opaque to the client; the server decides what it can parse.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (Estimate, error) {
	var out Estimate
	if err := c.api.Upload(ctx, "/estimates/upload/", "file", filename, content, &out); err != nil {
		return Estimate{}, err
	}
	return out, nil
}

// Duplicate copies an existing estimate into a new draft.
func (c *Client) Duplicate(ctx context.Context, id int64) (Estimate, error) {
	var out Estimate
	if err := c.api.Post(ctx, fmt.Sprintf("/estimates/%d/duplicate/", id), nil, &out); err != nil {
		return Estimate{}, err
	}
	return out, nil
}

// Share grants read access to an estimate via an emailed link.
func (c *Client) Share(ctx context.Context, id int64, req ShareRequest) (ShareLink, error) {
	var out ShareLink
	if err := c.api.Post(ctx, fmt.Sprintf("/estimates/%d/share/", id), req, &out); err != nil {
		return ShareLink{}, err
	}
	return out, nil
}

// Shared fetches an estimate through a share token. No authentication is
// required; expired grants fail server-side.
func (c *Client) Shared(ctx context.Context, token uuid.UUID) (Estimate, error) {
	var out Estimate
	if err := c.api.Get(ctx, fmt.Sprintf("/estimates/shared/%s/", token), nil, &out); err != nil {
		return Estimate{}, err
	}
	return out, nil
}

// Statistics returns the account's estimate summary.
func (c *Client) Statistics(ctx context.Context) (Statistics, error) {
	var out Statistics
	if err := c.api.Get(ctx, "/estimates/statistics/", nil, &out); err != nil {
		return Statistics{}, err
	}
	return out, nil
}
