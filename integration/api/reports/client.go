package reports

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/buildcost/buildcost-go/core/apiclient"
)

// Report is a rendered document over one or more estimates.
type Report struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Template  string    `json:"template"`
	Estimate  int64     `json:"estimate"`
	Format    string    `json:"format"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Template is an available report layout.
type Template struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GenerateRequest renders a report for an estimate.
type GenerateRequest struct {
	EstimateID int64  `json:"estimate_id"`
	Template   string `json:"template,omitempty"`
	Format     string `json:"format,omitempty"`
}

// ShareRequest shares a report with a recipient by email.
type ShareRequest struct {
	Email       string `json:"email"`
	ExpiresDays int    `json:"expires_days,omitempty"`
}

// ShareLink is the server's share grant for a report.
type ShareLink struct {
	ShareToken uuid.UUID `json:"share_token"`
	ExpiresAt  time.Time `json:"expires_at"`
	ShareURL   string    `json:"share_url"`
}

// Client issues requests against the /reports endpoint group.
type Client struct {
	api *apiclient.Client
}

// New creates a reports client on top of the shared request pipeline.
func New(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// List returns a page of the account's reports.
func (c *Client) List(ctx context.Context, page int) (apiclient.Page[Report], error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	var out apiclient.Page[Report]
	if err := c.api.Get(ctx, "/reports/", query, &out); err != nil {
		return apiclient.Page[Report]{}, err
	}
	return out, nil
}

// Get fetches a single report.
func (c *Client) Get(ctx context.Context, id int64) (Report, error) {
	var out Report
	if err := c.api.Get(ctx, fmt.Sprintf("/reports/%d/", id), nil, &out); err != nil {
		return Report{}, err
	}
	return out, nil
}

// Generate renders a report for an estimate.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (Report, error) {
	var out Report
	if err := c.api.Post(ctx, "/reports/generate/", req, &out); err != nil {
		return Report{}, err
	}
	return out, nil
}

// Download returns the rendered report document. The bytes are opaque;
// the report's Format says what they contain.
func (c *Client) Download(ctx context.Context, id int64) ([]byte, error) {
	return c.api.Download(ctx, fmt.Sprintf("/reports/%d/download/", id), nil)
}

// Share grants read access to a report via an emailed link.
func (c *Client) Share(ctx context.Context, id int64, req ShareRequest) (ShareLink, error) {
	var out ShareLink
	if err := c.api.Post(ctx, fmt.Sprintf("/reports/%d/share/", id), req, &out); err != nil {
		return ShareLink{}, err
	}
	return out, nil
}

// Shared fetches a report through a share token.
func (c *Client) Shared(ctx context.Context, token uuid.UUID) (Report, error) {
	var out Report
	if err := c.api.Get(ctx, fmt.Sprintf("/reports/shared/%s/", token), nil, &out); err != nil {
		return Report{}, err
	}
	return out, nil
}

// Templates lists the available report layouts.
func (c *Client) Templates(ctx context.Context) ([]Template, error) {
	var out []Template
	if err := c.api.Get(ctx, "/reports/templates/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
