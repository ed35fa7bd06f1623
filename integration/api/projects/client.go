package projects

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/buildcost/buildcost-go/core/apiclient"
)

// Client issues requests against the /projects endpoint group.
type Client struct {
	api *apiclient.Client
}

// New creates a projects catalog client on top of the shared request pipeline.
func New(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// Types lists project types matching the query.
func (c *Client) Types(ctx context.Context, query CatalogQuery) ([]ProjectType, error) {
	var out []ProjectType
	if err := c.api.Get(ctx, "/projects/types/", query.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Templates lists project templates matching the query.
func (c *Client) Templates(ctx context.Context, query CatalogQuery) ([]Template, error) {
	var out []Template
	if err := c.api.Get(ctx, "/projects/templates/", query.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Locations lists pricing regions matching the query.
func (c *Client) Locations(ctx context.Context, query CatalogQuery) ([]Location, error) {
	var out []Location
	if err := c.api.Get(ctx, "/projects/locations/", query.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Location fetches a single pricing region.
func (c *Client) Location(ctx context.Context, id int64) (Location, error) {
	var out Location
	if err := c.api.Get(ctx, fmt.Sprintf("/projects/locations/%d/", id), nil, &out); err != nil {
		return Location{}, err
	}
	return out, nil
}

// Materials lists catalog materials matching the query.
func (c *Client) Materials(ctx context.Context, query CatalogQuery) ([]Material, error) {
	var out []Material
	if err := c.api.Get(ctx, "/projects/materials/", query.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MaterialPrices lists location-specific material prices.
func (c *Client) MaterialPrices(ctx context.Context, query CatalogQuery) ([]MaterialPrice, error) {
	var out []MaterialPrice
	if err := c.api.Get(ctx, "/projects/materials/prices/", query.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LaborPrices lists location-specific labor rates.
func (c *Client) LaborPrices(ctx context.Context, query CatalogQuery) ([]LaborPrice, error) {
	var out []LaborPrice
	if err := c.api.Get(ctx, "/projects/labor/prices/", query.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Breakdown returns the cost category split for a project type, optionally
// scoped to a location.
func (c *Client) Breakdown(ctx context.Context, projectTypeID, locationID int64) (CostBreakdown, error) {
	query := url.Values{}
	if locationID > 0 {
		query.Set("location", strconv.FormatInt(locationID, 10))
	}

	var out CostBreakdown
	if err := c.api.Get(ctx, fmt.Sprintf("/projects/types/%d/breakdown/", projectTypeID), query, &out); err != nil {
		return CostBreakdown{}, err
	}
	return out, nil
}

// FilterOptions enumerates the catalog's filterable values.
func (c *Client) FilterOptions(ctx context.Context) (FilterOptions, error) {
	var out FilterOptions
	if err := c.api.Get(ctx, "/projects/filter-options/", nil, &out); err != nil {
		return FilterOptions{}, err
	}
	return out, nil
}

// Search runs a free-text search across the catalog.
func (c *Client) Search(ctx context.Context, term string) ([]ProjectType, error) {
	var out []ProjectType
	if err := c.api.Get(ctx, "/projects/search/", url.Values{"q": {term}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
