package projects

import (
	"net/url"
	"strconv"
)

// ProjectType is a buildable project category with its base rate.
type ProjectType struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	BaseCostPerSqm float64 `json:"base_cost_per_sqm"`
}

// Template is a pre-configured project outline for a project type.
type Template struct {
	ID          int64  `json:"id"`
	ProjectType int64  `json:"project_type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Location is a pricing region with its cost multiplier.
type Location struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Country        string  `json:"country"`
	Region         string  `json:"region"`
	City           string  `json:"city"`
	CostMultiplier float64 `json:"cost_multiplier"`
}

// Material is a catalog material entry.
type Material struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
}

// MaterialPrice is a location-specific material price.
type MaterialPrice struct {
	ID       int64   `json:"id"`
	Material int64   `json:"material"`
	Location int64   `json:"location"`
	Price    float64 `json:"price"`
}

// LaborPrice is a location-specific labor rate.
type LaborPrice struct {
	ID       int64   `json:"id"`
	Category string  `json:"category"`
	Location int64   `json:"location"`
	Rate     float64 `json:"rate"`
	Unit     string  `json:"unit"`
}

// CostBreakdown is the category split for a project type in a location.
type CostBreakdown struct {
	ProjectType int64              `json:"project_type"`
	Location    int64              `json:"location"`
	Categories  map[string]float64 `json:"categories"`
}

// FilterOptions enumerates the catalog's filterable values.
type FilterOptions struct {
	Categories []string `json:"categories"`
	Countries  []string `json:"countries"`
	Units      []string `json:"units"`
}

// CatalogQuery filters catalog listings.
type CatalogQuery struct {
	Category string
	Location int64
	Search   string
}

func (q CatalogQuery) values() url.Values {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Location > 0 {
		v.Set("location", strconv.FormatInt(q.Location, 10))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}
