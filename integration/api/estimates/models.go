package estimates

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Estimate is a construction cost estimate as the server serializes it.
type Estimate struct {
	ID                    int64     `json:"id"`
	ProjectName           string    `json:"project_name"`
	ProjectDescription    string    `json:"project_description"`
	ProjectType           int64     `json:"project_type"`
	ProjectTypeName       string    `json:"project_type_name"`
	Location              int64     `json:"location"`
	LocationName          string    `json:"location_name"`
	Source                string    `json:"source"`
	OriginalFilename      string    `json:"original_filename"`
	TotalArea             float64   `json:"total_area"`
	BaseCostPerSqm        float64   `json:"base_cost_per_sqm"`
	LocationMultiplier    float64   `json:"location_multiplier"`
	AdjustedCostPerSqm    float64   `json:"adjusted_cost_per_sqm"`
	TotalEstimatedCost    float64   `json:"total_estimated_cost"`
	ContingencyPercentage float64   `json:"contingency_percentage"`
	ContingencyAmount     float64   `json:"contingency_amount"`
	Status                string    `json:"status"`
	IsPublic              bool      `json:"is_public"`
	Items                 []Item    `json:"items,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// Item is a single line item inside an estimate.
type Item struct {
	ID          int64   `json:"id,omitempty"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// CreateRequest is the manual-entry estimate payload.
type CreateRequest struct {
	ProjectName           string  `json:"project_name"`
	ProjectDescription    string  `json:"project_description,omitempty"`
	ProjectType           int64   `json:"project_type"`
	Location              int64   `json:"location"`
	TotalArea             float64 `json:"total_area"`
	ContingencyPercentage float64 `json:"contingency_percentage,omitempty"`
	Items                 []Item  `json:"items,omitempty"`
}

// CalculationRequest asks the server to price a project without saving it.
type CalculationRequest struct {
	ProjectTypeID         int64   `json:"project_type_id"`
	LocationID            int64   `json:"location_id"`
	TotalArea             float64 `json:"total_area"`
	ContingencyPercentage float64 `json:"contingency_percentage,omitempty"`
	CustomItems           []Item  `json:"custom_items,omitempty"`
}

// Calculation is the server's pricing response: the inputs it resolved, the
// derived figures, and the category breakdown.
type Calculation struct {
	ProjectType struct {
		ID             int64   `json:"id"`
		Name           string  `json:"name"`
		BaseCostPerSqm float64 `json:"base_cost_per_sqm"`
	} `json:"project_type"`
	Location struct {
		ID             int64   `json:"id"`
		Name           string  `json:"name"`
		CostMultiplier float64 `json:"cost_multiplier"`
	} `json:"location"`
	Calculations struct {
		TotalArea             float64 `json:"total_area"`
		BaseCostPerSqm        float64 `json:"base_cost_per_sqm"`
		AdjustedCostPerSqm    float64 `json:"adjusted_cost_per_sqm"`
		BaseTotalCost         float64 `json:"base_total_cost"`
		ContingencyPercentage float64 `json:"contingency_percentage"`
		ContingencyAmount     float64 `json:"contingency_amount"`
		CustomItemsTotal      float64 `json:"custom_items_total"`
		FinalTotalCost        float64 `json:"final_total_cost"`
	} `json:"calculations"`
	Breakdown struct {
		Materials   float64 `json:"materials"`
		Labor       float64 `json:"labor"`
		Equipment   float64 `json:"equipment"`
		Contingency float64 `json:"contingency"`
		CustomItems float64 `json:"custom_items"`
	} `json:"breakdown"`
}

// ShareRequest shares an estimate with a recipient by email.
type ShareRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
	ExpiresDays int    `json:"expires_days,omitempty"`
}

// ShareLink is the server's share grant: an access token valid until the
// expiry, embedded in a shareable URL.
type ShareLink struct {
	Message    string    `json:"message"`
	ShareToken uuid.UUID `json:"share_token"`
	ExpiresAt  time.Time `json:"expires_at"`
	ShareURL   string    `json:"share_url"`
}

// Statistics summarizes the account's estimates.
type Statistics struct {
	TotalEstimates int            `json:"total_estimates"`
	TotalValue     float64        `json:"total_value"`
	AverageCost    float64        `json:"average_cost"`
	ByStatus       map[string]int `json:"by_status"`
	ByProjectType  map[string]int `json:"by_project_type"`
}

// ListOptions filters the estimate list.
type ListOptions struct {
	Status string
	Search string
	Page   int
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	return q
}
