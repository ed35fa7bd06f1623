package subscriptions

import (
	"context"
	"time"

	"github.com/buildcost/buildcost-go/core/apiclient"
)

// Plan is a purchasable subscription tier. EstimatesLimit is nil for
// unlimited plans.
type Plan struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	PlanType       string   `json:"plan_type"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	DurationMonths *int     `json:"duration_months"`
	EstimatesLimit *int     `json:"estimates_limit"`
	Features       []string `json:"features"`
}

// Subscription is the account's active plan binding.
type Subscription struct {
	ID        int64     `json:"id"`
	Plan      Plan      `json:"plan"`
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Usage is the account's quota consumption for the current period.
type Usage struct {
	EstimatesUsed  int  `json:"estimates_used"`
	EstimatesLimit *int `json:"estimates_limit"`
	PeriodDays     int  `json:"period_days"`
}

// Payment is a historical charge against the account.
type Payment struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Client issues requests against the /subscriptions endpoint group.
type Client struct {
	api *apiclient.Client
}

// New creates a subscriptions client on top of the shared request pipeline.
func New(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// Plans lists the purchasable tiers.
func (c *Client) Plans(ctx context.Context) ([]Plan, error) {
	var out []Plan
	if err := c.api.Get(ctx, "/subscriptions/plans/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Current returns the account's active subscription.
func (c *Client) Current(ctx context.Context) (Subscription, error) {
	var out Subscription
	if err := c.api.Get(ctx, "/subscriptions/current/", nil, &out); err != nil {
		return Subscription{}, err
	}
	return out, nil
}

// Subscribe binds the account to a plan.
func (c *Client) Subscribe(ctx context.Context, planID int64) (Subscription, error) {
	body := map[string]int64{"plan_id": planID}
	var out Subscription
	if err := c.api.Post(ctx, "/subscriptions/", body, &out); err != nil {
		return Subscription{}, err
	}
	return out, nil
}

// Upgrade moves the account to a higher plan.
func (c *Client) Upgrade(ctx context.Context, planID int64) (Subscription, error) {
	body := map[string]int64{"plan_id": planID}
	var out Subscription
	if err := c.api.Post(ctx, "/subscriptions/upgrade/", body, &out); err != nil {
		return Subscription{}, err
	}
	return out, nil
}

// Cancel ends the account's subscription at the period boundary.
func (c *Client) Cancel(ctx context.Context) error {
	return c.api.Post(ctx, "/subscriptions/cancel/", nil, nil)
}

// Usage returns quota consumption for the current period.
func (c *Client) Usage(ctx context.Context) (Usage, error) {
	var out Usage
	if err := c.api.Get(ctx, "/subscriptions/usage/", nil, &out); err != nil {
		return Usage{}, err
	}
	return out, nil
}

// RecordUsage reports quota consumption for a client-side action.
func (c *Client) RecordUsage(ctx context.Context, action string) error {
	body := map[string]string{"action": action}
	return c.api.Post(ctx, "/subscriptions/record-usage/", body, nil)
}

// Payments returns the account's charge history.
func (c *Client) Payments(ctx context.Context) ([]Payment, error) {
	var out []Payment
	if err := c.api.Get(ctx, "/subscriptions/payments/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
