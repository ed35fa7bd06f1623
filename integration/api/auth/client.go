package auth

import (
	"context"

	"github.com/buildcost/buildcost-go/core/apiclient"
	"github.com/buildcost/buildcost-go/core/session"
)

// Client issues requests against the /auth endpoint group.
type Client struct {
	api *apiclient.Client
}

var _ session.API = (*Client)(nil)

// New creates an auth client on top of the shared request pipeline.
func New(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// Dashboard is the authenticated landing payload: the profile behind the
// current token plus the account's headline figures.
type Dashboard struct {
	User  session.User   `json:"user"`
	Stats map[string]any `json:"stats"`
}

// Dashboard fetches the full dashboard payload.
func (c *Client) Dashboard(ctx context.Context) (Dashboard, error) {
	var out Dashboard
	if err := c.api.Get(ctx, "/auth/dashboard/", nil, &out); err != nil {
		return Dashboard{}, err
	}
	return out, nil
}

// CurrentUser verifies the attached token and returns the profile behind
// it. This is the whoami call the session manager uses for restoration.
func (c *Client) CurrentUser(ctx context.Context) (session.User, error) {
	dashboard, err := c.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	return dashboard.User, nil
}

// Login exchanges credentials for a profile and a token.
func (c *Client) Login(ctx context.Context, creds session.Credentials) (session.User, string, error) {
	var out struct {
		Token string       `json:"token"`
		User  session.User `json:"user"`
	}
	if err := c.api.Post(ctx, "/auth/login/", creds, &out); err != nil {
		return nil, "", err
	}
	return out.User, out.Token, nil
}

// Logout notifies the server of session termination.
func (c *Client) Logout(ctx context.Context) error {
	return c.api.Post(ctx, "/auth/logout/", nil, nil)
}

// Profile fetches the current profile.
func (c *Client) Profile(ctx context.Context) (session.User, error) {
	var out session.User
	if err := c.api.Get(ctx, "/auth/profile/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProfile sends a partial profile update and returns the updated
// profile as the server echoes it.
func (c *Client) UpdateProfile(ctx context.Context, fields map[string]any) (session.User, error) {
	var out session.User
	if err := c.api.Patch(ctx, "/auth/profile/", fields, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Register submits a registration request.
func (c *Client) Register(ctx context.Context, fields map[string]any) (apiclient.Envelope, error) {
	var out apiclient.Envelope
	if err := c.api.Post(ctx, "/auth/register/", fields, &out); err != nil {
		return apiclient.Envelope{}, err
	}
	return out, nil
}

// SimpleRegister hits the reduced registration endpoint the server keeps
// for connectivity diagnostics.
func (c *Client) SimpleRegister(ctx context.Context, fields map[string]any) (apiclient.Envelope, error) {
	var out apiclient.Envelope
	if err := c.api.Post(ctx, "/auth/simple-register/", fields, &out); err != nil {
		return apiclient.Envelope{}, err
	}
	return out, nil
}

// SendOTP requests a phone verification code.
func (c *Client) SendOTP(ctx context.Context, phoneNumber string) (apiclient.Envelope, error) {
	body := map[string]string{"phone_number": phoneNumber}
	var out apiclient.Envelope
	if err := c.api.Post(ctx, "/auth/send-otp/", body, &out); err != nil {
		return apiclient.Envelope{}, err
	}
	return out, nil
}

// VerifyOTP confirms a phone verification code.
func (c *Client) VerifyOTP(ctx context.Context, phoneNumber, code string) (apiclient.Envelope, error) {
	body := map[string]string{"phone_number": phoneNumber, "otp_code": code}
	var out apiclient.Envelope
	if err := c.api.Post(ctx, "/auth/verify-otp/", body, &out); err != nil {
		return apiclient.Envelope{}, err
	}
	return out, nil
}
