package session

import (
	"context"

	"github.com/buildcost/buildcost-go/core/apiclient"
)

// API is the remote authentication surface the session manager drives.
// integration/api/auth provides the production implementation.
type API interface {
	// CurrentUser verifies the attached credential and returns the profile
	// behind it. Called once per process start during restoration.
	CurrentUser(ctx context.Context) (User, error)

	// Login exchanges credentials for a profile and a token.
	Login(ctx context.Context, creds Credentials) (User, string, error)

	// Logout notifies the server of session termination. Best-effort: the
	// manager logs a failure and proceeds with local logout regardless.
	Logout(ctx context.Context) error

	// UpdateProfile sends a partial profile update and returns the full
	// updated profile.
	UpdateProfile(ctx context.Context, fields map[string]any) (User, error)

	// Register, SendOTP and VerifyOTP are the auxiliary flows. They use the
	// server's success-flag envelope and never feed back into session state.
	Register(ctx context.Context, fields map[string]any) (apiclient.Envelope, error)
	SendOTP(ctx context.Context, phoneNumber string) (apiclient.Envelope, error)
	VerifyOTP(ctx context.Context, phoneNumber, code string) (apiclient.Envelope, error)
}

// Result is the uniform outcome shape of session operations. Operations
// catch their own failures; they never propagate transport errors upward.
type Result struct {
	Success bool
	Error   string
}

// UserResult is a Result carrying the updated profile.
type UserResult struct {
	Result
	User User
}

// DataResult is a Result carrying the auxiliary-flow response payload.
type DataResult struct {
	Result
	Data map[string]any
}
