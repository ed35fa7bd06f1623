package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/buildcost/buildcost-go/core/apiclient"
	"github.com/buildcost/buildcost-go/core/logger"
	"github.com/buildcost/buildcost-go/core/notify"
	"github.com/buildcost/buildcost-go/core/tokenstore"
)

// Per-operation fallback reasons, used when the server's error payload
// yields nothing through the extraction ladder.
const (
	fallbackLogin     = "Login failed"
	fallbackProfile   = "Profile update failed"
	fallbackRegister  = "Registration failed"
	fallbackSendOTP   = "Failed to send OTP"
	fallbackVerifyOTP = "OTP verification failed"
)

const (
	msgLoginOK     = "Login successful!"
	msgLogoutOK    = "Logged out successfully!"
	msgProfileOK   = "Profile updated successfully!"
	msgRegisterOK  = "Registration successful! Please verify your phone number."
	msgSendOTPOK   = "OTP sent successfully!"
	msgVerifyOTPOK = "Phone number verified successfully!"
)

// Manager drives the session state machine. At most one instance exists per
// running client; all front-end surfaces read state through it.
type Manager struct {
	api      API
	tokens   tokenstore.Store
	cred     *apiclient.Credential
	notifier notify.Notifier
	log      *slog.Logger

	mu    sync.Mutex
	state State
	seq   uint64 // dispatch-order counter
	done  uint64 // highest completed operation
}

// Option configures a Manager.
type Option func(*Manager)

// WithNotifier attaches the user-facing notification channel.
func WithNotifier(n notify.Notifier) Option {
	return func(m *Manager) {
		if n != nil {
			m.notifier = n
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log.With(logger.Component("session"))
		}
	}
}

// New creates a session manager in the Initializing state. The three
// collaborators are mandatory; missing wiring is a programming error, not a
// runtime condition.
func New(api API, tokens tokenstore.Store, cred *apiclient.Credential, opts ...Option) (*Manager, error) {
	if api == nil {
		return nil, ErrMissingAPI
	}
	if tokens == nil {
		return nil, ErrMissingTokenStore
	}
	if cred == nil {
		return nil, ErrMissingCredential
	}

	m := &Manager{
		api:      api,
		tokens:   tokens,
		cred:     cred,
		notifier: notify.Noop{},
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:    Initial(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// MustNew is New that panics on invalid wiring.
func MustNew(api API, tokens tokenstore.Store, cred *apiclient.Credential, opts ...Option) *Manager {
	m, err := New(api, tokens, cred, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Current returns a snapshot of the session state.
func (m *Manager) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Restore attempts session restoration from the persisted token. With no
// token it transitions straight to Unauthenticated without a network call;
// otherwise it makes exactly one verification request. Any verification
// failure deletes the persisted token and clears the credential. Restore
// never fails outward.
func (m *Manager) Restore(ctx context.Context) State {
	op := m.begin(nil)

	token, err := m.tokens.Load(ctx)
	if err != nil || token == "" {
		if err != nil && !errors.Is(err, tokenstore.ErrNotFound) {
			m.log.WarnContext(ctx, "token store unreadable",
				logger.Operation("restore"), logger.Error(err))
		}
		m.complete(op, Failed{}, nil)
		return m.Current()
	}

	m.cred.Set(token)
	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.log.InfoContext(ctx, "session restore rejected",
			logger.Operation("restore"), logger.Error(err))
		m.complete(op, Failed{}, func() {
			m.clearToken(ctx)
		})
		return m.Current()
	}

	m.complete(op, Succeeded{User: user, Token: token}, nil)
	return m.Current()
}

// Login exchanges credentials for an authenticated session. On success the
// token is persisted and attached to the credential holder in the same
// step as the state transition.
func (m *Manager) Login(ctx context.Context, creds Credentials) Result {
	op := m.begin(Started{})

	user, token, err := m.api.Login(ctx, creds)
	if err != nil {
		reason := apiclient.Reason(err, fallbackLogin)
		if m.complete(op, Failed{}, nil) {
			m.notifier.Error(reason)
		}
		return Result{Success: false, Error: reason}
	}

	if m.complete(op, Succeeded{User: user, Token: token}, func() {
		if err := m.tokens.Save(ctx, token); err != nil {
			m.log.ErrorContext(ctx, "failed to persist token",
				logger.Operation("login"), logger.Error(err))
		}
		m.cred.Set(token)
	}) {
		m.notifier.Success(msgLoginOK)
	}
	return Result{Success: true}
}

// Logout terminates the session. The server call is best-effort: a failure
// is logged and local logout proceeds regardless. The persisted token and
// the credential attachment are always cleared; this operation cannot fail
// from the caller's perspective.
func (m *Manager) Logout(ctx context.Context) Result {
	op := m.begin(nil)

	if err := m.api.Logout(ctx); err != nil {
		m.log.WarnContext(ctx, "logout request failed",
			logger.Operation("logout"), logger.Error(err))
	}

	if m.complete(op, LoggedOut{}, func() {
		m.clearToken(ctx)
	}) {
		m.notifier.Success(msgLogoutOK)
	}
	return Result{Success: true}
}

// UpdateProfile sends a partial profile update. On success only the user
// record changes; the token and authentication status are untouched. On
// failure the session state is unchanged.
func (m *Manager) UpdateProfile(ctx context.Context, fields map[string]any) UserResult {
	op := m.begin(nil)

	user, err := m.api.UpdateProfile(ctx, fields)
	if err != nil {
		reason := apiclient.Reason(err, fallbackProfile)
		m.complete(op, nil, nil)
		m.notifier.Error(reason)
		return UserResult{Result: Result{Success: false, Error: reason}}
	}

	if m.complete(op, UserUpdated{User: user}, nil) {
		m.notifier.Success(msgProfileOK)
	}
	return UserResult{Result: Result{Success: true}, User: user}
}

// Register runs the registration flow. Like all auxiliary flows it never
// feeds back into session state: call the endpoint, branch on the server's
// success flag, surface a message, return the outcome.
func (m *Manager) Register(ctx context.Context, fields map[string]any) DataResult {
	env, err := m.api.Register(ctx, fields)
	return m.auxiliary(env, err, msgRegisterOK, fallbackRegister)
}

// SendOTP requests a verification code for the given phone number.
func (m *Manager) SendOTP(ctx context.Context, phoneNumber string) DataResult {
	env, err := m.api.SendOTP(ctx, phoneNumber)
	return m.auxiliary(env, err, msgSendOTPOK, fallbackSendOTP)
}

// VerifyOTP confirms the verification code for the given phone number.
func (m *Manager) VerifyOTP(ctx context.Context, phoneNumber, code string) DataResult {
	env, err := m.api.VerifyOTP(ctx, phoneNumber, code)
	return m.auxiliary(env, err, msgVerifyOTPOK, fallbackVerifyOTP)
}

// Invalidate is the out-of-band unauthorized transition: the request
// pipeline calls it (via the unauthorized hook) when any response signals
// that the credential is no longer valid. It deletes the persisted token,
// clears the credential attachment and resets the session, regardless of
// what operation is in flight. Idempotent; it bypasses the sequence guard,
// so whichever write lands last determines the observable state.
func (m *Manager) Invalidate(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearToken(ctx)
	m.state = Reduce(m.state, Failed{})
}

// begin assigns the operation its dispatch-order sequence number and
// applies an optional dispatch-time transition (e.g. entering
// Authenticating before the login request goes out).
func (m *Manager) begin(a Action) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	if a != nil {
		m.state = Reduce(m.state, a)
	}
	return m.seq
}

// complete applies the operation's closing transition together with its
// storage side effects, unless a later operation already completed: the
// most recent user intent wins, not the last response to resolve. Effects
// run under the state lock so the persisted token and the in-memory token
// never diverge across an observable transition. Returns whether the
// operation's result was applied.
func (m *Manager) complete(op uint64, a Action, effects func()) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.done > op {
		return false
	}
	m.done = op
	if effects != nil {
		effects()
	}
	m.state = Reduce(m.state, a)
	return true
}

// clearToken removes the persisted token and the credential attachment.
// Failures to delete are logged; the in-memory session clears regardless.
func (m *Manager) clearToken(ctx context.Context) {
	if err := m.tokens.Clear(ctx); err != nil {
		m.log.WarnContext(ctx, "failed to clear persisted token", logger.Error(err))
	}
	m.cred.Clear()
}

// auxiliary implements the shared pattern of the registration and OTP
// flows: branch on transport failure, then on the envelope's success flag,
// surfacing the server's message with a per-operation fallback.
func (m *Manager) auxiliary(env apiclient.Envelope, err error, successMsg, fallback string) DataResult {
	if err != nil {
		reason := apiclient.Reason(err, fallback)
		m.notifier.Error(reason)
		return DataResult{Result: Result{Success: false, Error: reason}}
	}

	if !env.Success {
		reason := env.Message
		if reason == "" {
			reason = fallback
		}
		m.notifier.Error(reason)
		return DataResult{Result: Result{Success: false, Error: reason}}
	}

	msg := env.Message
	if msg == "" {
		msg = successMsg
	}
	m.notifier.Success(msg)
	return DataResult{Result: Result{Success: true}, Data: env.Data}
}
