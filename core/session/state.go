package session

// Status identifies the lifecycle phase of the session.
type Status int

const (
	// StatusInitializing is the start state: restoration from the
	// persisted token has not finished yet.
	StatusInitializing Status = iota
	// StatusUnauthenticated means no valid credential is held.
	StatusUnauthenticated
	// StatusAuthenticating means a login request is in flight.
	StatusAuthenticating
	// StatusAuthenticated means a verified user and token are present.
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// User is the profile record returned by the server. Its attributes are
// defined by the API; the session layer treats it as an opaque bag of
// fields and never inspects it beyond presence.
type User map[string]any

// Str returns a string attribute of the profile, or "" when absent or not
// a string. Convenience for front ends rendering common fields.
func (u User) Str(key string) string {
	if v, ok := u[key].(string); ok {
		return v
	}
	return ""
}

// Credentials is the login credential pair.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// State is an immutable snapshot of the session.
type State struct {
	User   User
	Token  string
	Status Status
}

// Initial returns the process-start state: loading, all fields empty.
func Initial() State {
	return State{Status: StatusInitializing}
}

// IsAuthenticated reports whether a user and token are both present.
// Derived on demand rather than stored, so it cannot drift from the fields
// it summarizes.
func (s State) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

// IsLoading reports whether the initial restore check or a login is in flight.
func (s State) IsLoading() bool {
	return s.Status == StatusInitializing || s.Status == StatusAuthenticating
}

// Action is the tagged union of session state transitions.
type Action interface {
	isAction()
}

// Started enters Authenticating and clears any stale user or token.
type Started struct{}

// Succeeded enters Authenticated with the given user and token. Emitted by
// both a successful login and a successful restore verification.
type Succeeded struct {
	User  User
	Token string
}

// Failed enters Unauthenticated with all fields cleared. Emitted by a
// failed login, a failed restore verification, and the no-token restore.
type Failed struct{}

// LoggedOut enters Unauthenticated after an explicit logout.
type LoggedOut struct{}

// UserUpdated replaces the profile in place, leaving token and status
// untouched.
type UserUpdated struct {
	User User
}

func (Started) isAction()     {}
func (Succeeded) isAction()   {}
func (Failed) isAction()      {}
func (LoggedOut) isAction()   {}
func (UserUpdated) isAction() {}

// Reduce is the pure transition function of the session machine. Unknown
// or nil actions leave the state unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Started:
		return State{Status: StatusAuthenticating}
	case Succeeded:
		return State{User: a.User, Token: a.Token, Status: StatusAuthenticated}
	case Failed:
		return State{Status: StatusUnauthenticated}
	case LoggedOut:
		return State{Status: StatusUnauthenticated}
	case UserUpdated:
		s.User = a.User
		return s
	default:
		return s
	}
}
