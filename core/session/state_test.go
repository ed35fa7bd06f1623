package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buildcost/buildcost-go/core/session"
)

func TestReduce(t *testing.T) {
	t.Parallel()

	authenticated := session.State{
		User:   session.User{"name": "X"},
		Token:  "T",
		Status: session.StatusAuthenticated,
	}

	tests := []struct {
		name   string
		state  session.State
		action session.Action
		want   session.State
	}{
		{
			name:   "started clears stale fields and enters authenticating",
			state:  authenticated,
			action: session.Started{},
			want:   session.State{Status: session.StatusAuthenticating},
		},
		{
			name:   "succeeded populates user and token",
			state:  session.State{Status: session.StatusAuthenticating},
			action: session.Succeeded{User: session.User{"name": "X"}, Token: "T"},
			want:   authenticated,
		},
		{
			name:   "failed resets everything",
			state:  session.State{Status: session.StatusAuthenticating},
			action: session.Failed{},
			want:   session.State{Status: session.StatusUnauthenticated},
		},
		{
			name:   "failed from initializing covers the no-token restore",
			state:  session.Initial(),
			action: session.Failed{},
			want:   session.State{Status: session.StatusUnauthenticated},
		},
		{
			name:   "logged out resets everything",
			state:  authenticated,
			action: session.LoggedOut{},
			want:   session.State{Status: session.StatusUnauthenticated},
		},
		{
			name:   "user updated replaces only the profile",
			state:  authenticated,
			action: session.UserUpdated{User: session.User{"name": "Y"}},
			want: session.State{
				User:   session.User{"name": "Y"},
				Token:  "T",
				Status: session.StatusAuthenticated,
			},
		},
		{
			name:   "nil action is a no-op",
			state:  authenticated,
			action: nil,
			want:   authenticated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, session.Reduce(tt.state, tt.action))
		})
	}
}

func TestState_IsAuthenticated(t *testing.T) {
	t.Parallel()

	t.Run("true only with both user and token", func(t *testing.T) {
		t.Parallel()

		assert.False(t, session.Initial().IsAuthenticated())
		assert.False(t, session.State{User: session.User{"name": "X"}}.IsAuthenticated())
		assert.False(t, session.State{Token: "T"}.IsAuthenticated())
		assert.True(t, session.State{User: session.User{"name": "X"}, Token: "T"}.IsAuthenticated())
	})
}

func TestState_IsLoading(t *testing.T) {
	t.Parallel()

	assert.True(t, session.Initial().IsLoading())
	assert.True(t, session.State{Status: session.StatusAuthenticating}.IsLoading())
	assert.False(t, session.State{Status: session.StatusUnauthenticated}.IsLoading())
	assert.False(t, session.State{Status: session.StatusAuthenticated}.IsLoading())
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "initializing", session.StatusInitializing.String())
	assert.Equal(t, "unauthenticated", session.StatusUnauthenticated.String())
	assert.Equal(t, "authenticating", session.StatusAuthenticating.String())
	assert.Equal(t, "authenticated", session.StatusAuthenticated.String())
	assert.Equal(t, "unknown", session.Status(42).String())
}

func TestUser_Str(t *testing.T) {
	t.Parallel()

	user := session.User{"name": "X", "quota": 3.0}
	assert.Equal(t, "X", user.Str("name"))
	assert.Empty(t, user.Str("quota"))
	assert.Empty(t, user.Str("missing"))
}
