package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/buildcost/buildcost-go/core/session"
)

// The design accepts that superseded requests run to completion; what it
// guarantees is that the most recent user intent determines the observable
// state, not the last response to arrive.

func TestManager_LastIntentWins(t *testing.T) {
	t.Parallel()

	t.Run("stale restore resolving after fresh login is discarded", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t, "tok-stale")
		ctx := context.Background()

		entered := make(chan struct{})
		release := make(chan struct{})
		f.api.On("CurrentUser", mock.Anything).
			Run(func(mock.Arguments) {
				close(entered)
				<-release
			}).
			Return(session.User{"name": "Old"}, nil).
			Once()

		creds := session.Credentials{Email: "u@example.com", Password: "p"}
		f.api.On("Login", mock.Anything, creds).Return(session.User{"name": "Fresh"}, "T-fresh", nil).Once()

		restored := make(chan session.State, 1)
		go func() {
			restored <- f.mgr.Restore(ctx)
		}()

		select {
		case <-entered:
		case <-time.After(5 * time.Second):
			t.Fatal("restore verification never started")
		}

		require.True(t, f.mgr.Login(ctx, creds).Success)

		close(release)
		<-restored

		state := f.mgr.Current()
		assert.Equal(t, session.User{"name": "Fresh"}, state.User)
		assert.Equal(t, "T-fresh", state.Token)
		assert.Equal(t, "T-fresh", f.persistedToken(t))
		assert.Equal(t, "T-fresh", f.cred.Token())
	})

	t.Run("stale login resolving after logout applies nothing", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t, "")
		ctx := context.Background()

		entered := make(chan struct{})
		release := make(chan struct{})
		creds := session.Credentials{Email: "u@example.com", Password: "p"}
		f.api.On("Login", mock.Anything, creds).
			Run(func(mock.Arguments) {
				close(entered)
				<-release
			}).
			Return(session.User{"name": "X"}, "T-late", nil).
			Once()
		f.api.On("Logout", mock.Anything).Return(nil)

		loggedIn := make(chan session.Result, 1)
		go func() {
			loggedIn <- f.mgr.Login(ctx, creds)
		}()

		select {
		case <-entered:
		case <-time.After(5 * time.Second):
			t.Fatal("login request never started")
		}

		f.mgr.Logout(ctx)

		close(release)
		<-loggedIn

		// The late login response must not resurrect the session or
		// persist its token.
		state := f.mgr.Current()
		assert.Equal(t, session.StatusUnauthenticated, state.Status)
		assert.False(t, state.IsAuthenticated())
		assert.Empty(t, f.persistedToken(t))
		assert.Empty(t, f.cred.Token())
	})
}
