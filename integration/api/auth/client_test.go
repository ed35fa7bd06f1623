package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildcost/buildcost-go/core/apiclient"
	"github.com/buildcost/buildcost-go/core/session"
	"github.com/buildcost/buildcost-go/integration/api/auth"
)

func newClient(t *testing.T, handler http.Handler) *auth.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := apiclient.New(apiclient.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return auth.New(api)
}

func TestClient_CurrentUser(t *testing.T) {
	t.Parallel()

	t.Run("extracts the user from the dashboard payload", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/auth/dashboard/", r.URL.Path)
			w.Write([]byte(`{"user":{"email":"u@example.com","company":"Acme"},"stats":{"total_estimates":4}}`))
		}))

		user, err := client.CurrentUser(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "u@example.com", user.Str("email"))
		assert.Equal(t, "Acme", user.Str("company"))
	})

	t.Run("propagates unauthorized", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid token"}`))
		}))

		_, err := client.CurrentUser(context.Background())
		assert.ErrorIs(t, err, apiclient.ErrUnauthorized)
	})
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	t.Run("returns user and token", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/login/", r.URL.Path)

			var body session.Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "u@example.com", body.Email)
			assert.Equal(t, "p", body.Password)

			w.Write([]byte(`{"token":"T","user":{"name":"X"}}`))
		}))

		user, token, err := client.Login(context.Background(), session.Credentials{Email: "u@example.com", Password: "p"})
		require.NoError(t, err)
		assert.Equal(t, "T", token)
		assert.Equal(t, "X", user.Str("name"))
	})
}

func TestClient_UpdateProfile(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/auth/profile/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "BuildCo", body["company"])

		w.Write([]byte(`{"name":"X","company":"BuildCo"}`))
	}))

	user, err := client.UpdateProfile(context.Background(), map[string]any{"company": "BuildCo"})
	require.NoError(t, err)
	assert.Equal(t, "BuildCo", user.Str("company"))
}

func TestClient_AuxiliaryEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("send otp posts the phone number", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/send-otp/", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "+254700000000", body["phone_number"])

			w.Write([]byte(`{"success":true,"message":"OTP sent"}`))
		}))

		env, err := client.SendOTP(context.Background(), "+254700000000")
		require.NoError(t, err)
		assert.True(t, env.Success)
		assert.Equal(t, "OTP sent", env.Message)
	})

	t.Run("verify otp posts phone and code", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/verify-otp/", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "1234", body["otp_code"])

			w.Write([]byte(`{"success":true}`))
		}))

		env, err := client.VerifyOTP(context.Background(), "+254700000000", "1234")
		require.NoError(t, err)
		assert.True(t, env.Success)
	})

	t.Run("register decodes the envelope", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/register/", r.URL.Path)
			w.Write([]byte(`{"success":true,"message":"Verify your phone","data":{"user_id":7}}`))
		}))

		env, err := client.Register(context.Background(), map[string]any{"email": "u@example.com"})
		require.NoError(t, err)
		assert.True(t, env.Success)
		assert.Equal(t, float64(7), env.Data["user_id"])
	})
}
