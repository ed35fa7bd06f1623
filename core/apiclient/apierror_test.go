package apiclient_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildcost/buildcost-go/core/apiclient"
)

func TestAPIError_Reason(t *testing.T) {
	t.Parallel()

	t.Run("field errors win over message and error", func(t *testing.T) {
		t.Parallel()

		apiErr := &apiclient.APIError{
			Status:  400,
			Message: "ignored",
			Detail:  "ignored too",
			Fields:  apiclient.FieldErrors{"phone": {"invalid"}},
		}
		assert.Equal(t, "phone: invalid", apiErr.Reason("fallback"))
	})

	t.Run("field errors flatten sorted with joined messages", func(t *testing.T) {
		t.Parallel()

		apiErr := &apiclient.APIError{
			Status: 400,
			Fields: apiclient.FieldErrors{
				"phone": {"too short", "invalid prefix"},
				"email": {"already registered"},
			},
		}
		assert.Equal(t, "email: already registered\nphone: too short, invalid prefix", apiErr.Reason("fallback"))
	})

	t.Run("message comes before error string", func(t *testing.T) {
		t.Parallel()

		apiErr := &apiclient.APIError{Status: 400, Message: "bad creds", Detail: "other"}
		assert.Equal(t, "bad creds", apiErr.Reason("fallback"))
	})

	t.Run("error string comes before fallback", func(t *testing.T) {
		t.Parallel()

		apiErr := &apiclient.APIError{Status: 500, Detail: "boom"}
		assert.Equal(t, "boom", apiErr.Reason("fallback"))
	})

	t.Run("empty body yields fallback", func(t *testing.T) {
		t.Parallel()

		apiErr := &apiclient.APIError{Status: 500}
		assert.Equal(t, "Login failed", apiErr.Reason("Login failed"))
	})
}

func TestFieldErrors_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("accepts arrays and single strings", func(t *testing.T) {
		t.Parallel()

		var fields apiclient.FieldErrors
		raw := []byte(`{"phone":["invalid","too short"],"email":"already registered"}`)
		require.NoError(t, json.Unmarshal(raw, &fields))

		assert.Equal(t, []string{"invalid", "too short"}, fields["phone"])
		assert.Equal(t, []string{"already registered"}, fields["email"])
	})

	t.Run("rejects non-object payload", func(t *testing.T) {
		t.Parallel()

		var fields apiclient.FieldErrors
		assert.Error(t, json.Unmarshal([]byte(`["not","a","map"]`), &fields))
	})
}

func TestReason(t *testing.T) {
	t.Parallel()

	t.Run("extracts from wrapped APIError", func(t *testing.T) {
		t.Parallel()

		apiErr := &apiclient.APIError{Status: 401, Message: "token expired"}
		err := errors.Join(apiclient.ErrUnauthorized, apiErr)

		assert.Equal(t, "token expired", apiclient.Reason(err, "fallback"))
	})

	t.Run("transport errors yield fallback", func(t *testing.T) {
		t.Parallel()

		err := errors.Join(apiclient.ErrRequestFailed, errors.New("dial tcp: connection refused"))
		assert.Equal(t, "Login failed", apiclient.Reason(err, "Login failed"))
	})
}
