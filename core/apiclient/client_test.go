package apiclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildcost/buildcost-go/core/apiclient"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...apiclient.Option) *apiclient.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := apiclient.New(apiclient.Config{BaseURL: srv.URL}, opts...)
	require.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires base URL", func(t *testing.T) {
		t.Parallel()

		_, err := apiclient.New(apiclient.Config{})
		assert.ErrorIs(t, err, apiclient.ErrMissingBaseURL)
	})

	t.Run("rejects unparsable base URL", func(t *testing.T) {
		t.Parallel()

		_, err := apiclient.New(apiclient.Config{BaseURL: "not-a-url"})
		assert.ErrorIs(t, err, apiclient.ErrInvalidBaseURL)
	})
}

func TestClient_AuthorizationHeader(t *testing.T) {
	t.Parallel()

	t.Run("attaches token when credential is set", func(t *testing.T) {
		t.Parallel()

		var gotAuth string
		cred := apiclient.NewCredential()
		cred.Set("tok-123")

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}), apiclient.WithCredential(cred))

		require.NoError(t, client.Get(context.Background(), "/auth/dashboard/", nil, nil))
		assert.Equal(t, "Token tok-123", gotAuth)
	})

	t.Run("sends no header when credential is empty", func(t *testing.T) {
		t.Parallel()

		var gotAuth string
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))

		require.NoError(t, client.Get(context.Background(), "/auth/dashboard/", nil, nil))
		assert.Empty(t, gotAuth)
	})

	t.Run("clearing the credential takes effect on the next request", func(t *testing.T) {
		t.Parallel()

		var headers []string
		cred := apiclient.NewCredential()
		cred.Set("tok-123")

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers = append(headers, r.Header.Get("Authorization"))
			w.Write([]byte(`{}`))
		}), apiclient.WithCredential(cred))

		ctx := context.Background()
		require.NoError(t, client.Get(ctx, "/x", nil, nil))
		cred.Clear()
		require.NoError(t, client.Get(ctx, "/x", nil, nil))

		assert.Equal(t, []string{"Token tok-123", ""}, headers)
	})
}

func TestClient_UnauthorizedHook(t *testing.T) {
	t.Parallel()

	t.Run("fires on every 401 and still returns ErrUnauthorized", func(t *testing.T) {
		t.Parallel()

		var fired atomic.Int32
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid token"}`))
		}), apiclient.WithUnauthorizedHook(func() { fired.Add(1) }))

		ctx := context.Background()
		err := client.Get(ctx, "/auth/dashboard/", nil, nil)
		require.ErrorIs(t, err, apiclient.ErrUnauthorized)

		// A second in-flight 401 fires the hook again without panicking.
		err = client.Post(ctx, "/estimates/", nil, nil)
		require.ErrorIs(t, err, apiclient.ErrUnauthorized)

		assert.Equal(t, int32(2), fired.Load())
	})

	t.Run("does not fire for other failure statuses", func(t *testing.T) {
		t.Parallel()

		var fired atomic.Int32
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"bad request"}`))
		}), apiclient.WithUnauthorizedHook(func() { fired.Add(1) }))

		err := client.Get(context.Background(), "/x", nil, nil)
		require.Error(t, err)
		assert.NotErrorIs(t, err, apiclient.ErrUnauthorized)
		assert.Zero(t, fired.Load())
	})
}

func TestClient_ErrorDecoding(t *testing.T) {
	t.Parallel()

	t.Run("decodes structured error payload", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"errors":{"phone":["invalid"]}}`))
		}))

		err := client.Post(context.Background(), "/auth/register/", map[string]any{}, nil)
		require.Error(t, err)
		assert.Equal(t, "phone: invalid", apiclient.Reason(err, "Registration failed"))
	})

	t.Run("undecodable error body falls back per operation", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("<html>gateway error</html>"))
		}))

		err := client.Get(context.Background(), "/x", nil, nil)
		require.Error(t, err)
		assert.Equal(t, "Login failed", apiclient.Reason(err, "Login failed"))
	})
}

func TestClient_Requests(t *testing.T) {
	t.Parallel()

	t.Run("get encodes query and decodes body", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "draft", r.URL.Query().Get("status"))
			w.Write([]byte(`{"count": 3}`))
		}))

		var out struct {
			Count int `json:"count"`
		}
		query := url.Values{"status": {"draft"}}
		require.NoError(t, client.Get(context.Background(), "/estimates/", query, &out))
		assert.Equal(t, 3, out.Count)
	})

	t.Run("post sends JSON body and request id", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Warehouse", body["project_name"])
			w.Write([]byte(`{}`))
		}))

		err := client.Post(context.Background(), "/estimates/", map[string]any{"project_name": "Warehouse"}, nil)
		require.NoError(t, err)
	})

	t.Run("upload sends multipart file field", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()

			content, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, "boq.xlsx", header.Filename)
			assert.Equal(t, "opaque bytes", string(content))
			w.Write([]byte(`{}`))
		}))

		err := client.Upload(context.Background(), "/estimates/upload/", "file", "boq.xlsx", strings.NewReader("opaque bytes"), nil)
		require.NoError(t, err)
	})

	t.Run("download returns raw bytes", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("%PDF-1.4 report"))
		}))

		raw, err := client.Download(context.Background(), "/reports/1/download/", nil)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 report", string(raw))
	})

	t.Run("timeout surfaces as transport failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		t.Cleanup(srv.Close)

		client, err := apiclient.New(apiclient.Config{BaseURL: srv.URL, Timeout: 20 * time.Millisecond})
		require.NoError(t, err)

		err = client.Get(context.Background(), "/slow", nil, nil)
		assert.ErrorIs(t, err, apiclient.ErrRequestFailed)
	})
}
