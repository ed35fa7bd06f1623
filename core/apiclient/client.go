package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/buildcost/buildcost-go/core/logger"
)

const defaultTimeout = 10 * time.Second

// maxErrorBody bounds how much of an error response is read for decoding.
const maxErrorBody = 64 << 10

// Config holds environment-based client configuration.
type Config struct {
	BaseURL string        `env:"BUILDCOST_API_URL" envDefault:"https://api.buildcost.app/api"`
	Timeout time.Duration `env:"BUILDCOST_API_TIMEOUT" envDefault:"10s"`
}

// Client issues requests against the BuildCost API. All service clients
// share one instance so that credential state and the unauthorized hook
// apply uniformly.
type Client struct {
	baseURL        string
	http           *http.Client
	cred           *Credential
	onUnauthorized func()
	log            *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithCredential shares an existing credential holder with the client.
// Without it the client creates its own, which only makes sense for
// unauthenticated use.
func WithCredential(cred *Credential) Option {
	return func(c *Client) {
		if cred != nil {
			c.cred = cred
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. The configured
// timeout is not applied to a replacement; the caller owns it fully.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUnauthorizedHook installs the observer fired on every unauthorized
// response, independent of which operation issued the request.
func WithUnauthorizedHook(hook func()) Option {
	return func(c *Client) {
		c.onUnauthorized = hook
	}
}

// WithLogger attaches a structured logger for request-level debug logging.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log.With(logger.Component("apiclient"))
		}
	}
}

// New creates an API client for the given base URL. The timeout bounds
// every request; an expired timeout surfaces as ErrRequestFailed exactly
// like any other transport failure.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cred:    NewCredential(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Credential returns the credential holder attached to this client.
func (c *Client) Credential() *Credential {
	return c.cred
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, "", nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
// A nil body sends an empty request, a nil out discards the response.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	reader, err := encodeBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, "application/json", reader, out)
}

// Patch issues a partial-update request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	reader, err := encodeBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, path, nil, "application/json", reader, out)
}

// Delete issues a DELETE request, discarding any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil, nil)
}

// Upload posts content as a multipart file field and decodes the response
// into out. The payload is opaque to the client; the server decides what it
// can parse.
func (c *Client) Upload(ctx context.Context, path, field, filename string, content io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	if err := mw.Close(); err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	return c.do(ctx, http.MethodPost, path, nil, mw.FormDataContentType(), &buf, out)
}

// Download issues a GET request and returns the raw response body, for
// endpoints that serve opaque bytes rather than JSON.
func (c *Client) Download(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, "", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrDecodeResponse, err)
	}
	return raw, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	req, err := c.newRequest(ctx, method, path, query, contentType, body)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.DebugContext(ctx, "api request failed",
			logger.Endpoint(method, path), logger.Error(err), logger.Elapsed(start))
		return errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "api request",
		logger.Endpoint(method, path), logger.Status(resp.StatusCode), logger.Elapsed(start),
		logger.RequestID(req.Header.Get("X-Request-ID")))

	if err := c.checkStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(ErrDecodeResponse, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.cred.Token(); token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	return req, nil
}

// checkStatus maps non-2xx responses to errors and fires the unauthorized
// hook. The hook runs for every 401 regardless of the issuing operation;
// the operation still sees ErrUnauthorized through its own failure branch.
func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	apiErr := decodeError(resp)
	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return errors.Join(ErrUnauthorized, apiErr)
	}
	return apiErr
}

func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && len(raw) > 0 {
		// An undecodable body leaves the error at status-only, which the
		// extraction ladder resolves to the per-operation fallback.
		_ = json.Unmarshal(raw, apiErr)
	}
	return apiErr
}

func encodeBody(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	return bytes.NewReader(raw), nil
}
