package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps field names to validation messages. The server emits
// either a single string or an array of strings per field; both forms decode.
type FieldErrors map[string][]string

func (f *FieldErrors) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(FieldErrors, len(raw))
	for field, msg := range raw {
		var list []string
		if err := json.Unmarshal(msg, &list); err == nil {
			out[field] = list
			continue
		}
		var single string
		if err := json.Unmarshal(msg, &single); err == nil {
			out[field] = []string{single}
		}
	}

	*f = out
	return nil
}

// APIError is a non-2xx response decoded into the server's error layout.
type APIError struct {
	Status  int         `json:"-"`
	Message string      `json:"message"`
	Detail  string      `json:"error"`
	Fields  FieldErrors `json:"errors"`
}

func (e *APIError) Error() string {
	if reason := e.Reason(""); reason != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, reason)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// Reason extracts a user-readable failure reason following the extraction
// ladder: field-level errors map flattened into "field: messages" lines,
// then the top-level message, then the top-level error string, then the
// caller's fallback. Fields are sorted for deterministic output.
func (e *APIError) Reason(fallback string) string {
	if len(e.Fields) > 0 {
		fields := make([]string, 0, len(e.Fields))
		for field := range e.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		lines := make([]string, 0, len(fields))
		for _, field := range fields {
			lines = append(lines, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], ", ")))
		}
		return strings.Join(lines, "\n")
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Detail != "" {
		return e.Detail
	}
	return fallback
}

// Reason extracts a user-readable reason from any error returned by the
// pipeline. Transport failures and undecodable bodies yield the fallback;
// the caller supplies a per-operation default like "Login failed".
func Reason(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Reason(fallback)
	}
	return fallback
}

// Envelope is the success-flag response body used by the auxiliary auth
// flows (registration, OTP): the request can succeed at the HTTP layer
// while the operation itself is rejected.
type Envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}
