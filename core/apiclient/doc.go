// Package apiclient implements the HTTP request pipeline shared by every
// BuildCost service client: base URL resolution, a fixed client-side
// timeout, credential attachment, unauthorized-response interception, and
// decoding of the server's error payloads.
//
// # Credential attachment
//
// The current token lives in an injected Credential holder rather than in
// process-global default headers. Every client that must authenticate shares
// one Credential instance; when the session layer sets or clears the token,
// all outbound requests pick up the change:
//
//	cred := apiclient.NewCredential()
//	client, err := apiclient.New(cfg, apiclient.WithCredential(cred))
//
// Requests carry the token as "Authorization: Token <value>", matching the
// server's DRF-style token scheme.
//
// # Unauthorized interception
//
// An unauthorized response (HTTP 401) fires the hook installed with
// WithUnauthorizedHook on every affected request, independent of which
// operation issued it. The hook is where a front end wipes the persisted
// token and routes the user back to login. The calling operation still
// receives ErrUnauthorized through its own failure branch.
//
// # Error payloads
//
// Failed requests decode into APIError, which implements the message
// extraction ladder the server's clients rely on: a field-level errors map,
// then a top-level message, then a top-level error string, then the
// caller-supplied fallback.
package apiclient
