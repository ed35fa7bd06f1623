// Package session owns the client-side authentication lifecycle for the
// BuildCost API: the current user, the credential token, request
// authorization, durable token persistence, and reaction to server-signaled
// authorization failure.
//
// # State machine
//
// A session is always in one of four states:
//
//	Initializing    -> process start, restoration from the persisted token pending
//	Unauthenticated -> no valid credential
//	Authenticating  -> login request in flight
//	Authenticated   -> verified user and token present
//
// Transitions are expressed as a tagged-union Action applied by the pure
// Reduce function, so the whole machine is testable without any transport
// or UI attached. Authenticated status is never stored: State reports it as
// a pure function of user and token presence, which makes divergence between
// the flag and the fields it summarizes impossible.
//
// # Manager
//
// Manager drives the machine. It depends on three injected collaborators:
// an API (the remote auth surface), a tokenstore.Store (durable client-local
// token persistence), and an apiclient.Credential (the request-authorization
// attachment shared with every service client). Notifications go through an
// optional notify.Notifier.
//
//	cred := apiclient.NewCredential()
//	client, _ := apiclient.New(cfg, apiclient.WithCredential(cred))
//	mgr, err := session.New(auth.New(client), tokens, cred)
//
//	state := mgr.Restore(ctx) // single verification attempt per process start
//	result := mgr.Login(ctx, session.Credentials{Email: "a@b.c", Password: "pw"})
//
// # Ordering
//
// Operations are tagged with a dispatch-order sequence number. When a stale
// operation resolves after a newer one already completed, its state
// transition and storage side effects are discarded: the most recent user
// intent wins, not the last response to arrive. In-flight requests are never
// cancelled; a superseded request runs to completion and is discarded at the
// apply step.
//
// Token persistence and the in-memory token mutate under the same lock as
// the state transition that carries them, so no observable transition sees
// the two diverge.
package session
