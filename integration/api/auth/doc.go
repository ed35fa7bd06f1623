// Package auth is the typed client for the /auth endpoint group. It
// implements session.API, making it the production collaborator behind the
// session manager, and additionally exposes the profile read and the
// simple-register diagnostic endpoint the session layer does not need.
package auth
