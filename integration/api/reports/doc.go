// Package reports is the typed client for the /reports endpoint group:
// listing and generating reports over saved estimates, downloading the
// rendered document as opaque bytes, and share links.
package reports
