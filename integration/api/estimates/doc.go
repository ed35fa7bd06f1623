// Package estimates is the typed client for the /estimates endpoint group:
// estimate CRUD, cost calculation, file upload, duplication, sharing and
// account statistics. Cost figures are computed server-side; this client
// only carries them.
package estimates
