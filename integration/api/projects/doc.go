// Package projects is the typed client for the /projects endpoint group:
// the reference catalog of project types, templates, locations with their
// pricing multipliers, material and labor prices, and catalog search.
package projects
