// Package carve divides rectangular terminal areas into rows and
// columns.
//
// Users import this single package for the complete public API:
// sizing constraints, justification policies, the split operations,
// and the layout cache.
package carve
