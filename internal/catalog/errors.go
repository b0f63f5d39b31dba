// Package catalog loads, appends to and queries a book catalog kept in a
// comma-delimited file with one record per line and no header row.
package catalog

import "errors"

var (
	// ErrDuplicateTitle is returned when a record with the same title
	// (ignoring case) is already in the catalog. Nothing is written.
	ErrDuplicateTitle = errors.New("title already in catalog")

	// ErrNotFound is returned by callers that treat a missing title as an error.
	ErrNotFound = errors.New("record not found")
)
