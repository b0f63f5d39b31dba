package catalog

import (
	"fmt"
	"log/slog"
)

// WarningKind classifies a problem found while loading a catalog file
type WarningKind string

const (
	FileNotFound      WarningKind = "file_not_found"
	IncompleteRow     WarningKind = "incomplete_row"
	InvalidValue      WarningKind = "invalid_value"
	UnexpectedFailure WarningKind = "unexpected_failure"
)

// Warning is a single non-fatal load problem. Line is 0 when the warning
// concerns the whole file.
type Warning struct {
	Kind    WarningKind
	Line    int
	Message string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return w.Message
}

// LoadReport collects the warnings produced by a single Load
type LoadReport struct {
	Path     string
	Rows     int
	Loaded   int
	Warnings []Warning
}

// Count returns how many warnings of the given kind were recorded
func (r *LoadReport) Count(kind WarningKind) int {
	n := 0
	for _, w := range r.Warnings {
		if w.Kind == kind {
			n++
		}
	}
	return n
}

// Skipped returns the number of rows dropped during the load
func (r *LoadReport) Skipped() int {
	return r.Count(IncompleteRow) + r.Count(InvalidValue)
}

// warn records a warning and logs it right away
func (r *LoadReport) warn(logger *slog.Logger, kind WarningKind, line int, msg string) {
	w := Warning{Kind: kind, Line: line, Message: msg}
	r.Warnings = append(r.Warnings, w)
	logger.Warn("Catalog load warning", "kind", w.Kind, "line", w.Line, "path", r.Path, "msg", w.Message)
}
