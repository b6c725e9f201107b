// Package issues provides the issue type recorded for non-fatal generation problems.
package issues

import (
	"fmt"

	"github.com/erraggy/jsonschema2pojo/internal/severity"
)

// Issue represents a single non-fatal problem found while generating classes.
type Issue struct {
	// Path is the JSON pointer of the schema node involved (e.g., "/properties/created")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Keyword is the schema keyword the issue relates to (optional)
	Keyword string
	// Value is the problematic value (optional)
	Value any
	// Line is the 1-based line number in the source file (0 if unknown)
	Line int
	// Column is the 1-based column number in the source file (0 if unknown)
	Column int
	// File is the source document the node came from
	File string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	path := i.Path
	if i.Keyword != "" {
		path = fmt.Sprintf("%s [%s]", path, i.Keyword)
	}

	if i.Line > 0 {
		return fmt.Sprintf("%s %s (line %d, col %d): %s", symbol, path, i.Line, i.Column, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, path, i.Message)
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line:column" if file is set, "line:column" if only line is set,
// or the JSON pointer if location is unknown.
func (i Issue) Location() string {
	if i.Line == 0 {
		return i.Path
	}
	if i.File != "" {
		return fmt.Sprintf("%s:%d:%d", i.File, i.Line, i.Column)
	}
	return fmt.Sprintf("%d:%d", i.Line, i.Column)
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}

// Count returns the number of issues at each severity level.
func Count(list []Issue) (info, warnings, errors int) {
	for _, issue := range list {
		switch issue.Severity {
		case severity.SeverityInfo:
			info++
		case severity.SeverityWarning:
			warnings++
		case severity.SeverityError:
			errors++
		}
	}
	return info, warnings, errors
}
