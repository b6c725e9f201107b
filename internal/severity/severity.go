// Package severity provides severity level constants and utilities
// for issues reported while generating classes from a schema.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error
//
// Errors that abort generation are returned as Go errors (see schemaerrors);
// an issue with SeverityError is only recorded when a caller asked for the
// run to continue, for example in strict-mode reporting.
package severity

// Severity indicates the severity level of a generation issue.
type Severity int

const (
	// SeverityInfo indicates informational messages about generation choices,
	// such as an unknown format that fell back to the base type.
	SeverityInfo Severity = iota

	// SeverityWarning indicates a schema value that was ignored or could not be
	// translated faithfully, such as an invalid default literal.
	SeverityWarning

	// SeverityError indicates a problem that makes the generated output wrong.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AtLeast reports whether s is as severe as or more severe than min.
func (s Severity) AtLeast(min Severity) bool {
	return s >= min
}
