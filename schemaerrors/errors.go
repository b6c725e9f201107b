package schemaerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a schema document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrReference indicates a $ref could not be resolved.
	ErrReference = errors.New("reference error")

	// ErrNamingConflict indicates two members of one class share a name.
	ErrNamingConflict = errors.New("naming conflict")

	// ErrUnsupported indicates a schema construct that cannot be translated.
	ErrUnsupported = errors.New("unsupported schema construct")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to read or decode a schema document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ReferenceError represents a $ref that cannot be resolved.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// From is the identity (document#pointer) of the node holding the $ref
	From string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.From != "" {
		msg += " (from " + e.From + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

// NamingConflictError represents a member name that already exists on the
// class being built, typically because two property keys sanitize to the
// same identifier (e.g. "first-name" and "first_name").
type NamingConflictError struct {
	// Class is the name of the class that already holds the member
	Class string
	// Member is the conflicting member name
	Member string
	// Key is the schema property key being materialized (may be empty)
	Key string
}

// Error returns a human-readable error message.
func (e *NamingConflictError) Error() string {
	msg := fmt.Sprintf("naming conflict: %s already has a member named %q", e.Class, e.Member)
	if e.Key != "" && e.Key != e.Member {
		msg += fmt.Sprintf(" (property %q)", e.Key)
	}
	return msg
}

// Unwrap returns nil as NamingConflictError has no underlying cause.
func (e *NamingConflictError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *NamingConflictError) Is(target error) bool {
	return target == ErrNamingConflict
}

// UnsupportedError represents a keyword or keyword combination the rules
// cannot translate.
type UnsupportedError struct {
	// Path is the JSON pointer of the offending node
	Path string
	// Keyword is the schema keyword involved
	Keyword string
	// Value is the offending value (may be nil)
	Value any
	// Message describes why the construct is unsupported
	Message string
}

// Error returns a human-readable error message.
func (e *UnsupportedError) Error() string {
	msg := "unsupported schema construct"
	if e.Keyword != "" {
		msg += " " + e.Keyword
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as UnsupportedError has no underlying cause.
func (e *UnsupportedError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
