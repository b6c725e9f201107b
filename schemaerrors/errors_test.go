package schemaerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/person.json",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in /path/to/person.json at line 42, column 10: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrParse only", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
		if errors.Is(err, ErrReference) {
			t.Error("ParseError should not match ErrReference")
		}
	})
}

func TestReferenceError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &ReferenceError{
			Ref:     "#/definitions/missing",
			From:    "person.json#/properties/address",
			Message: "target not found",
		}
		want := "reference error: #/definitions/missing (from person.json#/properties/address): target not found"
		if err.Error() != want {
			t.Errorf("got %q, want %q", err.Error(), want)
		}
	})

	t.Run("Is and As through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("rules: resolving address: %w", &ReferenceError{Ref: "other.json"})
		if !errors.Is(wrapped, ErrReference) {
			t.Error("wrapped ReferenceError should match ErrReference")
		}
		var refErr *ReferenceError
		if !errors.As(wrapped, &refErr) {
			t.Fatal("errors.As should extract ReferenceError")
		}
		if refErr.Ref != "other.json" {
			t.Errorf("unexpected Ref: %s", refErr.Ref)
		}
	})
}

func TestNamingConflictError(t *testing.T) {
	t.Run("Error message names class, member and key", func(t *testing.T) {
		err := &NamingConflictError{Class: "Person", Member: "first_name", Key: "first-name"}
		want := `naming conflict: Person already has a member named "first_name" (property "first-name")`
		if err.Error() != want {
			t.Errorf("got %q, want %q", err.Error(), want)
		}
	})

	t.Run("Key equal to member is not repeated", func(t *testing.T) {
		err := &NamingConflictError{Class: "Person", Member: "id", Key: "id"}
		want := `naming conflict: Person already has a member named "id"`
		if err.Error() != want {
			t.Errorf("got %q, want %q", err.Error(), want)
		}
	})

	t.Run("Is matches ErrNamingConflict", func(t *testing.T) {
		var err error = &NamingConflictError{Class: "A", Member: "b"}
		if !errors.Is(err, ErrNamingConflict) {
			t.Error("NamingConflictError should match ErrNamingConflict")
		}
		if errors.Is(err, ErrUnsupported) {
			t.Error("NamingConflictError should not match ErrUnsupported")
		}
	})
}

func TestUnsupportedError(t *testing.T) {
	err := &UnsupportedError{Path: "/properties/x", Keyword: "type", Value: 42, Message: "type must be a string or an array of strings"}
	want := "unsupported schema construct type at /properties/x (value: 42): type must be a string or an array of strings"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Error("UnsupportedError should match ErrUnsupported")
	}
	if err.Unwrap() != nil {
		t.Error("Unwrap should return nil")
	}
}

func TestConfigError(t *testing.T) {
	cause := errors.New("malformed version")
	err := &ConfigError{Option: "targetVersion", Value: "abc", Message: "invalid Java source level", Cause: cause}
	want := "configuration error for targetVersion (value: abc): invalid Java source level: malformed version"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigError should match ErrConfig")
	}
	if !errors.Is(err, cause) {
		t.Error("ConfigError should unwrap to its cause")
	}
}
