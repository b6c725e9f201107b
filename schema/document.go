package schema

import (
	"path/filepath"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/jsonschema2pojo/schemaerrors"
)

// Document is one parsed schema file (JSON or YAML).
type Document struct {
	// URI identifies the document. For files it is the cleaned absolute path.
	URI string
	// Name is the base name of the document without its extension. It names
	// the class generated for the document root.
	Name string

	root *yaml.Node
	raw  []byte
}

// Parse decodes data into a Document identified by uri. JSON is a subset of
// YAML, so both syntaxes are accepted. Object key order is preserved.
func Parse(uri string, data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &schemaerrors.ParseError{
			Path:    uri,
			Line:    errorLine(err.Error()),
			Message: "invalid JSON or YAML",
			Cause:   err,
		}
	}
	return &Document{URI: uri, Name: BaseName(uri), root: &root, raw: data}, nil
}

// BaseName returns the file name of path without directory or extension.
// Example: "/schemas/person.schema.json" -> "person.schema"
func BaseName(path string) string {
	base := filepath.Base(filepath.FromSlash(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// errorLine extracts the line number from a yaml error of the form
// "yaml: line 3: ...". It returns 0 when no line is present.
func errorLine(msg string) int {
	_, rest, ok := strings.Cut(msg, "line ")
	if !ok {
		return 0
	}
	end := strings.IndexFunc(rest, func(r rune) bool { return r < '0' || r > '9' })
	if end <= 0 {
		return 0
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0
	}
	return n
}

// Root returns the top-level node of the document.
func (d *Document) Root() *Node {
	return newNode(d.root, d, "")
}

// Lookup returns the node addressed by a JSON pointer (RFC 6901). The empty
// pointer and "/" both address the root.
func (d *Document) Lookup(pointer string) (*Node, error) {
	current := d.Root()
	if pointer == "" || pointer == "/" {
		return current, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, &schemaerrors.ReferenceError{
			Ref:     "#" + pointer,
			From:    d.URI,
			Message: "fragment is not a JSON pointer",
		}
	}

	tokens := strings.Split(pointer[1:], "/")
	for i, raw := range tokens {
		token := unescapePointerToken(raw)
		var next *Node
		switch current.Kind() {
		case KindObject:
			next = current.Get(token)
		case KindArray:
			index, err := strconv.Atoi(token)
			items := current.Items()
			if err == nil && index >= 0 && index < len(items) {
				next = items[index]
			}
		}
		if next == nil {
			return nil, &schemaerrors.ReferenceError{
				Ref:     "#/" + strings.Join(tokens[:i+1], "/"),
				From:    d.URI,
				Message: "no value at " + strconv.Quote(token),
			}
		}
		current = next
	}
	return current, nil
}

// escapePointerToken escapes a key for use in a JSON pointer.
// Per RFC 6901, ~ is written as ~0 and / as ~1.
func escapePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

// unescapePointerToken reverses escapePointerToken.
func unescapePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}
