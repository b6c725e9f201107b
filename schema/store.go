package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/jsonschema2pojo/schemaerrors"
)

const (
	// MaxRefDepth is the maximum length of a $ref chain followed by Deref.
	MaxRefDepth = 100

	// MaxCachedDocuments is the maximum number of documents a Store will hold.
	MaxCachedDocuments = 100

	// MaxFileSize is the maximum size (in bytes) of a schema file.
	MaxFileSize = 10 * 1024 * 1024 // 10MB
)

// Store loads schema documents and resolves $ref values between them.
// Each document is read at most once; later references reuse the cached copy.
// A Store is not safe for concurrent use.
type Store struct {
	docs    map[string]*Document
	baseDir string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithBaseDir confines file references to dir and its subdirectories.
// References that escape it fail with a ReferenceError.
func WithBaseDir(dir string) StoreOption {
	return func(s *Store) {
		if abs, err := filepath.Abs(dir); err == nil {
			s.baseDir = abs
		}
	}
}

// NewStore returns an empty Store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{docs: make(map[string]*Document)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add registers an already parsed document under its URI, replacing any
// document previously registered there.
func (s *Store) Add(doc *Document) {
	s.docs[doc.URI] = doc
}

// Contains reports whether a document is registered under uri.
func (s *Store) Contains(uri string) bool {
	_, ok := s.docs[uri]
	return ok
}

// Len returns the number of documents held by the store.
func (s *Store) Len() int {
	return len(s.docs)
}

// Load reads and parses the file at path, or returns the cached document if
// the file was loaded before.
func (s *Store) Load(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &schemaerrors.ParseError{Path: path, Message: "invalid path", Cause: err}
	}
	if doc, ok := s.docs[abs]; ok {
		return doc, nil
	}
	if len(s.docs) >= MaxCachedDocuments {
		return nil, &schemaerrors.ParseError{
			Path:    abs,
			Message: fmt.Sprintf("too many schema documents (limit %d)", MaxCachedDocuments),
		}
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, &schemaerrors.ParseError{Path: abs, Message: "failed to read file", Cause: err}
	}
	if int64(len(data)) > MaxFileSize {
		return nil, &schemaerrors.ParseError{
			Path:    abs,
			Message: fmt.Sprintf("file is %d bytes, exceeding the %d byte limit", len(data), MaxFileSize),
		}
	}

	doc, err := Parse(abs, data)
	if err != nil {
		return nil, err
	}
	s.docs[abs] = doc
	return doc, nil
}

// Resolve returns the node addressed by ref, interpreted relative to the
// document holding from. Supported forms are "#", "#/json/pointer",
// "file.json", "file.json#/json/pointer" and "file://" URIs. Relative file
// paths are resolved against the directory of the referring document.
func (s *Store) Resolve(ref string, from *Node) (*Node, error) {
	filePart, fragment, _ := strings.Cut(ref, "#")

	var doc *Document
	if filePart == "" {
		doc = from.Document()
		if doc == nil {
			return nil, &schemaerrors.ReferenceError{Ref: ref, From: from.ID(), Message: "referring node has no document"}
		}
	} else {
		path, err := s.filePath(filePart, from)
		if err != nil {
			return nil, &schemaerrors.ReferenceError{Ref: ref, From: from.ID(), Message: err.Error()}
		}
		doc, err = s.Load(path)
		if err != nil {
			return nil, &schemaerrors.ReferenceError{Ref: ref, From: from.ID(), Message: "cannot load referenced document", Cause: err}
		}
	}

	target, err := doc.Lookup(fragment)
	if err != nil {
		return nil, &schemaerrors.ReferenceError{Ref: ref, From: from.ID(), Message: "target not found", Cause: err}
	}
	return target, nil
}

// Deref follows node's $ref chain until it reaches a node without a $ref.
// A node without $ref is returned unchanged. Circular chains fail.
func (s *Store) Deref(node *Node) (*Node, error) {
	seen := make(map[string]bool)
	current := node
	for depth := 0; current.Has("$ref"); depth++ {
		if depth >= MaxRefDepth {
			return nil, &schemaerrors.ReferenceError{
				Ref:     current.Get("$ref").Text(),
				From:    current.ID(),
				Message: fmt.Sprintf("reference chain exceeds %d links", MaxRefDepth),
			}
		}
		if seen[current.ID()] {
			return nil, &schemaerrors.ReferenceError{
				Ref:     current.Get("$ref").Text(),
				From:    node.ID(),
				Message: "circular reference",
			}
		}
		seen[current.ID()] = true

		ref := current.Get("$ref")
		if ref.Kind() != KindString {
			return nil, &schemaerrors.ReferenceError{From: current.ID(), Message: "$ref must be a string"}
		}
		next, err := s.Resolve(ref.Text(), current)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// filePath turns the file part of a reference into a cleaned absolute path.
func (s *Store) filePath(ref string, from *Node) (string, error) {
	if scheme, rest, ok := strings.Cut(ref, "://"); ok {
		if scheme != "file" {
			return "", fmt.Errorf("unsupported reference scheme %q", scheme)
		}
		ref = rest
	} else if i := strings.Index(ref, ":"); i > 1 {
		// "classpath:" and similar; a single letter is a Windows drive
		return "", fmt.Errorf("unsupported reference scheme %q", ref[:i])
	}

	path := filepath.FromSlash(ref)
	if !filepath.IsAbs(path) {
		dir := "."
		if doc := from.Document(); doc != nil && filepath.IsAbs(doc.URI) {
			dir = filepath.Dir(doc.URI)
		} else if s.baseDir != "" {
			dir = s.baseDir
		}
		path = filepath.Join(dir, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	if s.baseDir != "" {
		rel, err := filepath.Rel(s.baseDir, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", fmt.Errorf("path escapes base directory %s", s.baseDir)
		}
	}
	return abs, nil
}
