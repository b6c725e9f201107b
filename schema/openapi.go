package schema

import (
	"context"
	"net/url"
	"path/filepath"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/erraggy/jsonschema2pojo/schemaerrors"
)

// componentsPointer locates the reusable schemas of an OpenAPI 3 document.
const componentsPointer = "/components/schemas"

// Root is a schema that produces a top-level class.
type Root struct {
	// Name is the node name handed to the rules; it becomes the class name.
	Name string
	// Node is the schema itself.
	Node *Node
}

// DocumentRoot returns the single root of a plain schema document.
func DocumentRoot(doc *Document) Root {
	return Root{Name: doc.Name, Node: doc.Root()}
}

// LoadOpenAPI reads the OpenAPI 3 document at path and returns one Root per
// entry of components.schemas, in document order. The document is checked by
// kin-openapi first, so broken references are reported before generation.
func (s *Store) LoadOpenAPI(ctx context.Context, path string) ([]Root, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &schemaerrors.ParseError{Path: path, Message: "invalid path", Cause: err}
	}
	doc, err := s.Load(abs)
	if err != nil {
		return nil, err
	}
	return s.openAPIRoots(ctx, doc, doc.raw, &url.URL{Path: filepath.ToSlash(abs)})
}

// LoadOpenAPIData is LoadOpenAPI for a document already held in memory.
// The document is registered in the store under uri.
func (s *Store) LoadOpenAPIData(ctx context.Context, uri string, data []byte) ([]Root, error) {
	doc, err := Parse(uri, data)
	if err != nil {
		return nil, err
	}
	s.Add(doc)
	return s.openAPIRoots(ctx, doc, data, &url.URL{Path: filepath.ToSlash(uri)})
}

func (s *Store) openAPIRoots(ctx context.Context, doc *Document, data []byte, location *url.URL) ([]Root, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = true

	spec, err := loader.LoadFromDataWithPath(data, location)
	if err != nil {
		return nil, &schemaerrors.ParseError{Path: doc.URI, Message: "invalid OpenAPI document", Cause: err}
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, nil
	}

	schemas, err := doc.Lookup(componentsPointer)
	if err != nil {
		return nil, &schemaerrors.ParseError{Path: doc.URI, Message: "components.schemas not found", Cause: err}
	}

	roots := make([]Root, 0, len(spec.Components.Schemas))
	for _, field := range schemas.Fields() {
		if _, ok := spec.Components.Schemas[field.Key]; !ok {
			continue
		}
		roots = append(roots, Root{Name: field.Key, Node: field.Value})
	}
	return roots, nil
}
