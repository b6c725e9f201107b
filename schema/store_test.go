package schema

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/jsonschema2pojo/schemaerrors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseInvalidDocument(t *testing.T) {
	_, err := Parse("broken.json", []byte("{\"type\": \"object\",\n  \"properties\": [}"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, schemaerrors.ErrParse))

	var perr *schemaerrors.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "broken.json", perr.Path)
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "person", BaseName("/schemas/person.json"))
	assert.Equal(t, "person.schema", BaseName("schemas/person.schema.json"))
	assert.Equal(t, "address", BaseName("address.yaml"))
}

func TestDocumentLookup(t *testing.T) {
	doc := mustParse(t, "/schemas/defs.json", `{
  "definitions": {
    "a/b": {"type": "string"},
    "t~x": {"type": "integer"},
    "list": [{"type": "boolean"}]
  }
}`)

	tests := []struct {
		pointer string
		want    string
	}{
		{"/definitions/a~1b", "string"},
		{"/definitions/t~0x", "integer"},
		{"/definitions/list/0", "boolean"},
	}
	for _, tt := range tests {
		t.Run(tt.pointer, func(t *testing.T) {
			n, err := doc.Lookup(tt.pointer)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.Get("type").Text())
		})
	}

	root, err := doc.Lookup("")
	require.NoError(t, err)
	assert.True(t, root.Has("definitions"))

	_, err = doc.Lookup("/definitions/missing")
	assert.ErrorIs(t, err, schemaerrors.ErrReference)
	_, err = doc.Lookup("/definitions/list/7")
	assert.ErrorIs(t, err, schemaerrors.ErrReference)
	_, err = doc.Lookup("anchor")
	assert.ErrorIs(t, err, schemaerrors.ErrReference)
}

func TestStoreResolve(t *testing.T) {
	dir := t.TempDir()
	personPath := writeFile(t, dir, "person.json", `{
  "type": "object",
  "definitions": {"name": {"type": "string"}},
  "properties": {
    "self": {"$ref": "#"},
    "name": {"$ref": "#/definitions/name"},
    "address": {"$ref": "common/address.json"},
    "street": {"$ref": "common/address.json#/properties/street"}
  }
}`)
	writeFile(t, dir, "common/address.json", `{
  "type": "object",
  "properties": {"street": {"type": "string"}}
}`)

	store := NewStore()
	doc, err := store.Load(personPath)
	require.NoError(t, err)
	props := doc.Root().Get("properties")

	t.Run("root fragment", func(t *testing.T) {
		n, err := store.Resolve("#", props.Get("self"))
		require.NoError(t, err)
		assert.Equal(t, doc.Root().ID(), n.ID())
	})

	t.Run("local pointer", func(t *testing.T) {
		n, err := store.Resolve("#/definitions/name", props.Get("name"))
		require.NoError(t, err)
		assert.Equal(t, "string", n.Get("type").Text())
	})

	t.Run("relative file", func(t *testing.T) {
		n, err := store.Resolve("common/address.json", props.Get("address"))
		require.NoError(t, err)
		assert.Equal(t, "address", n.Document().Name)
		assert.Equal(t, "", n.Pointer())
	})

	t.Run("relative file with pointer", func(t *testing.T) {
		n, err := store.Resolve("common/address.json#/properties/street", props.Get("street"))
		require.NoError(t, err)
		assert.Equal(t, "/properties/street", n.Pointer())
	})

	t.Run("documents are cached", func(t *testing.T) {
		assert.Equal(t, 2, store.Len())
		again, err := store.Load(filepath.Join(dir, "common", "address.json"))
		require.NoError(t, err)
		assert.Equal(t, 2, store.Len())
		assert.Equal(t, "address", again.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := store.Resolve("nope.json", props.Get("address"))
		require.Error(t, err)
		assert.ErrorIs(t, err, schemaerrors.ErrReference)
		assert.ErrorIs(t, err, schemaerrors.ErrParse)
	})

	t.Run("missing target", func(t *testing.T) {
		_, err := store.Resolve("#/definitions/nope", props.Get("name"))
		assert.ErrorIs(t, err, schemaerrors.ErrReference)
	})

	t.Run("remote references are not fetched", func(t *testing.T) {
		_, err := store.Resolve("https://example.com/a.json", props.Get("name"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unsupported reference scheme "https"`)
	})
}

func TestStoreBaseDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "outside.json", `{"type": "string"}`)
	inner := writeFile(t, dir, "inner/a.json", `{"$ref": "../outside.json"}`)

	store := NewStore(WithBaseDir(filepath.Join(dir, "inner")))
	doc, err := store.Load(inner)
	require.NoError(t, err)

	_, err = store.Resolve("../outside.json", doc.Root())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes base directory")
}

func TestStoreDeref(t *testing.T) {
	store := NewStore()
	doc := mustParse(t, "/virtual/chain.json", `{
  "definitions": {
    "a": {"$ref": "#/definitions/b"},
    "b": {"$ref": "#/definitions/c"},
    "c": {"type": "string"},
    "loop1": {"$ref": "#/definitions/loop2"},
    "loop2": {"$ref": "#/definitions/loop1"},
    "bad": {"$ref": 7}
  }
}`)
	store.Add(doc)
	defs := doc.Root().Get("definitions")

	n, err := store.Deref(defs.Get("a"))
	require.NoError(t, err)
	assert.Equal(t, "/definitions/c", n.Pointer())

	plain, err := store.Deref(defs.Get("c"))
	require.NoError(t, err)
	assert.Equal(t, defs.Get("c").ID(), plain.ID())

	_, err = store.Deref(defs.Get("loop1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular reference")

	_, err = store.Deref(defs.Get("bad"))
	assert.ErrorIs(t, err, schemaerrors.ErrReference)
}

func TestLoadOpenAPI(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "api.yaml", `openapi: 3.0.3
info:
  title: Pets
  version: "1.0"
paths: {}
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
        owner:
          $ref: '#/components/schemas/Owner'
    Owner:
      type: object
      properties:
        id:
          type: integer
`)

	store := NewStore()
	roots, err := store.LoadOpenAPI(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, "Pet", roots[0].Name)
	assert.Equal(t, "Owner", roots[1].Name)
	assert.Equal(t, "/components/schemas/Pet", roots[0].Node.Pointer())

	owner, err := store.Deref(roots[0].Node.Get("properties").Get("owner"))
	require.NoError(t, err)
	assert.Equal(t, roots[1].Node.ID(), owner.ID())
}

func TestLoadOpenAPIDataRejectsBrokenDocument(t *testing.T) {
	store := NewStore()
	_, err := store.LoadOpenAPIData(context.Background(), "/virtual/api.yaml", []byte(`openapi: 3.0.3
info: {title: x, version: "1"}
paths: {}
components:
  schemas:
    Pet:
      $ref: '#/components/schemas/Missing'
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, schemaerrors.ErrParse)
}

func TestDocumentRoot(t *testing.T) {
	doc := mustParse(t, "/schemas/person.json", personJSON)
	root := DocumentRoot(doc)
	assert.Equal(t, "person", root.Name)
	assert.Equal(t, "", root.Node.Pointer())
}

func TestStoreContains(t *testing.T) {
	store := NewStore()
	assert.False(t, store.Contains("/virtual/a.json"))

	doc, err := Parse("/virtual/a.json", []byte(`{"type": "string"}`))
	require.NoError(t, err)
	store.Add(doc)

	assert.True(t, store.Contains("/virtual/a.json"))
	assert.False(t, store.Contains("/virtual/b.json"))
}
