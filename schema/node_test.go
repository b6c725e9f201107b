package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personJSON = `{
  "title": "Person",
  "type": "object",
  "properties": {
    "zeta": {"type": "string"},
    "alpha": {"type": "integer", "default": 3},
    "a/b": {"type": "boolean", "default": true},
    "tags": {"type": "array", "items": {"type": "string"}, "default": ["x", "y"]},
    "nothing": null
  }
}`

func mustParse(t *testing.T, uri, data string) *Document {
	t.Helper()
	doc, err := Parse(uri, []byte(data))
	require.NoError(t, err)
	return doc
}

func TestNodeKeysKeepSourceOrder(t *testing.T) {
	doc := mustParse(t, "/schemas/person.json", personJSON)
	props := doc.Root().Get("properties")

	assert.Equal(t, []string{"zeta", "alpha", "a/b", "tags", "nothing"}, props.Keys())

	fields := props.Fields()
	require.Len(t, fields, 5)
	assert.Equal(t, "zeta", fields[0].Key)
	assert.Equal(t, "/properties/zeta", fields[0].Value.Pointer())
	assert.Equal(t, "/properties/a~1b", fields[2].Value.Pointer())
}

func TestNodeKinds(t *testing.T) {
	doc := mustParse(t, "/schemas/person.json", personJSON)
	props := doc.Root().Get("properties")

	tests := []struct {
		name string
		node *Node
		want Kind
	}{
		{"object", doc.Root(), KindObject},
		{"string", props.Get("zeta").Get("type"), KindString},
		{"number", props.Get("alpha").Get("default"), KindNumber},
		{"boolean", props.Get("a/b").Get("default"), KindBool},
		{"array", props.Get("tags").Get("default"), KindArray},
		{"null", props.Get("nothing"), KindNull},
		{"absent", props.Get("missing"), KindNull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Kind())
		})
	}
}

func TestNilNodeIsAbsent(t *testing.T) {
	var n *Node
	assert.False(t, n.Has("type"))
	assert.Nil(t, n.Get("type"))
	assert.Nil(t, n.Keys())
	assert.Nil(t, n.Items())
	assert.Empty(t, n.Text())
	assert.False(t, n.Bool())
	assert.Equal(t, KindNull, n.Kind())
	assert.Empty(t, n.ID())

	v, err := n.Value()
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestNodeScalars(t *testing.T) {
	doc := mustParse(t, "/schemas/person.json", personJSON)
	props := doc.Root().Get("properties")

	assert.Equal(t, "Person", doc.Root().Get("title").Text())
	assert.True(t, props.Get("a/b").Get("default").Bool())
	assert.False(t, props.Get("zeta").Get("type").Bool(), "strings are never true")

	v, err := props.Get("tags").Get("default").Value()
	require.NoError(t, err)
	assert.Equal(t, []any{"x", "y"}, v)

	items := props.Get("tags").Get("default").Items()
	require.Len(t, items, 2)
	assert.Equal(t, "/properties/tags/default/1", items[1].Pointer())
	assert.Equal(t, "y", items[1].Text())
}

func TestNodeIdentity(t *testing.T) {
	doc := mustParse(t, "/schemas/person.json", personJSON)
	first := doc.Root().Get("properties").Get("alpha")
	second, err := doc.Lookup("/properties/alpha")
	require.NoError(t, err)

	assert.Equal(t, "/schemas/person.json#/properties/alpha", first.ID())
	assert.Equal(t, first.ID(), second.ID())
	assert.Same(t, doc, first.Document())
}

func TestNodeLocation(t *testing.T) {
	doc := mustParse(t, "a.yaml", "type: object\nproperties:\n  name:\n    type: string\n")
	name := doc.Root().Get("properties").Get("name")
	assert.Equal(t, 4, name.Line())
	assert.Equal(t, 5, name.Column())
}

func TestYAMLAliasesAreFollowed(t *testing.T) {
	doc := mustParse(t, "a.yaml", `
definitions:
  str: &str
    type: string
properties:
  name: *str
`)
	name := doc.Root().Get("properties").Get("name")
	assert.True(t, name.IsObject())
	assert.Equal(t, "string", name.Get("type").Text())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestNodeParent(t *testing.T) {
	doc := mustParse(t, "/schemas/person.json", personJSON)
	def := doc.Root().Get("properties").Get("alpha").Get("default")

	parent := def.Parent()
	require.NotNil(t, parent)
	assert.Equal(t, "/properties/alpha", parent.Pointer())
	assert.Equal(t, "integer", parent.Get("type").Text())

	assert.Nil(t, doc.Root().Parent())
	assert.Equal(t, "", doc.Root().Get("title").Parent().Pointer())
	assert.Nil(t, NewBool(true).Parent())
}

func TestNewBool(t *testing.T) {
	assert.True(t, NewBool(true).Bool())
	assert.False(t, NewBool(false).Bool())
	assert.Equal(t, KindBool, NewBool(false).Kind())
	assert.Nil(t, NewBool(true).Document())
}
