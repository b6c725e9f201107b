package rules

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erraggy/jsonschema2pojo/codemodel"
	"github.com/erraggy/jsonschema2pojo/config"
	"github.com/erraggy/jsonschema2pojo/schema"
)

// session bundles everything a rule test needs.
type session struct {
	factory *Factory
	ctx     *Context
	store   *schema.Store
	model   *codemodel.Model
	pkg     *codemodel.Package
}

func newSession(t *testing.T, cfg config.GenerationConfig, opts ...FactoryOption) *session {
	t.Helper()
	require.NoError(t, cfg.Validate())
	f := NewFactory(cfg, opts...)
	store := schema.NewStore()
	model := codemodel.NewModel()
	return &session{
		factory: f,
		ctx:     f.NewContext(store, model, nil),
		store:   store,
		model:   model,
		pkg:     model.Package(cfg.TargetPackage),
	}
}

// parse registers an in-memory document in the session store.
func (s *session) parse(t *testing.T, uri, data string) *schema.Document {
	t.Helper()
	doc, err := schema.Parse(uri, []byte(data))
	require.NoError(t, err)
	s.store.Add(doc)
	return doc
}

// generate resolves the root of an in-memory document and returns the
// class it produced.
func (s *session) generate(t *testing.T, name, data string) *codemodel.Class {
	t.Helper()
	doc := s.parse(t, "/virtual/"+name+".json", data)
	typ, err := s.factory.SchemaRule().Apply(name, doc.Root(), s.pkg, s.ctx)
	require.NoError(t, err)
	require.NotNil(t, typ.Class, "schema did not produce a class")
	return typ.Class
}

func newClass(t *testing.T, s *session, name string) *codemodel.Class {
	t.Helper()
	c, err := s.pkg.NewClass(name, codemodel.ClassClass)
	require.NoError(t, err)
	return c
}

func fieldNames(c *codemodel.Class) []string {
	names := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		names = append(names, f.Name)
	}
	return names
}

func methodNames(c *codemodel.Class) []string {
	names := make([]string, 0, len(c.Methods))
	for _, m := range c.Methods {
		names = append(names, m.Name)
	}
	return names
}

var nodeDocs atomic.Int64

// node parses data as its own document so bindings never leak between
// nodes of one session.
func node(t *testing.T, data string) *schema.Node {
	t.Helper()
	uri := fmt.Sprintf("/virtual/node-%d.json", nodeDocs.Add(1))
	doc, err := schema.Parse(uri, []byte(data))
	require.NoError(t, err)
	return doc.Root()
}
