package rules

import (
	"github.com/erraggy/jsonschema2pojo/codemodel"
	"github.com/erraggy/jsonschema2pojo/internal/naming"
	"github.com/erraggy/jsonschema2pojo/internal/severity"
	"github.com/erraggy/jsonschema2pojo/schema"
)

// ArrayRule maps an array schema to java.util.List, or java.util.Set when
// uniqueItems is true. The item type is resolved under the singular form of
// the property name.
type ArrayRule struct {
	factory *Factory
}

// Apply implements TypeResolver.
func (r *ArrayRule) Apply(nodeName string, node *schema.Node, container codemodel.Container, ctx *Context) (*codemodel.Type, error) {
	item := codemodel.TypeObject

	items := node.Get("items")
	switch items.Kind() {
	case schema.KindObject:
		t, err := r.factory.SchemaRule().Apply(naming.Singular(nodeName), items, container, ctx)
		if err != nil {
			return nil, err
		}
		item = t.Boxed()
	case schema.KindArray:
		ctx.Report(items, severity.SeverityInfo, "items", nil, "tuple items are not supported, using Object")
	}

	if node.Get("uniqueItems").Bool() {
		return setOf(item), nil
	}
	return listOf(item), nil
}
