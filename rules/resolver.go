package rules

import (
	"fmt"
	"strings"

	"github.com/erraggy/jsonschema2pojo/codemodel"
	"github.com/erraggy/jsonschema2pojo/schema"
)

// SchemaRule is the default TypeResolver. It follows $ref, reuses the type
// already bound to the target schema, and otherwise hands the schema to the
// enum or type rule.
type SchemaRule struct {
	factory *Factory
}

// Apply implements TypeResolver.
func (r *SchemaRule) Apply(nodeName string, node *schema.Node, container codemodel.Container, ctx *Context) (*codemodel.Type, error) {
	target := node
	if node.Has("$ref") {
		ref := node.Get("$ref").Text()
		resolved, err := ctx.Store.Deref(node)
		if err != nil {
			return nil, err
		}
		ctx.Logger.Debug("resolved $ref", "ref", ref, "from", node.ID(), "target", resolved.ID())
		target = resolved
		nodeName = refName(ref, resolved, nodeName)
	}

	if t, ok := ctx.Binding(target); ok {
		return t, nil
	}

	var (
		t   *codemodel.Type
		err error
	)
	if target.Has("enum") {
		t, err = r.factory.EnumRule().Apply(nodeName, target, container, ctx)
	} else {
		t, err = r.factory.TypeRule().Apply(nodeName, target, container, ctx)
	}
	if err != nil {
		return nil, err
	}
	if _, ok := ctx.Binding(target); !ok {
		ctx.Bind(target, t)
	}
	return t, nil
}

// refName picks the node name for a referenced schema: the last pointer
// token of the fragment, or the referenced document's name.
// Example: "#/definitions/address" -> "address"
// Example: "common/address.json" -> "address"
func refName(ref string, target *schema.Node, fallback string) string {
	if _, fragment, ok := strings.Cut(ref, "#"); ok && strings.Trim(fragment, "/") != "" {
		tokens := strings.Split(strings.TrimRight(fragment, "/"), "/")
		last := tokens[len(tokens)-1]
		last = strings.ReplaceAll(strings.ReplaceAll(last, "~1", "/"), "~0", "~")
		if last != "" {
			return last
		}
	}
	if target.Pointer() == "" {
		if doc := target.Document(); doc != nil && doc.Name != "" {
			return doc.Name
		}
	}
	return fallback
}

// describe renders a node value for error messages.
func describe(node *schema.Node) any {
	if v, err := node.Value(); err == nil {
		return v
	}
	return fmt.Sprintf("<%s>", node.Kind())
}
