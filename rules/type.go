package rules

import (
	"strings"

	"github.com/erraggy/jsonschema2pojo/codemodel"
	"github.com/erraggy/jsonschema2pojo/internal/severity"
	"github.com/erraggy/jsonschema2pojo/schema"
	"github.com/erraggy/jsonschema2pojo/schemaerrors"
)

// TypeRule maps the "type" keyword to a type. Objects and arrays are
// delegated to their rules; strings and numbers are refined by "format".
type TypeRule struct {
	factory *Factory
}

// Apply implements TypeResolver.
func (r *TypeRule) Apply(nodeName string, node *schema.Node, container codemodel.Container, ctx *Context) (*codemodel.Type, error) {
	if node.Has("javaType") {
		return javaType(node)
	}

	typeName, err := schemaType(node)
	if err != nil {
		return nil, err
	}

	cfg := ctx.Config
	var t *codemodel.Type
	switch typeName {
	case "object":
		return r.factory.ObjectRule().Apply(nodeName, node, container, ctx)
	case "array":
		return r.factory.ArrayRule().Apply(nodeName, node, container, ctx)
	case "string":
		t = codemodel.TypeString
	case "integer":
		t = codemodel.TypeInt
		if cfg.UseLongIntegers {
			t = codemodel.TypeLong
		}
	case "number":
		t = codemodel.TypeDouble
		if !cfg.UseDoubleNumbers {
			t = codemodel.Primitive("float")
		}
	case "boolean":
		t = codemodel.TypeBoolean
	case "any", "null":
		return codemodel.TypeObject, nil
	default:
		return nil, &schemaerrors.UnsupportedError{
			Path:    node.Pointer(),
			Keyword: "type",
			Value:   typeName,
			Message: "unknown type name",
		}
	}

	if !cfg.UsePrimitives {
		t = t.Boxed()
	}
	if node.Has("format") {
		return r.factory.FormatRule().Apply(nodeName, node.Get("format"), t, ctx)
	}
	return t, nil
}

// schemaType returns the effective type name of node. A list of types picks
// the first entry that is not "null". Without a type, a schema with
// properties is an object, one with items an array, and anything else "any".
func schemaType(node *schema.Node) (string, error) {
	typeNode := node.Get("type")
	switch typeNode.Kind() {
	case schema.KindString:
		return typeNode.Text(), nil
	case schema.KindArray:
		name := "null"
		for _, item := range typeNode.Items() {
			if item.Kind() != schema.KindString {
				return "", &schemaerrors.UnsupportedError{
					Path:    typeNode.Pointer(),
					Keyword: "type",
					Value:   describe(typeNode),
					Message: "type arrays may only contain type names",
				}
			}
			if name == "null" && item.Text() != "null" {
				name = item.Text()
			}
		}
		return name, nil
	case schema.KindNull:
		if typeNode != nil {
			break
		}
		switch {
		case node.Has("properties"):
			return "object", nil
		case node.Has("items"):
			return "array", nil
		}
		return "any", nil
	}
	return "", &schemaerrors.UnsupportedError{
		Path:    node.Pointer(),
		Keyword: "type",
		Value:   describe(typeNode),
		Message: "type must be a string or an array of strings",
	}
}

// javaType maps the "javaType" extension, a fully qualified class name, to a
// reference type.
func javaType(node *schema.Node) (*codemodel.Type, error) {
	name := node.Get("javaType").Text()
	if name == "" || strings.ContainsAny(name, "<>[] ") {
		return nil, &schemaerrors.UnsupportedError{
			Path:    node.Get("javaType").Pointer(),
			Keyword: "javaType",
			Value:   describe(node.Get("javaType")),
			Message: "must be a fully qualified, non-generic class name",
		}
	}
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return codemodel.Ref(name[:i], name[i+1:]), nil
	}
	if prim := codemodel.Primitive(name); prim.Boxed() != prim {
		return prim, nil
	}
	return codemodel.Ref("", name), nil
}

// FormatRule refines a base type by the "format" keyword. Formats that have
// a dedicated library type replace the base type; the rest keep it.
type FormatRule struct {
	factory *Factory
}

// stringFormats are well-known formats kept as plain strings.
var stringFormats = map[string]bool{
	"date":          true,
	"time":          true,
	"email":         true,
	"hostname":      true,
	"host-name":     true,
	"ipv4":          true,
	"ip-address":    true,
	"ipv6":          true,
	"phone":         true,
	"color":         true,
	"style":         true,
	"uri-reference": true,
	"byte":          true,
	"binary":        true,
	"password":      true,
}

// Apply implements Rule. node is the value of the "format" keyword.
func (r *FormatRule) Apply(_ string, node *schema.Node, base *codemodel.Type, ctx *Context) (*codemodel.Type, error) {
	primitive := base.IsPrimitive()
	pick := func(prim *codemodel.Type) *codemodel.Type {
		if primitive {
			return prim
		}
		return prim.Boxed()
	}

	format := node.Text()
	switch format {
	case "date-time":
		return dateType, nil
	case "uri":
		return uriType, nil
	case "regex":
		return patternType, nil
	case "uuid":
		return uuidType, nil
	case "utc-millisec", "int64":
		return pick(codemodel.TypeLong), nil
	case "int32":
		return pick(codemodel.TypeInt), nil
	case "double":
		return pick(codemodel.TypeDouble), nil
	case "float":
		return pick(codemodel.Primitive("float")), nil
	}
	if !stringFormats[format] {
		ctx.Report(node, severity.SeverityInfo, "format", format, "unknown format %q, keeping %s", format, base.String())
	}
	return base, nil
}
