package rules

import (
	"strconv"

	"github.com/erraggy/jsonschema2pojo/codemodel"
	"github.com/erraggy/jsonschema2pojo/internal/naming"
	"github.com/erraggy/jsonschema2pojo/internal/severity"
	"github.com/erraggy/jsonschema2pojo/schema"
	"github.com/erraggy/jsonschema2pojo/schemaerrors"
)

// ObjectRule turns an object schema into a top-level class of the
// container's package and materializes its properties.
type ObjectRule struct {
	factory *Factory
}

// Apply implements TypeResolver.
func (r *ObjectRule) Apply(nodeName string, node *schema.Node, container codemodel.Container, ctx *Context) (*codemodel.Type, error) {
	pkg := ctx.Model.Package(container.PackageName())
	cls, err := pkg.NewClass(uniqueClassName(pkg, naming.ClassName(nodeName)), codemodel.ClassClass)
	if err != nil {
		return nil, err
	}
	cls.Annotate(generated())

	// Bound before the properties are walked so a schema that refers to
	// itself resolves to the class being built.
	t := cls.Type()
	ctx.Bind(node, t)
	ctx.Logger.Debug("created class", "class", cls.QualifiedName(), "node", node.ID())

	if node.Has("title") {
		if _, err := r.factory.TitleRule().Apply(nodeName, node.Get("title"), cls, ctx); err != nil {
			return nil, err
		}
	}
	if node.Has("description") {
		if _, err := r.factory.DescriptionRule().Apply(nodeName, node.Get("description"), cls, ctx); err != nil {
			return nil, err
		}
	}

	if _, err := r.factory.PropertiesRule().Apply(nodeName, node, cls, ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// uniqueClassName returns name, or name followed by the smallest number
// that makes it unused in c.
func uniqueClassName(c codemodel.Container, name string) string {
	if !c.HasClass(name) {
		return name
	}
	for i := 1; ; i++ {
		candidate := name + strconv.Itoa(i)
		if !c.HasClass(candidate) {
			return candidate
		}
	}
}

// PropertiesRule materializes every entry of an object schema's
// "properties", in document order, then applies the draft-04 "required"
// array to the generated members.
type PropertiesRule struct {
	factory *Factory
}

// Apply implements Rule. node is the object schema, not its properties.
func (r *PropertiesRule) Apply(nodeName string, node *schema.Node, class *codemodel.Class, ctx *Context) (*codemodel.Class, error) {
	properties := node.Get("properties")
	if properties != nil && properties.Kind() != schema.KindObject {
		return nil, &schemaerrors.UnsupportedError{
			Path:    properties.Pointer(),
			Keyword: "properties",
			Value:   describe(properties),
			Message: "properties must be an object",
		}
	}

	for _, p := range properties.Fields() {
		if _, err := r.factory.PropertyRule().Apply(p.Key, p.Value, class, ctx); err != nil {
			return nil, err
		}
	}

	required := node.Get("required")
	if required.Kind() != schema.KindArray {
		return class, nil
	}
	for _, item := range required.Items() {
		key := item.Text()
		if item.Kind() != schema.KindString || !properties.Has(key) {
			ctx.Report(item, severity.SeverityWarning, "required", describe(item),
				"required property %v is not declared in properties", describe(item))
			continue
		}
		for _, m := range accessors(class, key) {
			if _, err := r.factory.RequiredRule().Apply(key, schema.NewBool(true), m, ctx); err != nil {
				return nil, err
			}
		}
	}
	return class, nil
}
