package rules

import (
	"fmt"

	"github.com/erraggy/jsonschema2pojo/codemodel"
	"github.com/erraggy/jsonschema2pojo/internal/naming"
	"github.com/erraggy/jsonschema2pojo/schema"
)

// PropertyRule turns one schema property into a private field with a
// getter, a setter and, when builders are enabled, a fluent with-method.
//
// The member name is the sanitized property key; the key itself is kept as
// the wire name in @JsonProperty on the field and both accessors. The
// title, description, optional and required keywords decorate all three
// members when present. The default keyword becomes the field initializer.
type PropertyRule struct {
	factory *Factory
}

// decoratingKeywords are applied to field, getter and setter, in this order.
var decoratingKeywords = []string{"title", "description", "optional", "required"}

// Apply adds the property nodeName, described by node, to class and returns class.
func (r *PropertyRule) Apply(nodeName string, node *schema.Node, class *codemodel.Class, ctx *Context) (*codemodel.Class, error) {
	name := naming.Sanitize(nodeName)

	typ, err := r.factory.SchemaRule().Apply(nodeName, node, class, ctx)
	if err != nil {
		return nil, fmt.Errorf("property %q of %s: %w", nodeName, class.Name, err)
	}

	field, err := class.NewField(name, typ, nodeName)
	if err != nil {
		return nil, err
	}
	field.Annotate(jsonProperty(nodeName))
	if ctx.Config.IncludeJSR303Annotations && needsCascade(typ) {
		field.Annotate(codemodel.Annotation{Type: validType})
	}

	getter, err := class.NewMethod(naming.GetterName(name, typ.IsBooleanPrimitive()), typ, nodeName)
	if err != nil {
		return nil, err
	}
	getter.Annotate(jsonProperty(nodeName))
	getter.Add(codemodel.Return{Value: codemodel.ThisField(name)})

	setter, err := class.NewMethod(naming.SetterName(name), nil, nodeName, codemodel.Param{Name: name, Type: typ})
	if err != nil {
		return nil, err
	}
	setter.Annotate(jsonProperty(nodeName))
	setter.Add(codemodel.Assign{Target: codemodel.ThisField(name), Value: codemodel.ParamRef{Name: name}})

	if ctx.Config.GenerateBuilders {
		builder, err := class.NewMethod(naming.BuilderName(name), class.Type(), nodeName, codemodel.Param{Name: name, Type: typ})
		if err != nil {
			return nil, err
		}
		builder.Add(
			codemodel.Assign{Target: codemodel.ThisField(name), Value: codemodel.ParamRef{Name: name}},
			codemodel.Return{Value: codemodel.This{}},
		)
	}

	members := []codemodel.Member{field, getter, setter}
	for _, keyword := range decoratingKeywords {
		if !node.Has(keyword) {
			continue
		}
		decorator := r.decorator(keyword)
		for _, m := range members {
			if _, err := decorator.Apply(nodeName, node.Get(keyword), m, ctx); err != nil {
				return nil, fmt.Errorf("property %q of %s: %s: %w", nodeName, class.Name, keyword, err)
			}
		}
	}

	if _, err := r.factory.DefaultRule().Apply(nodeName, node.Get("default"), field, ctx); err != nil {
		return nil, fmt.Errorf("property %q of %s: default: %w", nodeName, class.Name, err)
	}

	ctx.Logger.Debug("added property", "class", class.Name, "property", nodeName, "field", name, "type", typ.String())
	return class, nil
}

func (r *PropertyRule) decorator(keyword string) Decorator {
	switch keyword {
	case "title":
		return r.factory.TitleRule()
	case "description":
		return r.factory.DescriptionRule()
	case "optional":
		return r.factory.OptionalRule()
	case "required":
		return r.factory.RequiredRule()
	default:
		panic(fmt.Sprintf("rules: no decorator for keyword %q", keyword))
	}
}

// needsCascade reports whether values of t are generated classes (or
// collections of them) whose own constraints should be validated.
func needsCascade(t *codemodel.Type) bool {
	if t.Kind == codemodel.TypeDefined {
		return !t.IsEnum()
	}
	for _, arg := range t.Args {
		if needsCascade(arg) {
			return true
		}
	}
	return false
}

// accessors returns the field, getter and setter generated for propertyKey,
// skipping any that do not exist.
func accessors(class *codemodel.Class, propertyKey string) []codemodel.Member {
	name := naming.Sanitize(propertyKey)
	field := class.Field(name)
	if field == nil {
		return nil
	}
	members := []codemodel.Member{field}
	if getter := class.Method(naming.GetterName(name, field.Type.IsBooleanPrimitive())); getter != nil {
		members = append(members, getter)
	}
	if setter := class.Method(naming.SetterName(name)); setter != nil {
		members = append(members, setter)
	}
	return members
}
