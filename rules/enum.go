package rules

import (
	"strconv"

	"github.com/erraggy/jsonschema2pojo/codemodel"
	"github.com/erraggy/jsonschema2pojo/internal/naming"
	"github.com/erraggy/jsonschema2pojo/internal/severity"
	"github.com/erraggy/jsonschema2pojo/schema"
	"github.com/erraggy/jsonschema2pojo/schemaerrors"
)

// EnumRule turns a schema with "enum" into an enum class. Inside a class the
// enum is nested; at the top level it is declared in the package. Each
// constant keeps its JSON value, which the emitter uses for serialization.
type EnumRule struct {
	factory *Factory
}

// Apply implements TypeResolver.
func (r *EnumRule) Apply(nodeName string, node *schema.Node, container codemodel.Container, ctx *Context) (*codemodel.Type, error) {
	values := node.Get("enum")
	if values.Kind() != schema.KindArray {
		return nil, &schemaerrors.UnsupportedError{
			Path:    values.Pointer(),
			Keyword: "enum",
			Value:   describe(values),
			Message: "enum must be an array",
		}
	}

	valueType, err := enumValueType(values)
	if err != nil {
		return nil, err
	}

	cls, err := container.NewClass(uniqueClassName(container, naming.ClassName(nodeName)), codemodel.ClassEnum)
	if err != nil {
		return nil, err
	}
	cls.ValueType = valueType
	cls.Annotate(generated())
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

	customNames := node.Get("javaEnumNames").Items()
	if len(customNames) > 0 && len(customNames) != len(values.Items()) {
		ctx.Report(node.Get("javaEnumNames"), severity.SeverityWarning, "javaEnumNames", nil,
			"javaEnumNames has %d entries for %d enum values, ignoring it", len(customNames), len(values.Items()))
		customNames = nil
	}

	used := make(map[string]bool)
	for i, v := range values.Items() {
		if v.Kind() == schema.KindNull {
			continue
		}
		name := naming.EnumConstantName(v.Text())
		if customNames != nil && customNames[i].Text() != "" {
			name = naming.Sanitize(customNames[i].Text())
		}
		name = uniqueConstant(used, name)
		used[name] = true
		if err := cls.AddEnumConstant(name, enumLiteral(v, valueType)); err != nil {
			return nil, err
		}
	}

	t := cls.Type()
	ctx.Bind(node, t)
	ctx.Logger.Debug("created enum", "enum", cls.QualifiedName(), "constants", len(cls.EnumConstants))
	return t, nil
}

// enumValueType picks the type wrapped by the constants from the values
// themselves. Null entries are ignored.
func enumValueType(values *schema.Node) (*codemodel.Type, error) {
	var kind schema.Kind = schema.KindNull
	integral := true
	for _, v := range values.Items() {
		k := v.Kind()
		switch {
		case k == schema.KindNull:
			continue
		case k == schema.KindArray || k == schema.KindObject:
			return nil, &schemaerrors.UnsupportedError{
				Path:    v.Pointer(),
				Keyword: "enum",
				Value:   describe(v),
				Message: "enum values must be scalars",
			}
		case kind != schema.KindNull && k != kind:
			return codemodel.TypeString, nil
		}
		kind = k
		if k == schema.KindNumber {
			if _, err := strconv.ParseInt(v.Text(), 10, 64); err != nil {
				integral = false
			}
		}
	}

	switch kind {
	case schema.KindBool:
		return codemodel.TypeBoolean.Boxed(), nil
	case schema.KindNumber:
		if integral {
			return codemodel.TypeInt.Boxed(), nil
		}
		return codemodel.TypeDouble.Boxed(), nil
	default:
		return codemodel.TypeString, nil
	}
}

// enumLiteral renders an enum value as a literal of the enum's value type.
func enumLiteral(v *schema.Node, valueType *codemodel.Type) codemodel.Literal {
	switch valueType.Name {
	case "Boolean":
		return codemodel.BoolLit(v.Bool())
	case "Integer":
		if n, err := strconv.ParseInt(v.Text(), 10, 64); err == nil {
			return codemodel.IntLit(n)
		}
	case "Double":
		if f, err := strconv.ParseFloat(v.Text(), 64); err == nil {
			return codemodel.DoubleLit(f)
		}
	}
	return codemodel.StringLit(v.Text())
}

func uniqueConstant(used map[string]bool, name string) string {
	if !used[name] {
		return name
	}
	for i := 1; ; i++ {
		candidate := name + "_" + strconv.Itoa(i)
		if !used[candidate] {
			return candidate
		}
	}
}
