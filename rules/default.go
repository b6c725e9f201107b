package rules

import (
	"strconv"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/erraggy/jsonschema2pojo/codemodel"
	"github.com/erraggy/jsonschema2pojo/internal/severity"
	"github.com/erraggy/jsonschema2pojo/schema"
)

// DefaultRule turns a property's "default" value into the initializer of its
// field. It is applied to every property; an absent or null default leaves
// the field alone. A value that cannot initialize the field's type is
// reported as a warning and ignored.
type DefaultRule struct {
	factory *Factory
}

// Apply implements Rule. node is the value of "default" and may be nil.
func (r *DefaultRule) Apply(_ string, node *schema.Node, field *codemodel.Field, ctx *Context) (*codemodel.Field, error) {
	if node == nil || node.Kind() == schema.KindNull {
		return field, nil
	}

	init, ok := r.initializer(node, field.Type, ctx)
	if !ok {
		sev := severity.SeverityWarning
		if field.Type.Kind == codemodel.TypeDefined && !field.Type.IsEnum() {
			sev = severity.SeverityInfo
		}
		ctx.Report(node, sev, "default", describe(node),
			"default value cannot initialize field %s of type %s, ignoring it", field.Name, field.Type.String())
		return field, nil
	}
	field.Init = init
	return field, nil
}

func (r *DefaultRule) initializer(node *schema.Node, t *codemodel.Type, ctx *Context) (codemodel.Expr, bool) {
	switch {
	case t.IsEnum():
		return enumDefault(node, t)
	case sameType(t, listOf(nil)), sameType(t, setOf(nil)):
		return r.collectionDefault(node, t, ctx)
	case sameType(t, dateType):
		return dateDefault(node)
	case sameType(t, uriType):
		if node.Kind() != schema.KindString || !strfmt.Default.Validates("uri", node.Text()) {
			return nil, false
		}
		return codemodel.Invoke{Static: uriType, Method: "create", Args: []codemodel.Expr{codemodel.StringLit(node.Text())}}, true
	case sameType(t, uuidType):
		if node.Kind() != schema.KindString || !strfmt.IsUUID(node.Text()) {
			return nil, false
		}
		return codemodel.Invoke{Static: uuidType, Method: "fromString", Args: []codemodel.Expr{codemodel.StringLit(node.Text())}}, true
	case sameType(t, patternType):
		if node.Kind() != schema.KindString {
			return nil, false
		}
		return codemodel.Invoke{Static: patternType, Method: "compile", Args: []codemodel.Expr{codemodel.StringLit(node.Text())}}, true
	}

	if sameType(t, codemodel.TypeString) && node.Kind() == schema.KindString {
		if format := node.Parent().Get("format").Text(); format != "" && strfmt.Default.ContainsName(format) &&
			!strfmt.Default.Validates(format, node.Text()) {
			return nil, false
		}
	}
	return scalarLiteral(node, t)
}

// collectionDefault renders new ArrayList<>(Arrays.asList(...)) or the
// HashSet equivalent. The diamond form is used when the source level allows.
func (r *DefaultRule) collectionDefault(node *schema.Node, t *codemodel.Type, ctx *Context) (codemodel.Expr, bool) {
	if node.Kind() != schema.KindArray || len(t.Args) != 1 {
		return nil, false
	}
	item := t.Args[0]

	impl := "ArrayList"
	if t.Name == "Set" {
		impl = "HashSet"
	}
	construct := codemodel.New{
		Type:    codemodel.Generic("java.util", impl, item),
		Diamond: ctx.Config.SupportsDiamond(),
	}

	items := node.Items()
	if len(items) == 0 {
		return construct, true
	}
	args := make([]codemodel.Expr, 0, len(items))
	for _, n := range items {
		e, ok := r.initializer(n, item, ctx)
		if !ok {
			return nil, false
		}
		args = append(args, e)
	}
	construct.Args = []codemodel.Expr{codemodel.Invoke{Static: arraysType, Method: "asList", Args: args}}
	return construct, true
}

// enumDefault renders Enum.fromValue(value) for a value the enum declares.
func enumDefault(node *schema.Node, t *codemodel.Type) (codemodel.Expr, bool) {
	if node.Kind() == schema.KindArray || node.Kind() == schema.KindObject {
		return nil, false
	}
	lit := enumLiteral(node, t.Class.ValueType)
	for _, c := range t.Class.EnumConstants {
		if v, ok := c.Value.(codemodel.Literal); ok && v.Text == lit.Text {
			return codemodel.Invoke{Static: t, Method: "fromValue", Args: []codemodel.Expr{lit}}, true
		}
	}
	return nil, false
}

// dateDefault renders new Date(millis) from an RFC 3339 date-time or a
// number of milliseconds since the epoch.
func dateDefault(node *schema.Node) (codemodel.Expr, bool) {
	var millis int64
	switch node.Kind() {
	case schema.KindNumber:
		n, err := strconv.ParseInt(node.Text(), 10, 64)
		if err != nil {
			return nil, false
		}
		millis = n
	case schema.KindString:
		dt, err := strfmt.ParseDateTime(node.Text())
		if err != nil {
			return nil, false
		}
		millis = time.Time(dt).UnixMilli()
	default:
		return nil, false
	}
	return codemodel.New{Type: dateType, Args: []codemodel.Expr{codemodel.LongLit(millis)}}, true
}

// scalarLiteral renders node as a literal assignable to t.
func scalarLiteral(node *schema.Node, t *codemodel.Type) (codemodel.Expr, bool) {
	kind := node.Kind()
	if kind == schema.KindArray || kind == schema.KindObject {
		return nil, false
	}
	text := node.Text()

	switch t.Unboxed().QualifiedName() {
	case "java.lang.String":
		return codemodel.StringLit(text), true
	case "boolean":
		b, err := strconv.ParseBool(text)
		if err != nil || kind == schema.KindNumber {
			return nil, false
		}
		return codemodel.BoolLit(b), true
	case "int":
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, false
		}
		return codemodel.IntLit(n), true
	case "long":
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, false
		}
		return codemodel.LongLit(n), true
	case "double":
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, false
		}
		return codemodel.DoubleLit(f), true
	case "float":
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, false
		}
		return codemodel.FloatLit(f), true
	case "java.lang.Object":
		switch kind {
		case schema.KindBool:
			return codemodel.BoolLit(node.Bool()), true
		case schema.KindNumber:
			if n, err := strconv.ParseInt(text, 10, 32); err == nil {
				return codemodel.IntLit(n), true
			}
			if f, err := strconv.ParseFloat(text, 64); err == nil {
				return codemodel.DoubleLit(f), true
			}
			return nil, false
		default:
			return codemodel.StringLit(text), true
		}
	}
	return nil, false
}
