package generator

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/tools/imports"

	"github.com/erraggy/jsonschema2pojo/codemodel"
	"github.com/erraggy/jsonschema2pojo/internal/naming"
	"github.com/erraggy/jsonschema2pojo/rules"
)

// defaultGoPackage names the Go package when no target package is set.
const defaultGoPackage = "model"

// goEmitter writes one .go file per top-level class. Nested classes become
// separate types named after their enclosing class, e.g. PersonStatus.
type goEmitter struct{}

// goFile is the data handed to the go.file template.
type goFile struct {
	Package string
	Enums   []goEnum
	Structs []goStruct
}

type goEnum struct {
	Name      string
	Base      string
	Doc       []string
	Constants []goConst
}

type goConst struct {
	Name  string
	Value string
}

type goStruct struct {
	Name     string
	Receiver string
	Doc      []string
	Fields   []goField
	Defaults []goDefault
}

type goField struct {
	Name    string
	Type    string
	Tag     string
	Wire    string
	Doc     []string
	Builder bool
}

type goDefault struct {
	Field string
	Value string
}

func (goEmitter) emit(cls *codemodel.Class) (GeneratedFile, error) {
	data := goFile{Package: goPackageName(cls.PackageName())}
	collectGoTypes(cls, &data)

	out, err := executeTemplate("go.file", data, memberCount(cls))
	if err != nil {
		return GeneratedFile{}, err
	}
	name := filePath(cls.PackageName(), toSnake(cls.Name)+".go")

	// Format the output and fix imports using goimports-equivalent processing
	formatted, err := imports.Process(name, out, nil)
	if err != nil {
		// If formatting fails, return unformatted but don't fail the generation
		// nolint:nilerr // intentional: formatting is optional, unformatted code is acceptable
		formatted = out
	}
	return GeneratedFile{Name: name, Class: cls.QualifiedName(), Content: formatted}, nil
}

// goPackageName returns the last segment of a dotted package, lowercased.
func goPackageName(pkg string) string {
	if pkg == "" {
		return defaultGoPackage
	}
	if i := strings.LastIndexByte(pkg, '.'); i >= 0 {
		pkg = pkg[i+1:]
	}
	return strings.ToLower(pkg)
}

// collectGoTypes adds cls and its nested classes to f.
func collectGoTypes(cls *codemodel.Class, f *goFile) {
	if cls.Kind == codemodel.ClassEnum {
		f.Enums = append(f.Enums, goEnumOf(cls))
	} else {
		f.Structs = append(f.Structs, goStructOf(cls))
	}
	for _, nested := range cls.Nested {
		collectGoTypes(nested, f)
	}
}

func goEnumOf(cls *codemodel.Class) goEnum {
	name := goTypeName(cls)
	e := goEnum{Name: name, Base: goBaseType(cls.ValueType), Doc: goDoc(cls.Javadoc)}
	used := make(map[string]bool)
	for _, c := range cls.EnumConstants {
		e.Constants = append(e.Constants, goConst{
			Name:  unique(used, goConstName(name, c.Name)),
			Value: goLiteral(c.Value),
		})
	}
	return e
}

func goStructOf(cls *codemodel.Class) goStruct {
	name := goTypeName(cls)
	s := goStruct{Name: name, Receiver: receiverName(name), Doc: goDoc(cls.Javadoc)}
	used := make(map[string]bool)
	for _, f := range cls.Fields {
		field := goField{
			Name:    unique(used, goFieldName(f.Name)),
			Type:    goType(f.Type),
			Wire:    wireName(f),
			Doc:     goDoc(f.Javadoc),
			Builder: cls.Method(naming.BuilderName(f.Name)) != nil,
		}
		field.Tag = jsonTag(field.Wire, !isRequired(f))
		s.Fields = append(s.Fields, field)
		if v, ok := goDefaultValue(f); ok {
			s.Defaults = append(s.Defaults, goDefault{Field: field.Name, Value: v})
		}
	}
	return s
}

// goTypeName flattens a nested class name: Person.Status -> PersonStatus.
func goTypeName(cls *codemodel.Class) string {
	return strings.ReplaceAll(cls.NestedName(), ".", "")
}

func receiverName(typeName string) string {
	return strings.ToLower(typeName[:1])
}

// goFieldName exports a member name, prefixing it when it does not start
// with a letter.
func goFieldName(name string) string {
	if name == "" || !unicode.IsLetter(rune(name[0])) {
		return "X" + name
	}
	return naming.Capitalize(name)
}

// goConstName joins the enum type name with the words of a constant name:
// IN_PROGRESS of Status -> StatusInProgress.
func goConstName(typeName, constant string) string {
	var b strings.Builder
	b.WriteString(typeName)
	for _, word := range strings.FieldsFunc(strings.ToLower(constant), func(r rune) bool { return r == '_' }) {
		b.WriteString(naming.Capitalize(word))
	}
	if b.Len() == len(typeName) {
		b.WriteString("Empty")
	}
	return b.String()
}

func unique(used map[string]bool, name string) string {
	candidate := name
	for i := 1; used[candidate]; i++ {
		candidate = name + strconv.Itoa(i)
	}
	used[candidate] = true
	return candidate
}

// goType maps a class-model type onto a Go type. Boxed scalars become
// pointers so an absent value stays distinguishable from the zero value.
func goType(t *codemodel.Type) string {
	if t == nil {
		return ""
	}
	if t.Class != nil {
		if t.Class.Kind == codemodel.ClassEnum {
			return goTypeName(t.Class)
		}
		return "*" + goTypeName(t.Class)
	}
	if t.IsPrimitive() {
		return goPrimitive(t.Name)
	}
	switch t.QualifiedName() {
	case "java.lang.String", "java.net.URI", "java.util.UUID", "java.util.regex.Pattern":
		return "string"
	case "java.lang.Object":
		return "any"
	case "java.util.Date":
		return "time.Time"
	case "java.util.List", "java.util.Set":
		if len(t.Args) == 1 {
			return "[]" + goType(t.Args[0])
		}
		return "[]any"
	}
	if unboxed := t.Unboxed(); unboxed.IsPrimitive() {
		return "*" + goPrimitive(unboxed.Name)
	}
	return "any"
}

func goPrimitive(name string) string {
	switch name {
	case "boolean":
		return "bool"
	case "byte":
		return "byte"
	case "char":
		return "rune"
	case "short":
		return "int16"
	case "int":
		return "int32"
	case "long":
		return "int64"
	case "float":
		return "float32"
	case "double":
		return "float64"
	default:
		return "any"
	}
}

// goBaseType returns the underlying type of an enum.
func goBaseType(t *codemodel.Type) string {
	if t == nil {
		return "string"
	}
	switch t.Unboxed().Name {
	case "boolean":
		return "bool"
	case "int":
		return "int64"
	case "double":
		return "float64"
	default:
		return "string"
	}
}

// goLiteral renders a literal using its decoded value.
func goLiteral(e codemodel.Expr) string {
	lit, ok := e.(codemodel.Literal)
	if !ok {
		return "nil"
	}
	switch v := lit.Value.(type) {
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return "nil"
	}
}

// goDefaultValue renders the initializer of f as a Go value when the field
// has a plain scalar type. Other initializers are left to the caller.
func goDefaultValue(f *codemodel.Field) (string, bool) {
	if f.Init == nil {
		return "", false
	}
	if inv, ok := f.Init.(codemodel.Invoke); ok && inv.Method == "fromValue" && inv.Static.IsEnum() && len(inv.Args) == 1 {
		enum := inv.Static.Class
		for _, c := range enum.EnumConstants {
			if lit, ok := c.Value.(codemodel.Literal); ok && lit.Text == javaExpr(inv.Args[0]) {
				return goConstName(goTypeName(enum), c.Name), true
			}
		}
		return "", false
	}
	lit, ok := f.Init.(codemodel.Literal)
	if !ok || lit.Value == nil {
		return "", false
	}
	switch goType(f.Type) {
	case "string", "bool", "int32", "int64", "float32", "float64", "int16", "byte", "rune":
		return goLiteral(lit), true
	default:
		return "", false
	}
}

// wireName returns the JSON name from the @JsonProperty annotation, or the
// field name when there is none.
func wireName(f *codemodel.Field) string {
	for _, a := range f.Annotations {
		if a.Type.SimpleName() != "JsonProperty" {
			continue
		}
		if lit, ok := a.Value.(codemodel.Literal); ok {
			if s, ok := lit.Value.(string); ok {
				return s
			}
		}
	}
	return f.Name
}

func isRequired(f *codemodel.Field) bool {
	for _, p := range f.Javadoc.Paragraphs {
		if p == rules.RequiredDoc {
			return true
		}
	}
	return false
}

// jsonTag renders a struct tag. A wire name containing a backquote forces
// an interpreted string literal.
func jsonTag(wire string, omitEmpty bool) string {
	value := wire
	if omitEmpty {
		value += ",omitempty"
	}
	tag := "json:" + strconv.Quote(value)
	if strings.Contains(tag, "`") {
		return strconv.Quote(tag)
	}
	return "`" + tag + "`"
}

// goDoc turns a Javadoc into comment lines; an empty line separates
// paragraphs.
func goDoc(d codemodel.Javadoc) []string {
	var lines []string
	for i, p := range d.Paragraphs {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(strings.TrimRight(p, "\n"), "\n")...)
	}
	return lines
}

// toSnake converts a class name into a file name: ShippingAddress ->
// shipping_address.
func toSnake(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
