package codemodel

import "strings"

// TypeKind distinguishes the three ways a member can be typed.
type TypeKind int

const (
	// TypePrimitive is a Java primitive such as int or boolean.
	TypePrimitive TypeKind = iota
	// TypeReference is an existing library class such as java.util.List.
	TypeReference
	// TypeDefined is a class declared in the Model.
	TypeDefined
)

// javaLang is the implicitly imported package.
const javaLang = "java.lang"

// Type is an immutable reference to a type. Generic types carry their
// arguments in Args.
type Type struct {
	Kind    TypeKind
	Name    string
	Package string
	Class   *Class
	Args    []*Type
}

var boxes = map[string]string{
	"boolean": "Boolean",
	"byte":    "Byte",
	"char":    "Character",
	"short":   "Short",
	"int":     "Integer",
	"long":    "Long",
	"float":   "Float",
	"double":  "Double",
}

// Primitive returns the primitive type with the given name.
func Primitive(name string) *Type {
	return &Type{Kind: TypePrimitive, Name: name}
}

// Ref returns a reference to the library class pkg.name.
func Ref(pkg, name string) *Type {
	return &Type{Kind: TypeReference, Name: name, Package: pkg}
}

// Generic returns pkg.name parameterized with args.
func Generic(pkg, name string, args ...*Type) *Type {
	return &Type{Kind: TypeReference, Name: name, Package: pkg, Args: args}
}

// Defined returns the type of a class declared in the model.
func Defined(c *Class) *Type {
	return &Type{Kind: TypeDefined, Name: c.Name, Package: c.PackageName(), Class: c}
}

// Frequently used library types.
var (
	TypeBoolean = Primitive("boolean")
	TypeInt     = Primitive("int")
	TypeLong    = Primitive("long")
	TypeDouble  = Primitive("double")
	TypeString  = Ref(javaLang, "String")
	TypeObject  = Ref(javaLang, "Object")
)

// IsPrimitive reports whether t is a primitive type.
func (t *Type) IsPrimitive() bool {
	return t != nil && t.Kind == TypePrimitive
}

// IsBooleanPrimitive reports whether t is the primitive boolean. The boxed
// java.lang.Boolean is not.
func (t *Type) IsBooleanPrimitive() bool {
	return t.IsPrimitive() && t.Name == "boolean"
}

// Boxed returns the wrapper class of a primitive, or t itself otherwise.
// Generic arguments must be boxed.
func (t *Type) Boxed() *Type {
	if !t.IsPrimitive() {
		return t
	}
	if name, ok := boxes[t.Name]; ok {
		return Ref(javaLang, name)
	}
	return t
}

// Unboxed returns the primitive for a wrapper class, or t itself otherwise.
func (t *Type) Unboxed() *Type {
	if t == nil || t.Kind != TypeReference || t.Package != javaLang {
		return t
	}
	for prim, box := range boxes {
		if box == t.Name {
			return Primitive(prim)
		}
	}
	return t
}

// IsEnum reports whether t is a declared enum.
func (t *Type) IsEnum() bool {
	return t != nil && t.Class != nil && t.Class.Kind == ClassEnum
}

// SimpleName returns the name used in source once the type is imported.
// Nested classes are written Outer.Inner.
func (t *Type) SimpleName() string {
	if t.Class != nil {
		return t.Class.NestedName()
	}
	return t.Name
}

// QualifiedName returns the fully qualified name without type arguments.
func (t *Type) QualifiedName() string {
	if t.Class != nil {
		return t.Class.QualifiedName()
	}
	if t.Package == "" {
		return t.Name
	}
	return t.Package + "." + t.Name
}

// String renders the type as it appears in source, e.g. "List<String>".
func (t *Type) String() string {
	if t == nil {
		return "void"
	}
	if len(t.Args) == 0 {
		return t.SimpleName()
	}
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.String()
	}
	return t.SimpleName() + "<" + strings.Join(args, ", ") + ">"
}

// importName returns the name to import for t, or "" when no import is
// needed from a compilation unit in package pkg.
func (t *Type) importName(pkg string) string {
	switch {
	case t == nil, t.Kind == TypePrimitive:
		return ""
	case t.Class != nil:
		top := t.Class.TopLevel()
		if top.PackageName() == pkg {
			return ""
		}
		return top.QualifiedName()
	case t.Package == "", t.Package == javaLang, t.Package == pkg:
		return ""
	default:
		return t.Package + "." + t.Name
	}
}
