package codemodel

import (
	"slices"
	"strings"

	"github.com/erraggy/jsonschema2pojo/schemaerrors"
)

// ClassKind distinguishes classes from enums.
type ClassKind int

const (
	// ClassClass is an ordinary class.
	ClassClass ClassKind = iota
	// ClassEnum is an enum whose constants wrap a value.
	ClassEnum
)

// String returns the Java keyword for the kind.
func (k ClassKind) String() string {
	if k == ClassEnum {
		return "enum"
	}
	return "class"
}

// Modifier is a set of Java modifiers.
type Modifier uint8

const (
	ModPublic Modifier = 1 << iota
	ModProtected
	ModPrivate
	ModStatic
	ModFinal
)

// String renders the modifiers in canonical order, space separated.
func (m Modifier) String() string {
	var parts []string
	for _, mod := range []struct {
		bit  Modifier
		word string
	}{
		{ModPublic, "public"},
		{ModProtected, "protected"},
		{ModPrivate, "private"},
		{ModStatic, "static"},
		{ModFinal, "final"},
	} {
		if m&mod.bit != 0 {
			parts = append(parts, mod.word)
		}
	}
	return strings.Join(parts, " ")
}

// Javadoc is a documentation comment made of paragraphs.
type Javadoc struct {
	Paragraphs []string
}

// Add appends a paragraph unless an identical one is already present.
// It reports whether the comment changed.
func (d *Javadoc) Add(text string) bool {
	if slices.Contains(d.Paragraphs, text) {
		return false
	}
	d.Paragraphs = append(d.Paragraphs, text)
	return true
}

// Prepend inserts a paragraph at the front unless an identical one is
// already present. It reports whether the comment changed.
func (d *Javadoc) Prepend(text string) bool {
	if slices.Contains(d.Paragraphs, text) {
		return false
	}
	d.Paragraphs = slices.Insert(d.Paragraphs, 0, text)
	return true
}

// Empty reports whether the comment has no paragraphs.
func (d *Javadoc) Empty() bool {
	return d == nil || len(d.Paragraphs) == 0
}

// Annotation is a Java annotation with at most one (value) element.
type Annotation struct {
	Type  *Type
	Value Expr
}

// annotations is embedded by every annotatable declaration.
type annotations struct {
	Annotations []Annotation
	Javadoc     Javadoc
}

// Annotate adds a unless an annotation of the same type is already present.
// It reports whether a was added.
func (a *annotations) Annotate(ann Annotation) bool {
	if a.HasAnnotation(ann.Type.QualifiedName()) {
		return false
	}
	a.Annotations = append(a.Annotations, ann)
	return true
}

// HasAnnotation reports whether an annotation with the given fully qualified
// type name is present.
func (a *annotations) HasAnnotation(qualified string) bool {
	for _, ann := range a.Annotations {
		if ann.Type.QualifiedName() == qualified {
			return true
		}
	}
	return false
}

// Doc returns the documentation comment.
func (a *annotations) Doc() *Javadoc {
	return &a.Javadoc
}

// Member is a declaration that carries annotations and documentation:
// a class, a field or a method.
type Member interface {
	MemberName() string
	Doc() *Javadoc
	Annotate(Annotation) bool
	HasAnnotation(qualified string) bool
}

// EnumConstant is one constant of an enum and the JSON value it stands for.
type EnumConstant struct {
	Name  string
	Value Expr
}

// Class is a class or enum declaration.
type Class struct {
	annotations

	Name string
	Kind ClassKind
	Mods Modifier
	// ValueType is the type of the value wrapped by enum constants.
	ValueType     *Type
	EnumConstants []EnumConstant
	Fields        []*Field
	Methods       []*Method
	Nested        []*Class

	pkg   *Package
	outer *Class
}

func newClass(name string, kind ClassKind, pkg *Package, outer *Class) *Class {
	c := &Class{Name: name, Kind: kind, Mods: ModPublic, pkg: pkg, outer: outer}
	if outer != nil {
		c.Mods |= ModStatic
	}
	return c
}

// MemberName implements Member.
func (c *Class) MemberName() string {
	return c.Name
}

// Outer returns the enclosing class, or nil for a top-level class.
func (c *Class) Outer() *Class {
	return c.outer
}

// TopLevel returns the outermost enclosing class (c itself if top-level).
func (c *Class) TopLevel() *Class {
	for c.outer != nil {
		c = c.outer
	}
	return c
}

// PackageName implements Container.
func (c *Class) PackageName() string {
	return c.TopLevel().pkg.Name
}

// NestedName returns the name relative to the package, e.g. "Person.Status".
func (c *Class) NestedName() string {
	if c.outer == nil {
		return c.Name
	}
	return c.outer.NestedName() + "." + c.Name
}

// QualifiedName returns the fully qualified name.
func (c *Class) QualifiedName() string {
	if pkg := c.PackageName(); pkg != "" {
		return pkg + "." + c.NestedName()
	}
	return c.NestedName()
}

// Type returns a reference to this class.
func (c *Class) Type() *Type {
	return Defined(c)
}

// NewClass implements Container by declaring a nested class.
func (c *Class) NewClass(name string, kind ClassKind) (*Class, error) {
	if c.HasClass(name) {
		return nil, &schemaerrors.NamingConflictError{Class: c.NestedName(), Member: name}
	}
	nested := newClass(name, kind, nil, c)
	c.Nested = append(c.Nested, nested)
	return nested, nil
}

// HasClass implements Container. A nested class may not share the name of
// any enclosing class.
func (c *Class) HasClass(name string) bool {
	for outer := c; outer != nil; outer = outer.outer {
		if strings.EqualFold(outer.Name, name) {
			return true
		}
	}
	return findClass(c.Nested, name) != nil
}

// Field returns the field with the given name, or nil.
func (c *Class) Field(name string) *Field {
	for _, f := range c.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Method returns the first method with the given name, or nil.
func (c *Class) Method(name string) *Method {
	for _, m := range c.Methods {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// NewField declares a private field. key is the schema property the field
// comes from and is only used to describe a conflict.
func (c *Class) NewField(name string, typ *Type, key string) (*Field, error) {
	if c.Field(name) != nil {
		return nil, &schemaerrors.NamingConflictError{Class: c.NestedName(), Member: name, Key: key}
	}
	f := &Field{Name: name, Type: typ, Mods: ModPrivate, owner: c}
	c.Fields = append(c.Fields, f)
	return f, nil
}

// NewMethod declares a public method. A second method with the same name
// and parameter types is a conflict; overloads are allowed.
func (c *Class) NewMethod(name string, ret *Type, key string, params ...Param) (*Method, error) {
	m := &Method{Name: name, Return: ret, Params: params, Mods: ModPublic, owner: c}
	for _, existing := range c.Methods {
		if existing.signature() == m.signature() {
			return nil, &schemaerrors.NamingConflictError{Class: c.NestedName(), Member: name, Key: key}
		}
	}
	c.Methods = append(c.Methods, m)
	return m, nil
}

// AddEnumConstant appends a constant to an enum.
func (c *Class) AddEnumConstant(name string, value Expr) error {
	for _, existing := range c.EnumConstants {
		if existing.Name == name {
			return &schemaerrors.NamingConflictError{Class: c.NestedName(), Member: name}
		}
	}
	c.EnumConstants = append(c.EnumConstants, EnumConstant{Name: name, Value: value})
	return nil
}

// Field is a member variable.
type Field struct {
	annotations

	Name string
	Type *Type
	Mods Modifier
	// Init is the initializer, or nil for none.
	Init Expr

	owner *Class
}

// MemberName implements Member.
func (f *Field) MemberName() string {
	return f.Name
}

// Owner returns the declaring class.
func (f *Field) Owner() *Class {
	return f.owner
}

// Param is a method parameter.
type Param struct {
	Name string
	Type *Type
}

// Method is a method declaration. A nil Return means void.
type Method struct {
	annotations

	Name   string
	Return *Type
	Params []Param
	Mods   Modifier
	Body   []Stmt

	owner *Class
}

// MemberName implements Member.
func (m *Method) MemberName() string {
	return m.Name
}

// Owner returns the declaring class.
func (m *Method) Owner() *Class {
	return m.owner
}

// Add appends statements to the body and returns m.
func (m *Method) Add(stmts ...Stmt) *Method {
	m.Body = append(m.Body, stmts...)
	return m
}

func (m *Method) signature() string {
	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteByte('(')
	for i, p := range m.Params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.Type.QualifiedName())
	}
	b.WriteByte(')')
	return b.String()
}
