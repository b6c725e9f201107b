package codemodel

import (
	"strings"

	"github.com/erraggy/jsonschema2pojo/schemaerrors"
)

// Container is anything new classes can be declared in: a package for
// top-level classes, or a class for nested ones.
type Container interface {
	// NewClass declares a class of the given kind. It fails with a
	// NamingConflictError when the container already declares a class whose
	// name differs from name only in case.
	NewClass(name string, kind ClassKind) (*Class, error)
	// HasClass reports whether a class name is taken, ignoring case.
	HasClass(name string) bool
	// PackageName returns the package classes declared here belong to.
	PackageName() string
}

// Model is the root of everything generated in one run.
type Model struct {
	packages []*Package
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// Package returns the package with the given name, creating it on first use.
// The empty name is the default package.
func (m *Model) Package(name string) *Package {
	for _, p := range m.packages {
		if p.Name == name {
			return p
		}
	}
	p := &Package{Name: name}
	m.packages = append(m.packages, p)
	return p
}

// Packages returns the packages in creation order.
func (m *Model) Packages() []*Package {
	return m.packages
}

// Classes returns every top-level class of every package, in declaration order.
func (m *Model) Classes() []*Class {
	var out []*Class
	for _, p := range m.packages {
		out = append(out, p.Classes...)
	}
	return out
}

// Package holds top-level classes.
type Package struct {
	Name    string
	Classes []*Class
}

// NewClass implements Container.
func (p *Package) NewClass(name string, kind ClassKind) (*Class, error) {
	if p.HasClass(name) {
		return nil, &schemaerrors.NamingConflictError{Class: p.displayName(), Member: name}
	}
	c := newClass(name, kind, p, nil)
	p.Classes = append(p.Classes, c)
	return c, nil
}

// HasClass implements Container.
func (p *Package) HasClass(name string) bool {
	return findClass(p.Classes, name) != nil
}

// PackageName implements Container.
func (p *Package) PackageName() string {
	return p.Name
}

// Class returns the top-level class with the given name, ignoring case.
func (p *Package) Class(name string) *Class {
	return findClass(p.Classes, name)
}

func (p *Package) displayName() string {
	if p.Name == "" {
		return "default package"
	}
	return "package " + p.Name
}

func findClass(classes []*Class, name string) *Class {
	for _, c := range classes {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}
