package codemodel

import (
	"slices"
)

// Imports returns the sorted import list for the compilation unit of the
// top-level class c, covering its nested classes.
func (c *Class) Imports() []string {
	pkg := c.PackageName()
	seen := make(map[string]bool)
	var visit func(*Type)
	visit = func(t *Type) {
		if t == nil {
			return
		}
		if name := t.importName(pkg); name != "" {
			seen[name] = true
		}
		for _, a := range t.Args {
			visit(a)
		}
	}
	c.walkTypes(visit)

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

func (c *Class) walkTypes(visit func(*Type)) {
	walkAnnotations(c.Annotations, visit)
	visit(c.ValueType)
	for _, ec := range c.EnumConstants {
		exprTypes(ec.Value, visit)
	}
	for _, f := range c.Fields {
		walkAnnotations(f.Annotations, visit)
		visit(f.Type)
		if f.Init != nil {
			exprTypes(f.Init, visit)
		}
	}
	for _, m := range c.Methods {
		walkAnnotations(m.Annotations, visit)
		visit(m.Return)
		for _, p := range m.Params {
			visit(p.Type)
		}
		for _, s := range m.Body {
			switch s := s.(type) {
			case Return:
				if s.Value != nil {
					exprTypes(s.Value, visit)
				}
			case Assign:
				exprTypes(s.Target, visit)
				exprTypes(s.Value, visit)
			}
		}
	}
	for _, n := range c.Nested {
		n.walkTypes(visit)
	}
}

func walkAnnotations(anns []Annotation, visit func(*Type)) {
	for _, a := range anns {
		visit(a.Type)
		if a.Value != nil {
			exprTypes(a.Value, visit)
		}
	}
}
