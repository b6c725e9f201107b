package rules

import (
	"github.com/erraggy/jsonschema2pojo/codemodel"
	"github.com/erraggy/jsonschema2pojo/schema"
)

// Javadoc paragraphs added for the optional and required keywords.
const (
	OptionalDoc = "(Optional)"
	RequiredDoc = "(Required)"
)

// TitleRule makes the title the first Javadoc paragraph.
type TitleRule struct{}

// Apply implements Decorator.
func (TitleRule) Apply(_ string, node *schema.Node, m codemodel.Member, _ *Context) (codemodel.Member, error) {
	if text := node.Text(); text != "" {
		m.Doc().Prepend(text)
	}
	return m, nil
}

// DescriptionRule adds the description as a Javadoc paragraph.
type DescriptionRule struct{}

// Apply implements Decorator.
func (DescriptionRule) Apply(_ string, node *schema.Node, m codemodel.Member, _ *Context) (codemodel.Member, error) {
	if text := node.Text(); text != "" {
		m.Doc().Add(text)
	}
	return m, nil
}

// OptionalRule notes "(Optional)" in the Javadoc when the value is true.
type OptionalRule struct{}

// Apply implements Decorator.
func (OptionalRule) Apply(_ string, node *schema.Node, m codemodel.Member, _ *Context) (codemodel.Member, error) {
	if node.Bool() {
		m.Doc().Add(OptionalDoc)
	}
	return m, nil
}

// RequiredRule notes "(Required)" in the Javadoc when the value is true and,
// with JSR-303 annotations enabled, marks fields @NotNull.
type RequiredRule struct {
	factory *Factory
}

// Apply implements Decorator.
func (r *RequiredRule) Apply(_ string, node *schema.Node, m codemodel.Member, _ *Context) (codemodel.Member, error) {
	if !node.Bool() {
		return m, nil
	}
	m.Doc().Add(RequiredDoc)
	if _, isField := m.(*codemodel.Field); isField && r.factory.Config().IncludeJSR303Annotations {
		m.Annotate(codemodel.Annotation{Type: notNullType})
	}
	return m, nil
}
