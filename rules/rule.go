package rules

import (
	"github.com/erraggy/jsonschema2pojo/codemodel"
	"github.com/erraggy/jsonschema2pojo/schema"
)

// Rule is one translation step. It reads node (the schema found under
// nodeName), mutates target and the session model, and returns a result
// whose type depends on the rule: the same target for rules that decorate
// it, or a newly resolved type for rules that produce one.
type Rule[T, R any] interface {
	Apply(nodeName string, node *schema.Node, target T, ctx *Context) (R, error)
}

// TypeResolver returns, or creates, the type that represents a schema. The
// container is where newly created classes are declared.
type TypeResolver = Rule[codemodel.Container, *codemodel.Type]

// Decorator attaches documentation or annotations to a member. It never
// changes the member's name or type, and applying it twice has the same
// effect as applying it once.
type Decorator = Rule[codemodel.Member, codemodel.Member]

// RuleFunc adapts a function to the Rule interface.
type RuleFunc[T, R any] func(nodeName string, node *schema.Node, target T, ctx *Context) (R, error)

// Apply implements Rule.
func (f RuleFunc[T, R]) Apply(nodeName string, node *schema.Node, target T, ctx *Context) (R, error) {
	return f(nodeName, node, target, ctx)
}
