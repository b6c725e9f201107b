package rules

import (
	"fmt"
	"log/slog"

	"github.com/erraggy/jsonschema2pojo/codemodel"
	"github.com/erraggy/jsonschema2pojo/config"
	"github.com/erraggy/jsonschema2pojo/internal/issues"
	"github.com/erraggy/jsonschema2pojo/internal/severity"
	"github.com/erraggy/jsonschema2pojo/schema"
)

// Context is the state of one generation session. It is threaded through
// every rule call and is not safe for concurrent use.
type Context struct {
	// Config is the configuration of the factory that created the context.
	Config config.GenerationConfig
	// Store loads documents and resolves references.
	Store *schema.Store
	// Model receives the generated classes.
	Model *codemodel.Model
	// Logger receives debug output. It is never nil.
	Logger *slog.Logger

	factory  *Factory
	bindings map[string]*codemodel.Type
	issues   []issues.Issue
}

// Rules returns the factory that created the context.
func (c *Context) Rules() *Factory {
	return c.factory
}

// Bind records that node is represented by t. Later resolutions of the same
// node (through any $ref path) reuse t.
func (c *Context) Bind(node *schema.Node, t *codemodel.Type) {
	c.bindings[node.ID()] = t
}

// Binding returns the type previously bound to node.
func (c *Context) Binding(node *schema.Node) (*codemodel.Type, bool) {
	t, ok := c.bindings[node.ID()]
	return t, ok
}

// Report records a non-fatal problem found at node.
func (c *Context) Report(node *schema.Node, sev severity.Severity, keyword string, value any, format string, args ...any) {
	issue := issues.Issue{
		Path:     node.Pointer(),
		Message:  fmt.Sprintf(format, args...),
		Severity: sev,
		Keyword:  keyword,
		Value:    value,
		Line:     node.Line(),
		Column:   node.Column(),
	}
	if doc := node.Document(); doc != nil {
		issue.File = doc.URI
	}
	if issue.Path == "" {
		issue.Path = "/"
	}
	c.issues = append(c.issues, issue)
	c.Logger.Debug("generation issue", "severity", sev.String(), "path", issue.Path, "message", issue.Message)
}

// Issues returns the problems reported so far, in report order.
func (c *Context) Issues() []issues.Issue {
	return c.issues
}
