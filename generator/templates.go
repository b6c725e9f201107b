package generator

import (
	"bytes"
	"embed"
	"strings"
	"text/template"
)

//go:embed templates/*/*.tmpl
var templateFS embed.FS

var templates *template.Template

func init() {
	var err error
	templates, err = template.New("").
		Funcs(templateFuncs).
		ParseFS(templateFS, "templates/*/*.tmpl")
	if err != nil {
		panic(err)
	}
}

// templateFuncs provides custom functions for templates
var templateFuncs = template.FuncMap{
	// String manipulation
	"join":   strings.Join,
	"indent": indent,

	// Nested rendering
	"include": include,

	// Java helpers
	"javaType":       javaType,
	"javaExpr":       javaExpr,
	"javaStmt":       javaStmt,
	"javaParams":     javaParams,
	"javaAnnotation": javaAnnotation,
	"javadocLines":   javadocLines,
	"isEnum":         isEnumClass,
	"isString":       isStringType,
}

// include executes the named template and returns its output, so a
// template can post-process a nested rendering (e.g. with indent).
func include(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// indent prefixes every non-empty line of s with n spaces.
func indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

// executeTemplate executes a template by name into a pooled buffer sized
// for the number of members being rendered.
func executeTemplate(name string, data any, members int) ([]byte, error) {
	buf := getTemplateBuffer(members)
	defer putTemplateBuffer(buf, members)

	if err := templates.ExecuteTemplate(buf, name, data); err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}
