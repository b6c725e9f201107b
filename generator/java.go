package generator

import (
	"slices"
	"strings"

	"github.com/erraggy/jsonschema2pojo/codemodel"
)

// enumImports are used by the boilerplate every enum carries.
var enumImports = []string{
	"com.fasterxml.jackson.annotation.JsonCreator",
	"com.fasterxml.jackson.annotation.JsonValue",
	"java.util.HashMap",
	"java.util.Map",
}

// javaEmitter writes one .java compilation unit per top-level class.
type javaEmitter struct{}

// javaFile is the data handed to the java.file template.
type javaFile struct {
	Package string
	Imports []string
	Class   *codemodel.Class
}

func (javaEmitter) emit(cls *codemodel.Class) (GeneratedFile, error) {
	data := javaFile{
		Package: cls.PackageName(),
		Imports: javaImports(cls),
		Class:   cls,
	}
	out, err := executeTemplate("java.file", data, memberCount(cls))
	if err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{
		Name:    filePath(cls.PackageName(), cls.Name+".java"),
		Class:   cls.QualifiedName(),
		Content: tidyJava(out),
	}, nil
}

// javaImports returns the imports of the compilation unit rooted at cls,
// including those needed by enum boilerplate.
func javaImports(cls *codemodel.Class) []string {
	imports := cls.Imports()
	if hasEnum(cls) {
		for _, name := range enumImports {
			if !slices.Contains(imports, name) {
				imports = append(imports, name)
			}
		}
		slices.Sort(imports)
	}
	return imports
}

// tidyJava collapses runs of blank lines and drops blank lines at the start
// of the file and before a closing brace. Templates may then separate
// members freely.
func tidyJava(src []byte) []byte {
	lines := strings.Split(string(src), "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, strings.TrimRight(line, " \t"))
			continue
		}
		if len(out) == 0 || out[len(out)-1] == "" {
			continue
		}
		if strings.HasPrefix(nextNonBlank(lines[i+1:]), "}") {
			continue
		}
		out = append(out, "")
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return []byte(strings.Join(out, "\n") + "\n")
}

func nextNonBlank(lines []string) string {
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func javaType(t *codemodel.Type) string {
	return t.String()
}

func isEnumClass(cls *codemodel.Class) bool {
	return cls.Kind == codemodel.ClassEnum
}

func isStringType(t *codemodel.Type) bool {
	return t != nil && t.QualifiedName() == codemodel.TypeString.QualifiedName()
}

// javaExpr renders an expression as Java source.
func javaExpr(e codemodel.Expr) string {
	switch e := e.(type) {
	case codemodel.This:
		return "this"
	case codemodel.FieldRef:
		return javaExpr(e.Target) + "." + e.Name
	case codemodel.ParamRef:
		return e.Name
	case codemodel.Literal:
		return e.Text
	case codemodel.New:
		typ := e.Type.String()
		if e.Diamond && len(e.Type.Args) > 0 {
			typ = e.Type.SimpleName() + "<>"
		}
		return "new " + typ + "(" + javaArgs(e.Args) + ")"
	case codemodel.Invoke:
		var target string
		switch {
		case e.Target != nil:
			target = javaExpr(e.Target) + "."
		case e.Static != nil:
			target = e.Static.SimpleName() + "."
		}
		return target + e.Method + "(" + javaArgs(e.Args) + ")"
	default:
		return ""
	}
}

func javaArgs(args []codemodel.Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = javaExpr(a)
	}
	return strings.Join(parts, ", ")
}

// javaStmt renders a statement as Java source, including the semicolon.
func javaStmt(s codemodel.Stmt) string {
	switch s := s.(type) {
	case codemodel.Return:
		if s.Value == nil {
			return "return;"
		}
		return "return " + javaExpr(s.Value) + ";"
	case codemodel.Assign:
		return javaExpr(s.Target) + " = " + javaExpr(s.Value) + ";"
	default:
		return ""
	}
}

func javaParams(params []codemodel.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Type.String() + " " + p.Name
	}
	return strings.Join(parts, ", ")
}

func javaAnnotation(a codemodel.Annotation) string {
	if a.Value == nil {
		return "@" + a.Type.SimpleName()
	}
	return "@" + a.Type.SimpleName() + "(" + javaExpr(a.Value) + ")"
}

// javadocLines splits the paragraphs of a comment into lines, separating
// paragraphs with <p>. A "*/" in the text would end the comment early and is
// escaped.
func javadocLines(d codemodel.Javadoc) []string {
	var lines []string
	for i, p := range d.Paragraphs {
		if i > 0 {
			lines = append(lines, "<p>")
		}
		p = strings.ReplaceAll(p, "*/", "*&#47;")
		lines = append(lines, strings.Split(strings.TrimRight(p, "\n"), "\n")...)
	}
	return lines
}
