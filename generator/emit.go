package generator

import (
	"fmt"
	"strings"

	"github.com/erraggy/jsonschema2pojo/codemodel"
	"github.com/erraggy/jsonschema2pojo/config"
)

// emitter renders one top-level class, with its nested classes, into a file.
type emitter interface {
	emit(cls *codemodel.Class) (GeneratedFile, error)
}

func newEmitter(cfg config.GenerationConfig) (emitter, error) {
	switch cfg.TargetLanguage {
	case config.LanguageJava:
		return javaEmitter{}, nil
	case config.LanguageGo:
		return goEmitter{}, nil
	default:
		return nil, fmt.Errorf("unsupported target language %q", cfg.TargetLanguage)
	}
}

// packageDir converts a dotted package name into a slash-separated directory.
func packageDir(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}

// filePath joins the package directory and a file name.
func filePath(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return packageDir(pkg) + "/" + name
}

// memberCount counts the fields, methods and constants of cls and its
// nested classes.
func memberCount(cls *codemodel.Class) int {
	n := len(cls.Fields) + len(cls.Methods) + len(cls.EnumConstants)
	for _, nested := range cls.Nested {
		n += memberCount(nested)
	}
	return n
}

// hasEnum reports whether cls or any class nested in it is an enum.
func hasEnum(cls *codemodel.Class) bool {
	if cls.Kind == codemodel.ClassEnum {
		return true
	}
	for _, nested := range cls.Nested {
		if hasEnum(nested) {
			return true
		}
	}
	return false
}
