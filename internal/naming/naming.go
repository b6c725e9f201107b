package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Accessor and builder prefixes used by the bean naming convention.
const (
	GetterPrefix        = "get"
	BooleanGetterPrefix = "is"
	SetterPrefix        = "set"
	BuilderPrefix       = "with"
)

// emptyEnumConstant names the constant generated for an empty enum value.
const emptyEnumConstant = "__EMPTY__"

// emptyMemberName names the member generated for an empty property key. A
// lone "_" is reserved from Java 9 on.
const emptyMemberName = "__"

// isIdentChar reports whether r may appear unchanged in a generated member name.
func isIdentChar(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Sanitize converts a schema property key into a member name by replacing
// every rune outside [0-9A-Za-z] with an underscore. Case is preserved. The
// empty key becomes emptyMemberName.
// Example: "first-name" -> "first_name"
// Example: "déjà vu" -> "d_j__vu"
func Sanitize(name string) string {
	if name == "" {
		return emptyMemberName
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if isIdentChar(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Capitalize converts the first letter to uppercase and leaves the rest alone.
// Example: "first_name" -> "First_name"
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// GetterName returns the accessor name for a property. Boolean primitives use
// the "is" prefix, everything else (including boxed Boolean) uses "get".
func GetterName(propertyName string, booleanPrimitive bool) string {
	if booleanPrimitive {
		return BooleanGetterPrefix + Capitalize(propertyName)
	}
	return GetterPrefix + Capitalize(propertyName)
}

// SetterName returns the mutator name for a property.
func SetterName(propertyName string) string {
	return SetterPrefix + Capitalize(propertyName)
}

// BuilderName returns the fluent builder method name for a property.
func BuilderName(propertyName string) string {
	return BuilderPrefix + Capitalize(propertyName)
}

// ClassName converts a schema node name into a class name. Words separated by
// any non-alphanumeric rune are title cased and joined.
// Example: "shipping-address" -> "ShippingAddress"
// Example: "3d_model" -> "T3dModel"
func ClassName(nodeName string) string {
	words := strings.FieldsFunc(nodeName, func(r rune) bool { return !isIdentChar(r) })
	if len(words) == 0 {
		return "Type"
	}

	// A Caser keeps state between calls and must not be shared.
	caser := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, w := range words {
		b.WriteString(caser.String(w))
	}
	name := b.String()
	if unicode.IsDigit(rune(name[0])) {
		name = "T" + name
	}
	return name
}

// EnumConstantName converts an enum value into a constant name.
// Example: "camelCase" -> "CAMEL_CASE"
// Example: "in-progress" -> "IN_PROGRESS"
// Example: "1st" -> "_1ST"
func EnumConstantName(value string) string {
	if value == "" {
		return emptyEnumConstant
	}

	var b strings.Builder
	var prev rune
	for i, r := range value {
		if i > 0 && unicode.IsLower(prev) && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(r)
		prev = r
	}
	name := Sanitize(strings.ToUpper(b.String()))
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}

// Singular returns a best-effort singular form of a plural English noun,
// used to name array item types.
// Example: "addresses" -> "address"
// Example: "categories" -> "category"
// Example: "tags" -> "tag"
func Singular(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, "ies") && len(name) > 3:
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(lower, "sses"), strings.HasSuffix(lower, "shes"),
		strings.HasSuffix(lower, "ches"), strings.HasSuffix(lower, "xes"):
		return name[:len(name)-2]
	case strings.HasSuffix(lower, "ss"):
		return name
	case strings.HasSuffix(lower, "s") && len(name) > 1:
		return name[:len(name)-1]
	}
	return name
}
