package rules

import "github.com/erraggy/jsonschema2pojo/codemodel"

// GeneratorName is written into every @Generated annotation.
const GeneratorName = "jsonschema2pojo"

// Library types referenced by generated code.
var (
	jsonPropertyType = codemodel.Ref("com.fasterxml.jackson.annotation", "JsonProperty")
	generatedType    = codemodel.Ref("javax.annotation", "Generated")
	notNullType      = codemodel.Ref("javax.validation.constraints", "NotNull")
	validType        = codemodel.Ref("javax.validation", "Valid")

	dateType    = codemodel.Ref("java.util", "Date")
	uriType     = codemodel.Ref("java.net", "URI")
	patternType = codemodel.Ref("java.util.regex", "Pattern")
	uuidType    = codemodel.Ref("java.util", "UUID")
	arraysType  = codemodel.Ref("java.util", "Arrays")
)

func listOf(item *codemodel.Type) *codemodel.Type {
	return codemodel.Generic("java.util", "List", item)
}

func setOf(item *codemodel.Type) *codemodel.Type {
	return codemodel.Generic("java.util", "Set", item)
}

// jsonProperty returns @JsonProperty("wireName").
func jsonProperty(wireName string) codemodel.Annotation {
	return codemodel.Annotation{Type: jsonPropertyType, Value: codemodel.StringLit(wireName)}
}

// generated returns @Generated("jsonschema2pojo").
func generated() codemodel.Annotation {
	return codemodel.Annotation{Type: generatedType, Value: codemodel.StringLit(GeneratorName)}
}

// sameType reports whether a and b name the same class (ignoring arguments).
func sameType(a, b *codemodel.Type) bool {
	return a != nil && b != nil && a.Kind == b.Kind && a.QualifiedName() == b.QualifiedName()
}
