package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/jsonschema2pojo/codemodel"
	"github.com/erraggy/jsonschema2pojo/config"
	"github.com/erraggy/jsonschema2pojo/internal/severity"
	"github.com/erraggy/jsonschema2pojo/schemaerrors"
)

func TestTypeRuleMapping(t *testing.T) {
	boxed := config.Default()
	boxed.UsePrimitives = false
	long := config.Default()
	long.UseLongIntegers = true
	float := config.Default()
	float.UseDoubleNumbers = false

	tests := []struct {
		name   string
		cfg    config.GenerationConfig
		schema string
		want   string
	}{
		{"string", config.Default(), `{"type": "string"}`, "String"},
		{"integer", config.Default(), `{"type": "integer"}`, "int"},
		{"integer boxed", boxed, `{"type": "integer"}`, "Integer"},
		{"integer long", long, `{"type": "integer"}`, "long"},
		{"number", config.Default(), `{"type": "number"}`, "double"},
		{"number float", float, `{"type": "number"}`, "float"},
		{"number boxed", boxed, `{"type": "number"}`, "Double"},
		{"boolean", config.Default(), `{"type": "boolean"}`, "boolean"},
		{"any", config.Default(), `{"type": "any"}`, "Object"},
		{"null", config.Default(), `{"type": "null"}`, "Object"},
		{"absent", config.Default(), `{}`, "Object"},
		{"nullable list", config.Default(), `{"type": ["null", "string"]}`, "String"},
		{"only null", config.Default(), `{"type": ["null"]}`, "Object"},
		{"inferred array", config.Default(), `{"items": {"type": "string"}}`, "List<String>"},
		{"javaType", config.Default(), `{"type": "number", "javaType": "java.math.BigDecimal"}`, "BigDecimal"},
		{"javaType primitive", config.Default(), `{"javaType": "long"}`, "long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, tt.cfg)
			c := newClass(t, s, "Holder")
			typ, err := s.factory.SchemaRule().Apply("value", node(t, tt.schema), c, s.ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, typ.String())
		})
	}
}

func TestTypeRuleInfersObjectFromProperties(t *testing.T) {
	s := newSession(t, config.Default())
	c := s.generate(t, "implicit", `{"properties": {"a": {"type": "string"}}}`)
	assert.Equal(t, []string{"a"}, fieldNames(c))
}

func TestTypeRuleErrors(t *testing.T) {
	tests := []struct {
		name   string
		schema string
	}{
		{"unknown name", `{"type": "date"}`},
		{"number", `{"type": 7}`},
		{"explicit null", `{"type": null}`},
		{"mixed array", `{"type": ["string", 1]}`},
		{"mixed array after null", `{"type": ["null", "string", true]}`},
		{"generic javaType", `{"javaType": "java.util.List<String>"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, config.Default())
			c := newClass(t, s, "Holder")
			_, err := s.factory.SchemaRule().Apply("value", node(t, tt.schema), c, s.ctx)
			require.Error(t, err)
			assert.ErrorIs(t, err, schemaerrors.ErrUnsupported)
		})
	}
}

func TestFormatRule(t *testing.T) {
	boxed := config.Default()
	boxed.UsePrimitives = false

	tests := []struct {
		name   string
		cfg    config.GenerationConfig
		schema string
		want   string
		qual   string
	}{
		{"date-time", config.Default(), `{"type": "string", "format": "date-time"}`, "Date", "java.util.Date"},
		{"uri", config.Default(), `{"type": "string", "format": "uri"}`, "URI", "java.net.URI"},
		{"regex", config.Default(), `{"type": "string", "format": "regex"}`, "Pattern", "java.util.regex.Pattern"},
		{"uuid", config.Default(), `{"type": "string", "format": "uuid"}`, "UUID", "java.util.UUID"},
		{"utc-millisec", config.Default(), `{"type": "integer", "format": "utc-millisec"}`, "long", "long"},
		{"utc-millisec boxed", boxed, `{"type": "integer", "format": "utc-millisec"}`, "Long", "java.lang.Long"},
		{"int64", config.Default(), `{"type": "integer", "format": "int64"}`, "long", "long"},
		{"float", config.Default(), `{"type": "number", "format": "float"}`, "float", "float"},
		{"email", config.Default(), `{"type": "string", "format": "email"}`, "String", "java.lang.String"},
		{"date", config.Default(), `{"type": "string", "format": "date"}`, "String", "java.lang.String"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, tt.cfg)
			c := newClass(t, s, "Holder")
			typ, err := s.factory.SchemaRule().Apply("value", node(t, tt.schema), c, s.ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, typ.String())
			assert.Equal(t, tt.qual, typ.QualifiedName())
			assert.Empty(t, s.ctx.Issues())
		})
	}
}

func TestFormatRuleUnknownFormat(t *testing.T) {
	s := newSession(t, config.Default())
	c := newClass(t, s, "Holder")
	typ, err := s.factory.SchemaRule().Apply("value", node(t, `{"type": "string", "format": "zipcode"}`), c, s.ctx)
	require.NoError(t, err)
	assert.Equal(t, "String", typ.String())

	require.Len(t, s.ctx.Issues(), 1)
	issue := s.ctx.Issues()[0]
	assert.Equal(t, severity.SeverityInfo, issue.Severity)
	assert.Equal(t, "format", issue.Keyword)
	assert.Equal(t, "/format", issue.Path)
	assert.Equal(t, "/virtual/node.json", issue.File)
}

func TestEnumRule(t *testing.T) {
	s := newSession(t, config.Default())
	c := s.generate(t, "task", `{
  "type": "object",
  "properties": {
    "status": {"type": "string", "enum": ["open", "in-progress", "camelCase", "", null]},
    "priority": {"enum": [1, 2, 3]},
    "ratio": {"enum": [0.5, 1]},
    "mixed": {"enum": ["a", 1]},
    "named": {"enum": ["x", "y"], "javaEnumNames": ["EX", "WHY"]}
  }
}`)

	status := c.Field("status").Type
	require.True(t, status.IsEnum())
	assert.Equal(t, "Task.Status", status.String(), "enums are nested in the class that uses them")
	names := make([]string, 0)
	for _, ec := range status.Class.EnumConstants {
		names = append(names, ec.Name)
	}
	assert.Equal(t, []string{"OPEN", "IN_PROGRESS", "CAMEL_CASE", "__EMPTY__"}, names)
	assert.Equal(t, "String", status.Class.ValueType.String())

	priority := c.Field("priority").Type.Class
	assert.Equal(t, "Integer", priority.ValueType.String())
	assert.Equal(t, "_1", priority.EnumConstants[0].Name)
	assert.Equal(t, "1", priority.EnumConstants[0].Value.(codemodel.Literal).Text)

	assert.Equal(t, "Double", c.Field("ratio").Type.Class.ValueType.String())
	assert.Equal(t, "String", c.Field("mixed").Type.Class.ValueType.String())

	named := c.Field("named").Type.Class
	assert.Equal(t, "EX", named.EnumConstants[0].Name)
	assert.Equal(t, "WHY", named.EnumConstants[1].Name)
}

func TestEnumRuleTopLevel(t *testing.T) {
	s := newSession(t, config.Default())
	doc := s.parse(t, "/virtual/color.json", `{"enum": ["red", "green"]}`)
	typ, err := s.factory.SchemaRule().Apply("color", doc.Root(), s.pkg, s.ctx)
	require.NoError(t, err)
	assert.Equal(t, "Color", typ.String())
	assert.Len(t, s.pkg.Classes, 1)
}

func TestEnumRuleErrors(t *testing.T) {
	s := newSession(t, config.Default())
	c := newClass(t, s, "Holder")
	_, err := s.factory.SchemaRule().Apply("value", node(t, `{"enum": "a"}`), c, s.ctx)
	assert.ErrorIs(t, err, schemaerrors.ErrUnsupported)
	_, err = s.factory.SchemaRule().Apply("value", node(t, `{"enum": [{"a": 1}]}`), c, s.ctx)
	assert.ErrorIs(t, err, schemaerrors.ErrUnsupported)
}
