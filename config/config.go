package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/erraggy/jsonschema2pojo/schemaerrors"
)

// Language selects the emitter.
type Language string

const (
	// LanguageJava emits one .java file per top-level class.
	LanguageJava Language = "java"
	// LanguageGo emits one .go file per top-level class.
	LanguageGo Language = "go"
)

// SourceType tells the generator how to read its inputs.
type SourceType string

const (
	// SourceJSONSchema reads JSON Schema documents written in JSON.
	SourceJSONSchema SourceType = "jsonschema"
	// SourceYAMLSchema reads JSON Schema documents written in YAML.
	SourceYAMLSchema SourceType = "yamlschema"
	// SourceOpenAPI reads the component schemas of an OpenAPI 3 document.
	SourceOpenAPI SourceType = "openapi"
)

// DefaultTargetVersion is the Java source level used when none is configured.
const DefaultTargetVersion = "1.8"

// diamondLevel is the first Java source level with the diamond operator.
var diamondLevel = version.Must(version.NewVersion("1.7"))

// GenerationConfig holds every option that changes what the rules produce.
// It is resolved once per run and never mutated during generation.
type GenerationConfig struct {
	// GenerateBuilders adds a fluent with<Name> method per property.
	GenerateBuilders bool `mapstructure:"generateBuilders" json:"generateBuilders" yaml:"generateBuilders"`
	// UsePrimitives maps integer, number and boolean to primitives instead of
	// their wrapper classes.
	UsePrimitives bool `mapstructure:"usePrimitives" json:"usePrimitives" yaml:"usePrimitives"`
	// UseLongIntegers maps integer to long instead of int.
	UseLongIntegers bool `mapstructure:"useLongIntegers" json:"useLongIntegers" yaml:"useLongIntegers"`
	// UseDoubleNumbers maps number to double instead of float.
	UseDoubleNumbers bool `mapstructure:"useDoubleNumbers" json:"useDoubleNumbers" yaml:"useDoubleNumbers"`
	// IncludeJSR303Annotations adds javax.validation annotations such as
	// @NotNull for required properties.
	IncludeJSR303Annotations bool `mapstructure:"includeJsr303Annotations" json:"includeJsr303Annotations" yaml:"includeJsr303Annotations"`
	// TargetPackage is the package of generated top-level classes.
	TargetPackage string `mapstructure:"targetPackage" json:"targetPackage" yaml:"targetPackage"`
	// TargetLanguage selects the emitter.
	TargetLanguage Language `mapstructure:"targetLanguage" json:"targetLanguage" yaml:"targetLanguage"`
	// TargetVersion is the Java source level, e.g. "1.6" or "11".
	TargetVersion string `mapstructure:"targetVersion" json:"targetVersion" yaml:"targetVersion"`
	// SourceType tells the generator how to read its inputs.
	SourceType SourceType `mapstructure:"sourceType" json:"sourceType" yaml:"sourceType"`
}

// Default returns the configuration used when nothing is overridden.
func Default() GenerationConfig {
	return GenerationConfig{
		UsePrimitives:    true,
		UseDoubleNumbers: true,
		TargetLanguage:   LanguageJava,
		TargetVersion:    DefaultTargetVersion,
		SourceType:       SourceJSONSchema,
	}
}

// Validate checks that every option holds a usable value.
func (c GenerationConfig) Validate() error {
	switch c.TargetLanguage {
	case LanguageJava, LanguageGo:
	default:
		return &schemaerrors.ConfigError{
			Option:  "targetLanguage",
			Value:   c.TargetLanguage,
			Message: fmt.Sprintf("must be %q or %q", LanguageJava, LanguageGo),
		}
	}

	switch c.SourceType {
	case SourceJSONSchema, SourceYAMLSchema, SourceOpenAPI:
	default:
		return &schemaerrors.ConfigError{
			Option:  "sourceType",
			Value:   c.SourceType,
			Message: fmt.Sprintf("must be one of %q, %q, %q", SourceJSONSchema, SourceYAMLSchema, SourceOpenAPI),
		}
	}

	if _, err := c.SourceLevel(); err != nil {
		return err
	}

	if c.TargetPackage != "" {
		for _, segment := range strings.Split(c.TargetPackage, ".") {
			if !isJavaIdentifier(segment) {
				return &schemaerrors.ConfigError{
					Option:  "targetPackage",
					Value:   c.TargetPackage,
					Message: fmt.Sprintf("%q is not a valid package name segment", segment),
				}
			}
		}
	}
	return nil
}

// SourceLevel parses TargetVersion. An empty TargetVersion means
// DefaultTargetVersion.
func (c GenerationConfig) SourceLevel() (*version.Version, error) {
	raw := c.TargetVersion
	if raw == "" {
		raw = DefaultTargetVersion
	}
	v, err := version.NewVersion(raw)
	if err != nil {
		return nil, &schemaerrors.ConfigError{
			Option:  "targetVersion",
			Value:   c.TargetVersion,
			Message: "invalid Java source level",
			Cause:   err,
		}
	}
	return v, nil
}

// SupportsDiamond reports whether the source level allows "new T<>()".
// An unparsable level is treated as the oldest one.
func (c GenerationConfig) SupportsDiamond() bool {
	v, err := c.SourceLevel()
	if err != nil {
		return false
	}
	return v.GreaterThanOrEqual(diamondLevel)
}

func isJavaIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
