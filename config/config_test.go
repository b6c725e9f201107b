package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/jsonschema2pojo/schemaerrors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.GenerateBuilders)
	assert.True(t, cfg.UsePrimitives)
	assert.True(t, cfg.UseDoubleNumbers)
	assert.Equal(t, LanguageJava, cfg.TargetLanguage)
	assert.Equal(t, SourceJSONSchema, cfg.SourceType)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GenerationConfig)
		option  string
		wantErr bool
	}{
		{"defaults", func(*GenerationConfig) {}, "", false},
		{"go output", func(c *GenerationConfig) { c.TargetLanguage = LanguageGo }, "", false},
		{"openapi source", func(c *GenerationConfig) { c.SourceType = SourceOpenAPI }, "", false},
		{"package", func(c *GenerationConfig) { c.TargetPackage = "com.example.model_v2" }, "", false},
		{"modern source level", func(c *GenerationConfig) { c.TargetVersion = "17" }, "", false},
		{"unknown language", func(c *GenerationConfig) { c.TargetLanguage = "kotlin" }, "targetLanguage", true},
		{"unknown source type", func(c *GenerationConfig) { c.SourceType = "xsd" }, "sourceType", true},
		{"bad source level", func(c *GenerationConfig) { c.TargetVersion = "java-eight" }, "targetVersion", true},
		{"bad package", func(c *GenerationConfig) { c.TargetPackage = "com.1example" }, "targetPackage", true},
		{"empty package segment", func(c *GenerationConfig) { c.TargetPackage = "com..example" }, "targetPackage", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, schemaerrors.ErrConfig)
			var cerr *schemaerrors.ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.option, cerr.Option)
		})
	}
}

func TestSupportsDiamond(t *testing.T) {
	tests := []struct {
		level string
		want  bool
	}{
		{"1.6", false},
		{"1.7", true},
		{"1.8", true},
		{"11", true},
		{"", true},
		{"nonsense", false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Default()
			cfg.TargetVersion = tt.level
			assert.Equal(t, tt.want, cfg.SupportsDiamond())
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsonschema2pojo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
generateBuilders: true
usePrimitives: false
targetPackage: com.example.model
targetVersion: "1.6"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.GenerateBuilders)
	assert.False(t, cfg.UsePrimitives)
	assert.True(t, cfg.UseDoubleNumbers, "options absent from the file keep their defaults")
	assert.Equal(t, "com.example.model", cfg.TargetPackage)
	assert.Equal(t, "1.6", cfg.TargetVersion)
	assert.False(t, cfg.SupportsDiamond())
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsonschema2pojo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("targetPackage: com.example.file\n"), 0o600))

	t.Setenv("JSONSCHEMA2POJO_TARGET_PACKAGE", "com.example.env")
	t.Setenv("JSONSCHEMA2POJO_GENERATE_BUILDERS", "true")
	t.Setenv("JSONSCHEMA2POJO_UNRELATED_SETTING", "ignored")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "com.example.env", cfg.TargetPackage)
	assert.True(t, cfg.GenerateBuilders)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("targetLanguage: cobol\n"), 0o600))
	_, err = Load(path)
	assert.ErrorIs(t, err, schemaerrors.ErrConfig)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "generateBuilders", envKey("JSONSCHEMA2POJO_GENERATE_BUILDERS"))
	assert.Equal(t, "includeJsr303Annotations", envKey("JSONSCHEMA2POJO_INCLUDE_JSR303_ANNOTATIONS"))
	assert.Equal(t, "", envKey("JSONSCHEMA2POJO_MCP_MAX_FILES"))
}
