package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

// EnvPrefix prefixes every environment variable read by Load.
// Example: JSONSCHEMA2POJO_GENERATE_BUILDERS=true
const EnvPrefix = "JSONSCHEMA2POJO_"

// Load resolves a GenerationConfig from, in increasing precedence, the
// defaults, the YAML file at path (skipped when path is empty) and
// JSONSCHEMA2POJO_* environment variables. The result is validated.
func Load(path string) (GenerationConfig, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return GenerationConfig{}, fmt.Errorf("config: failed to load configuration file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return GenerationConfig{}, fmt.Errorf("config: failed to load environment variables: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "mapstructure"}); err != nil {
		return GenerationConfig{}, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GenerationConfig{}, err
	}
	return cfg, nil
}

// envKeys maps a normalized variable name ("generatebuilders") to the
// mapstructure key of the matching field ("generateBuilders").
var envKeys = func() map[string]string {
	keys := make(map[string]string)
	t := reflect.TypeFor[GenerationConfig]()
	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("mapstructure")
		keys[strings.ToLower(tag)] = tag
	}
	return keys
}()

// envKey maps JSONSCHEMA2POJO_GENERATE_BUILDERS to "generateBuilders".
// Variables that name no option are ignored.
func envKey(s string) string {
	return envKeys[strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, EnvPrefix), "_", ""))]
}
