// Package config holds the generation options shared by every rule.
//
// A GenerationConfig is built once per run, either from Default and direct
// assignment or with Load, which layers a YAML file and JSONSCHEMA2POJO_*
// environment variables over the defaults:
//
//	# jsonschema2pojo.yaml
//	generateBuilders: true
//	targetPackage: com.example.model
//	targetVersion: "11"
//
//	cfg, err := config.Load("jsonschema2pojo.yaml")
//
// TargetVersion is a Java source level. It gates language features in the
// generated code, such as the diamond operator (1.7 and later).
package config
