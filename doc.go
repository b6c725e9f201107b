// Package jsonschema2pojo turns JSON Schema documents into plain data
// classes: Java beans with Jackson annotations, or Go structs with JSON tags.
//
// # Overview
//
// The library is split into a few packages that each own one step:
//
//   - schema: load JSON and YAML schema documents, resolve $ref pointers
//   - config: generation settings, loadable from a file and the environment
//   - codemodel: the in-memory class model the rules build
//   - rules: translate schema nodes into classes, fields and methods
//   - generator: drive a run over files or directories and render the model
//   - schemaerrors: typed errors shared by the packages above
//
// # Installation
//
//	go get github.com/erraggy/jsonschema2pojo
//
// # Quick Start
//
// Generate Java classes for every schema below a directory:
//
//	import "github.com/erraggy/jsonschema2pojo/generator"
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("schemas/"),
//		generator.WithPackageName("com.example.model"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("src/main/java"); err != nil {
//		log.Fatal(err)
//	}
//	for _, c := range result.Classes {
//		fmt.Printf("%s: %d fields\n", c.Name, c.Fields)
//	}
//
// Generate Go structs instead:
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("person.json"),
//		generator.WithLanguage("go"),
//		generator.WithPackageName("model"),
//	)
//
// Use OpenAPI component schemas as sources:
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("petstore.yaml"),
//		generator.WithSourceType("openapi"),
//	)
//
// # Command-Line Tool
//
// The jsonschema2pojo command wraps the generator:
//
//	jsonschema2pojo --source schemas --target src/main/java --package com.example
//	jsonschema2pojo -s person.json -t out -l go --format json
//	jsonschema2pojo mcp
//
// The mcp subcommand serves the generate and inspect tools over stdio for
// MCP clients.
//
// # Versioning
//
// Version, Commit and BuildTime report the values stamped in at build time.
package jsonschema2pojo
