// Package generator turns JSON Schema documents into class source files.
//
// Every source is read into one shared schema store and code model, so a
// schema referenced from several files becomes a single class. The rules
// package builds the classes; this package loads the sources, runs the rules
// over each root and renders the model with an emitter.
//
// # Quick Start
//
// Generate Java beans using functional options:
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("schemas/"),
//		generator.WithPackageName("com.example"),
//		generator.WithBuilders(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./src/main/java"); err != nil {
//		log.Fatal(err)
//	}
//
// Or use a reusable Generator instance:
//
//	g := generator.New()
//	g.Config.TargetPackage = "com.example"
//	result, _ := g.Generate("person.json", "address.json")
//	result.WriteFiles("./src/main/java")
//
// # Sources
//
// A source path is a schema file or a directory. Directories are walked
// recursively for .json, .yaml and .yml files; each subdirectory adds a
// segment to the package. The root class is named after the file. With the
// openapi source type, each entry of components.schemas is a root instead.
//
// # Emitters
//
// The java emitter writes one .java file per top-level class below the
// package directory, with nested classes and enums inside it. The go emitter
// writes one .go file per top-level class with exported fields, JSON tags and
// Get/Set/With methods, formatted by goimports.
//
// Non-fatal problems such as an unknown format or an invalid default are
// returned as GenerateIssue values; fatal ones abort the run and no files
// are produced. See GenerateResult for details.
package generator
