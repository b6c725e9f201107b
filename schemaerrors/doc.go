// Package schemaerrors provides structured error types for jsonschema2pojo.
//
// Import path: github.com/erraggy/jsonschema2pojo/schemaerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between the failures that abort a generation
// run.
//
// # Error Types
//
//   - [ParseError]: a schema document could not be read or decoded
//   - [ReferenceError]: a $ref could not be resolved
//   - [NamingConflictError]: two properties map to the same member name
//   - [UnsupportedError]: a keyword value the rules cannot translate
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each type matches its sentinel through an Is method:
//
//	_, err := generator.GenerateWithOptions(generator.WithSourcePaths("schema"))
//	if errors.Is(err, schemaerrors.ErrNamingConflict) {
//	    // rename one of the colliding properties
//	}
//
// Every error kind is fatal for the document being generated; the rule engine
// never recovers locally.
package schemaerrors
