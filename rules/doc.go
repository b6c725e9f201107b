// Package rules translates JSON Schema nodes into the codemodel.
//
// Every translation step is a Rule: it reads one schema node, mutates a
// target in the class model and returns a result. A Factory owns the
// configuration and hands out one shared instance of each rule; a Context
// carries the state of one generation session (the model being built, the
// schema store, the schema-to-type bindings and the reported issues).
//
// # Walk
//
// The SchemaRule resolves any schema position to a type. It follows $ref,
// reuses the type already bound to the target schema, and otherwise
// dispatches to the EnumRule or the TypeRule. The TypeRule maps the "type"
// keyword: objects go to the ObjectRule, which declares a class and hands
// its properties to the PropertiesRule; arrays go to the ArrayRule; strings
// and numbers are refined by the FormatRule.
//
// # Properties
//
// The PropertyRule materializes one property as a private field, a getter
// and a setter (plus a with-method when builders are enabled). Member names
// come from internal/naming; the original key is kept in @JsonProperty.
// Boolean primitives get an "is" getter, every other type "get".
//
// The title, description, optional and required keywords are Decorators.
// When a keyword is present it is applied to the field, the getter and the
// setter alike. Decorators only add documentation and annotations and are
// idempotent. The DefaultRule runs for every property and turns "default"
// into the field initializer.
//
// # Errors
//
// Rules fail fast. A member name that already exists in the class (for
// example "first-name" and "first_name" in one object) is reported as a
// schemaerrors.NamingConflictError and aborts generation. Values that can
// be skipped safely, such as an unknown format or a default of the wrong
// type, are reported through Context.Issues instead.
package rules
