// Package codemodel is the in-memory description of the classes produced by
// the schema rules. Emitters in the generator package turn it into source.
//
// A Model holds Packages, which hold top-level Classes. Classes hold Fields,
// Methods, enum constants and nested Classes. Fields, methods and classes are
// all Members: they carry annotations and a Javadoc comment, which is what
// the decorating rules operate on.
//
// Names are unique within their scope. Declaring a second field with the
// same name, a second method with the same signature, or a second class
// whose name differs only in case returns a schemaerrors.NamingConflictError.
//
// Method bodies are a small statement tree (Return, Assign) over expressions
// (This, FieldRef, ParamRef, Literal, New, Invoke), enough for accessors,
// builders and field initializers.
package codemodel
