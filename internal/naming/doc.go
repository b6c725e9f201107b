// Package naming provides the naming policy used by the schema rules.
//
// Every function in this package is pure and total: the same input always
// yields the same output and no input is rejected. The policy covers:
//
//   - Sanitize: schema property key -> member name ([0-9A-Za-z_] only)
//   - GetterName, SetterName, BuilderName: bean accessor names
//   - ClassName: schema node name -> class name
//   - EnumConstantName: enum value -> constant name
//   - Singular: array property name -> item type name
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
