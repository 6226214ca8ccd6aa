// Package parser provides generic parsing infrastructure for databend-props.
//
// Parsers turn the raw string form of a value (from a connection string, a
// properties file or a command line flag) into a typed Go value, and carry
// optional validation of the parsed result.
//
// # Core Interfaces
//
//   - Parser[T]: Basic parsing interface for any type T
//   - BaseParser[T]: ParseFunc / ValidateFunc building block
//   - Concrete parsers for the property types (bool, int, string, enum)
//
// # Literal Rules
//
// Parsers never trim whitespace: a raw value is exactly what the caller
// supplied. Booleans accept only "true" and "false" (ASCII case-insensitive),
// integers are base-10 and must fit in 32 bits.
package parser
