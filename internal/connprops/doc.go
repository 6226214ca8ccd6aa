// Package connprops defines the connection properties accepted by the
// Databend driver: their wire keys, types, default values and validity
// rules.
//
// # Properties
//
// Each property is a ConnectionProperty[T] built from data rather than a
// type per property: a key, an optional default raw value, a raw-value
// predicate and a parser.Parser[T] converter. The package-level variables
// (User, SSL, ConnectionTimeout, ...) are the typed handles callers use to
// read resolved values:
//
//	vals, err := connprops.Resolve(map[string]string{"ssl": "true"})
//	if err != nil {
//	    return err
//	}
//	ssl, _ := connprops.SSL.Get(vals)
//
// # Registry
//
// Default is built once during package initialization and never mutated.
// Duplicate keys or a default that fails its own property's validation
// panic at that point, so a broken declaration cannot reach runtime.
// All accessors return copies; the registry is safe for concurrent reads
// without synchronization.
//
// # Errors
//
// Resolution reports every offending key at once (errors.Join). Use
// errors.As with *ValidationError, *ConversionError, *MissingRequiredError
// or *UnknownPropertyError to inspect individual failures.
package connprops
