// Package schema provides a type-safe validation system for structured data.
//
// It defines a simple type system with built-in types (int, number, any),
// composites (objects, maps, slices and fixed-length arrays) and constraint types
// (enums, patterns, maximum lengths). Types describe the expected shape of decoded
// JSON or YAML values; Check walks a value and reports every violation with its
// path from the root instead of stopping at the first one.
//
// Basic usage:
//
//	mappings := schema.Map(schema.Object(schema.Schema{
//	    "page":      schema.Int(),
//	    "upper_left": schema.Array(schema.Float(), 2),
//	}, schema.RequireAll()))
//
//	for _, err := range schema.Check(mappings, decoded, "") {
//	    fmt.Println(err) // e.g. "signature.page: expected int, got string"
//	}
//
// This package has zero external dependencies beyond the Go standard library.
package schema
