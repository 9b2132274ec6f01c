// Package validation binds request data into payload structs and validates it.
//
// Payloads declare their rules with `validator` struct tags; this package
// turns validation failures into field errors the client can understand.
package validation
