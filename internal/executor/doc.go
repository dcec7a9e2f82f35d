// Package executor implements a depth-first GraphQL executor with an explicit
// interception boundary around field resolution.
//
// # Overview
//
// The executor walks the operation's selection sets recursively, completing
// values according to the GraphQL specification (lists, leafs, objects,
// abstract types) including Non-Null null-propagation, and accumulating
// located errors while allowing partial success.
//
// # Preparation
//
// Before execution, the executor:
//  1. Chooses the operation (by name, or by uniqueness when unnamed).
//  2. Coerces variables against operation variable definitions. Errors here
//     stop execution.
//  3. Determines the root object type from the operation and collects the
//     root selection set.
//
// # Field resolution
//
// Each field instance goes through a fixed sequence:
//
//	collect → coerce arguments → intercept → resolve → transform → complete
//
// Interception is the plugin boundary: every installed FieldInterceptor is
// consulted once per field, before the resolver runs, with a ResolveInfo
// describing the field instance. An interceptor can abort the field by
// returning an error (the error becomes that field's located execution error;
// siblings are unaffected) or schedule a ResultTransform to be applied to the
// resolver's result. Transforms run synchronously between resolution and
// value completion, in installation order, so a transformed value flows
// through normal completion like any resolver-produced value.
//
// Interceptors may block, e.g. awaiting an external permission check; the
// executor passes the request context through and abandons the field when the
// context is done, without running the resolver or any transform.
//
// # Errors and partial success
//
// Errors are accumulated as located GraphQL errors (message + path, plus an
// optional extensions map). For a Non-Null field, a null result or error
// triggers propagation to the nearest nullable ancestor; otherwise the field
// value is set to null and execution continues.
//
// # Runtime contract
//
// The Runtime interface abstracts host integration: Resolve computes field
// values, ResolveType resolves concrete object types for interface/union
// values, SerializeLeafValue serializes scalars and enums to JSON-safe Go
// values. See runtime.go for detailed method contracts.
package executor
