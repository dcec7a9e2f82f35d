package executor

import (
	"context"

	language "github.com/fieldgate/fieldgate/internal/language"
	schema "github.com/fieldgate/fieldgate/internal/schema"
)

// ResolveInfo carries everything an interceptor may inspect about one field
// resolution. It is created fresh per field instance and discarded when
// resolution of that field completes; interceptors must not retain it.
type ResolveInfo struct {
	// Schema is the executing schema, never mutated during execution.
	Schema *schema.Schema
	// ParentType is the object type that declares the field.
	ParentType *schema.Type
	// Field is the field's declaration in the schema, nil when the field is
	// known to the runtime but absent from the declaration tree.
	Field *schema.Field
	// FieldNode is the AST field selection being executed.
	FieldNode *language.Field
	// Path is the response path of this field instance.
	Path Path
	// Source is the parent object value.
	Source any
	// Args are the field arguments, coerced to Go values per the schema.
	Args map[string]any
	// Variables are the operation's coerced variable bindings.
	Variables map[string]any
}

// FieldName returns the declared name of the field being resolved.
func (info *ResolveInfo) FieldName() string { return info.FieldNode.Name }

// ResultTransform replaces a resolver result. It runs synchronously at the
// point the resolver's value becomes available and must not block; any
// asynchronous work belongs in the interception phase.
type ResultTransform func(value any) any

// FieldInterceptor is the plugin boundary the Executor exposes around field
// resolution.
//
// Intercept is called once per field instance before the resolver runs. A
// non-nil error aborts resolution of that field and surfaces as its execution
// error, leaving sibling fields unaffected. A non-nil ResultTransform is
// applied to the resolver's result after it completes; when several
// interceptors return transforms for one field they are applied in
// installation order, so the last installed wins on conflicting mutations.
//
// Intercept may block (e.g. on a credential check); it must respect ctx.
// Interceptors are invoked concurrently across field instances and must not
// keep per-call mutable state.
type FieldInterceptor interface {
	Intercept(ctx context.Context, info *ResolveInfo) (ResultTransform, error)
}
