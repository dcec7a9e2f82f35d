// Package directive implements schema-directive middleware for the executor:
// application code registers a hook per directive name, and every field
// resolution whose declaration carries that directive runs the hook's
// validation callback before the resolver and its transformation callback on
// the resolver's result.
package directive

import (
	"context"

	executor "github.com/fieldgate/fieldgate/internal/executor"
)

// Arguments are the decoded argument values of one directive annotation,
// produced per field resolution and scoped to it.
type Arguments map[string]any

// String returns the argument as a string, or "" when absent or another type.
func (a Arguments) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// ValidateFunc runs before the field's resolver. Returning a non-nil error
// rejects the field: the resolver never runs, the error surfaces as that
// field's execution error, and sibling fields are unaffected. The callback
// may block on external checks; it must respect ctx.
type ValidateFunc func(ctx context.Context, args Arguments, info *executor.ResolveInfo) error

// TransformFunc runs strictly after the resolver has produced a result and
// returns the replacement value. It is applied synchronously and must not
// block; asynchronous work belongs in a ValidateFunc.
type TransformFunc func(value any, args Arguments) any

// Hook pairs a directive's schema-language definition with the callbacks to
// run around resolvers of fields annotated with it. Both callbacks are
// optional and independent.
//
// SDL must declare exactly one directive, e.g.
//
//	directive @auth(role: Role = USER) on FIELD_DEFINITION
//
// and may declare supporting types (such as the Role enum) that the executing
// schema does not already define.
type Hook struct {
	SDL       string
	Validate  ValidateFunc
	Transform TransformFunc
}

// Error extension codes attached to field errors produced by the pipeline.
const (
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeBadDirectiveUsage = "BAD_DIRECTIVE_USAGE"
)
