package directive

import (
	"context"

	eventbus "github.com/fieldgate/fieldgate/internal/eventbus"
	events "github.com/fieldgate/fieldgate/internal/events"
	executor "github.com/fieldgate/fieldgate/internal/executor"
	schema "github.com/fieldgate/fieldgate/internal/schema"
)

// Pipeline intercepts field resolution for one directive name. It holds no
// per-resolution state: everything transient lives in the ResolveInfo and the
// decoded arguments, so invocations across concurrent fields are independent.
type Pipeline struct {
	name string
	hook Hook
}

// Name returns the directive name this pipeline is bound to.
func (p *Pipeline) Name() string { return p.name }

// Intercept implements executor.FieldInterceptor.
//
// Per field: locate the annotation on the field's declaration; resolve the
// directive definition on the executing schema; decode the annotation
// arguments; run the validation callback; and, when a transformation callback
// is registered, schedule it against the resolver's result.
func (p *Pipeline) Intercept(ctx context.Context, info *executor.ResolveInfo) (executor.ResultTransform, error) {
	use := locateFieldDirective(ctx, info, p.name)
	if use == nil {
		return nil, nil
	}

	def := info.Schema.GetDirective(use.Name)
	if def == nil {
		// An annotation with no backing definition is inert in production,
		// but observable: it usually means a typo in directive naming.
		eventbus.Publish(ctx, events.DirectiveUndefined{
			Directive:  use.Name,
			ObjectType: info.ParentType.Name,
			Field:      info.FieldName(),
		})
		return nil, nil
	}

	args, err := decodeArguments(info.Schema, def, use, info.Variables)
	if err != nil {
		return nil, executor.GraphQLError{
			Message:    err.Error(),
			Extensions: map[string]any{"code": CodeBadDirectiveUsage},
		}
	}

	if p.hook.Validate != nil {
		if err := p.hook.Validate(ctx, args, info); err != nil {
			eventbus.Publish(ctx, events.DirectiveRejected{
				Directive:  use.Name,
				ObjectType: info.ParentType.Name,
				Field:      info.FieldName(),
				Reason:     err.Error(),
			})
			if ge, ok := err.(executor.GraphQLError); ok {
				return nil, ge
			}
			return nil, executor.GraphQLError{
				Message:    err.Error(),
				Extensions: map[string]any{"code": CodeUnauthorized},
			}
		}
	}

	if p.hook.Transform == nil {
		return nil, nil
	}
	return func(value any) any {
		return p.hook.Transform(value, args)
	}, nil
}

// locateFieldDirective finds the annotation with the given name on the
// resolved field's declaration, or nil.
//
// Absence of the parent type or of the annotation is a plain "not found". A
// field the runtime resolves that the declaration tree does not declare is a
// schema/runtime mismatch; it is still treated as "not found" so production
// execution proceeds, but the mismatch is published for debug tooling. The
// bundled executor rejects undeclared fields before interception, so that
// path only fires under a host engine that resolves fields beyond the
// declaration tree.
func locateFieldDirective(ctx context.Context, info *executor.ResolveInfo, name string) *schema.FieldDirective {
	parent := info.Schema.Types[info.ParentType.Name]
	if parent == nil {
		return nil
	}
	fieldDef := parent.GetField(info.FieldNode.Name)
	if fieldDef == nil {
		eventbus.Publish(ctx, events.FieldDeclarationMissing{
			ObjectType: info.ParentType.Name,
			Field:      info.FieldNode.Name,
		})
		return nil
	}
	return fieldDef.Directive(name)
}
