package directive

import (
	"fmt"

	executor "github.com/fieldgate/fieldgate/internal/executor"
	language "github.com/fieldgate/fieldgate/internal/language"
	schema "github.com/fieldgate/fieldgate/internal/schema"
)

// Install registers each hook's directive definition on the schema and
// returns one field interceptor per hook, in registration order, ready to be
// handed to executor.NewExecutor.
//
// Each directive name maps to exactly one hook; a second hook for the same
// name, in this or any earlier Install call on the same schema, is an
// installation error. The hook's definition replaces any same-named
// definition the schema SDL already declared, so the decoder and the SDL
// agree on argument shapes.
func Install(s *schema.Schema, hooks ...Hook) ([]executor.FieldInterceptor, error) {
	interceptors := make([]executor.FieldInterceptor, 0, len(hooks))

	for _, hook := range hooks {
		def, aux, err := parseHookSDL(hook.SDL)
		if err != nil {
			return nil, err
		}
		if existing := s.GetDirective(def.Name); existing != nil && existing.Bound {
			return nil, fmt.Errorf("duplicate hook for directive @%s", def.Name)
		}

		def.Bound = true
		s.AddDirective(def)
		for _, t := range aux {
			if _, exists := s.Types[t.Name]; !exists {
				s.AddType(t)
			}
		}

		interceptors = append(interceptors, &Pipeline{name: def.Name, hook: hook})
	}
	return interceptors, nil
}

// parseHookSDL parses a hook's schema fragment into its directive definition
// plus any supporting type definitions.
func parseHookSDL(sdl string) (*schema.Directive, []*schema.Type, error) {
	doc, err := language.ParseSchema("hook", sdl)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid hook SDL: %w", err)
	}
	if len(doc.Directives) != 1 {
		return nil, nil, fmt.Errorf("hook SDL must declare exactly one directive, got %d", len(doc.Directives))
	}

	// Reuse the schema builder for the fragment, then pull the pieces out.
	built, err := schema.BuildFromDocument(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid hook SDL: %w", err)
	}
	def := built.GetDirective(doc.Directives[0].Name)
	if def == nil {
		return nil, nil, fmt.Errorf("hook SDL did not produce directive @%s", doc.Directives[0].Name)
	}

	var aux []*schema.Type
	for _, d := range doc.Definitions {
		if t, ok := built.Types[d.Name]; ok {
			aux = append(aux, t)
		}
	}
	return def, aux, nil
}
