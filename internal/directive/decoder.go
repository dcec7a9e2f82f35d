package directive

import (
	"fmt"

	executor "github.com/fieldgate/fieldgate/internal/executor"
	language "github.com/fieldgate/fieldgate/internal/language"
	schema "github.com/fieldgate/fieldgate/internal/schema"
)

// decodeArguments produces the concrete argument values for one directive
// annotation: supplied literals and variable references are resolved against
// the operation's variable bindings and coerced to the declared argument
// types; declared defaults fill in missing optional arguments; a missing
// required argument fails the decode.
//
// The result is always non-nil, so an annotation without arguments decodes to
// an empty mapping rather than null.
func decodeArguments(s *schema.Schema, def *schema.Directive, use *schema.FieldDirective, variables map[string]any) (Arguments, error) {
	args := make(Arguments, len(def.Arguments))

	supplied := make(map[string]*language.Value, len(use.Arguments))
	for _, arg := range use.Arguments {
		if def.GetArgument(arg.Name) == nil {
			return nil, fmt.Errorf("invalid @%s usage: unknown argument '%s'", def.Name, arg.Name)
		}
		supplied[arg.Name] = arg.Value
	}

	for _, argDef := range def.Arguments {
		raw, ok := supplied[argDef.Name]
		if !ok {
			if argDef.HasDefault {
				args[argDef.Name] = argDef.DefaultValue
				continue
			}
			if schema.IsNonNull(argDef.Type) {
				return nil, fmt.Errorf("invalid @%s usage: required argument '%s' was not provided", def.Name, argDef.Name)
			}
			continue
		}
		value := language.GoValueWithVars(raw, variables)
		coerced, err := executor.CoerceValue(s, value, argDef.Type)
		if err != nil {
			return nil, fmt.Errorf("invalid @%s usage: argument '%s': %v", def.Name, argDef.Name, err)
		}
		args[argDef.Name] = coerced
	}
	return args, nil
}
