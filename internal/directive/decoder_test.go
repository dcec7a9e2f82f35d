package directive

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"

	language "github.com/fieldgate/fieldgate/internal/language"
	schema "github.com/fieldgate/fieldgate/internal/schema"
)

func tagDirective() *schema.Directive {
	return schema.NewDirective("tag", "").
		AddLocation(string(language.LocationFieldDefinition)).
		AddArgument(schema.NewInputValue("name", "", schema.NonNullType(schema.NamedType("String")))).
		AddArgument(schema.NewInputValue("weight", "", schema.NamedType("Int")).SetDefault(1))
}

func TestDecodeArguments_VariableResolution(t *testing.T) {
	def := tagDirective()
	use := &schema.FieldDirective{
		Name: "tag",
		Arguments: language.ArgumentList{
			&ast.Argument{Name: "name", Value: &ast.Value{Kind: ast.Variable, Raw: "label"}},
		},
	}

	args, err := decodeArguments(schema.NewSchema(""), def, use, map[string]any{"label": "beta"})
	require.NoError(t, err)
	require.Equal(t, "beta", args.String("name"))
	require.Equal(t, 1, args["weight"])
}

func TestDecodeArguments_UnboundVariableFailsRequired(t *testing.T) {
	def := tagDirective()
	use := &schema.FieldDirective{
		Name: "tag",
		Arguments: language.ArgumentList{
			&ast.Argument{Name: "name", Value: &ast.Value{Kind: ast.Variable, Raw: "label"}},
		},
	}

	// An unbound variable resolves to null, which a non-null argument rejects.
	_, err := decodeArguments(schema.NewSchema(""), def, use, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid @tag usage")
}

func TestDecodeArguments_CoercionFailure(t *testing.T) {
	def := tagDirective()
	use := &schema.FieldDirective{
		Name: "tag",
		Arguments: language.ArgumentList{
			&ast.Argument{Name: "name", Value: &ast.Value{Kind: ast.StringValue, Raw: "t"}},
			&ast.Argument{Name: "weight", Value: &ast.Value{Kind: ast.StringValue, Raw: "heavy"}},
		},
	}

	_, err := decodeArguments(schema.NewSchema(""), def, use, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "argument 'weight'")
}

func TestDecodeArguments_ResultIsScopedPerCall(t *testing.T) {
	def := tagDirective()
	use := &schema.FieldDirective{
		Name: "tag",
		Arguments: language.ArgumentList{
			&ast.Argument{Name: "name", Value: &ast.Value{Kind: ast.StringValue, Raw: "t"}},
		},
	}

	first, err := decodeArguments(schema.NewSchema(""), def, use, nil)
	require.NoError(t, err)
	first["name"] = "mutated"

	second, err := decodeArguments(schema.NewSchema(""), def, use, nil)
	require.NoError(t, err)
	require.Equal(t, "t", second.String("name"))
}
