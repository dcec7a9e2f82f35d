package language

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestGoValue_Literals(t *testing.T) {
	cases := []struct {
		name  string
		value *ast.Value
		want  any
	}{
		{"int", &ast.Value{Kind: ast.IntValue, Raw: "42"}, 42},
		{"float", &ast.Value{Kind: ast.FloatValue, Raw: "1.5"}, 1.5},
		{"string", &ast.Value{Kind: ast.StringValue, Raw: "hi"}, "hi"},
		{"bool", &ast.Value{Kind: ast.BooleanValue, Raw: "true"}, true},
		{"null", &ast.Value{Kind: ast.NullValue, Raw: "null"}, nil},
		{"enum", &ast.Value{Kind: ast.EnumValue, Raw: "ADMIN"}, "ADMIN"},
		{"variable without bindings", &ast.Value{Kind: ast.Variable, Raw: "v"}, nil},
		{
			"list",
			&ast.Value{Kind: ast.ListValue, Children: ast.ChildValueList{
				{Value: &ast.Value{Kind: ast.IntValue, Raw: "1"}},
				{Value: &ast.Value{Kind: ast.IntValue, Raw: "2"}},
			}},
			[]any{1, 2},
		},
		{
			"object",
			&ast.Value{Kind: ast.ObjectValue, Children: ast.ChildValueList{
				{Name: "a", Value: &ast.Value{Kind: ast.StringValue, Raw: "x"}},
			}},
			map[string]any{"a": "x"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, GoValue(tc.value)); diff != "" {
				t.Fatalf("GoValue mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGoValueWithVars(t *testing.T) {
	v := &ast.Value{Kind: ast.Variable, Raw: "role"}
	got := GoValueWithVars(v, map[string]any{"role": "ADMIN"})
	if got != "ADMIN" {
		t.Fatalf("expected bound variable value, got %v", got)
	}
	if got := GoValueWithVars(v, nil); got != nil {
		t.Fatalf("expected nil for unbound variable, got %v", got)
	}
}
