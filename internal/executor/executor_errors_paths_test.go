package executor

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	schema "github.com/fieldgate/fieldgate/internal/schema"
)

func TestErrors_ResolverErrorIsLocated(t *testing.T) {
	sch := &schema.Schema{
		QueryType: "Query",
		Types: map[string]*schema.Type{
			"Query":  {Name: "Query", Kind: schema.TypeKindObject, Fields: []*schema.Field{{Name: "a", Type: schema.NamedType("String")}}},
			"String": {Name: "String", Kind: schema.TypeKindScalar},
		},
	}
	rt := NewMockRuntime(map[string]MockResolver{
		"Query.a": NewMockErrorResolver(errors.New("boom")),
	})
	exec := NewExecutor(rt, sch)

	gotRes := exec.ExecuteRequest(context.Background(), mustParseQuery(t, "{ a }"), "", nil, nil)
	wantRes := &ExecutionResult{
		Data:   map[string]any{"a": nil},
		Errors: []GraphQLError{{Message: "boom", Path: Path{"a"}}},
	}
	if diff := cmp.Diff(wantRes, gotRes); diff != "" {
		t.Fatalf("ExecutionResult mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors_NonNullNullPropagatesToParent(t *testing.T) {
	sch := &schema.Schema{
		QueryType: "Query",
		Types: map[string]*schema.Type{
			"Query": {Name: "Query", Kind: schema.TypeKindObject, Fields: []*schema.Field{
				{Name: "user", Type: schema.NamedType("User")},
			}},
			"User": {Name: "User", Kind: schema.TypeKindObject, Fields: []*schema.Field{
				{Name: "name", Type: schema.NonNullType(schema.NamedType("String"))},
			}},
			"String": {Name: "String", Kind: schema.TypeKindScalar},
		},
	}
	rt := NewMockRuntime(map[string]MockResolver{
		"Query.user": NewMockValueResolver(map[string]any{}),
		"User.name":  NewMockValueResolver(nil),
	})
	exec := NewExecutor(rt, sch)

	gotRes := exec.ExecuteRequest(context.Background(), mustParseQuery(t, "{ user { name } }"), "", nil, nil)
	// The non-null name nullifies the whole user object.
	wantData := map[string]any{"user": nil}
	if diff := cmp.Diff(wantData, gotRes.Data); diff != "" {
		t.Fatalf("Data mismatch (-want +got):\n%s", diff)
	}
	if len(gotRes.Errors) != 1 {
		t.Fatalf("expected one non-null violation, got %+v", gotRes.Errors)
	}
	if diff := cmp.Diff(Path{"user", "name"}, gotRes.Errors[0].Path); diff != "" {
		t.Fatalf("error path mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors_UnknownFieldOmittedFromResult(t *testing.T) {
	sch := &schema.Schema{
		QueryType: "Query",
		Types: map[string]*schema.Type{
			"Query":  {Name: "Query", Kind: schema.TypeKindObject, Fields: []*schema.Field{{Name: "a", Type: schema.NamedType("String")}}},
			"String": {Name: "String", Kind: schema.TypeKindScalar},
		},
	}
	rt := NewMockRuntime(map[string]MockResolver{"Query.a": NewMockValueResolver("A")})
	exec := NewExecutor(rt, sch)

	gotRes := exec.ExecuteRequest(context.Background(), mustParseQuery(t, "{ a nope }"), "", nil, nil)
	wantData := map[string]any{"a": "A"}
	if diff := cmp.Diff(wantData, gotRes.Data); diff != "" {
		t.Fatalf("Data mismatch (-want +got):\n%s", diff)
	}
	if len(gotRes.Errors) != 1 {
		t.Fatalf("expected one unknown-field error, got %+v", gotRes.Errors)
	}
}

func TestErrors_ListItemNonNullPropagation(t *testing.T) {
	sch := &schema.Schema{
		QueryType: "Query",
		Types: map[string]*schema.Type{
			"Query": {Name: "Query", Kind: schema.TypeKindObject, Fields: []*schema.Field{
				{Name: "tags", Type: schema.ListType(schema.NonNullType(schema.NamedType("String")))},
			}},
			"String": {Name: "String", Kind: schema.TypeKindScalar},
		},
	}
	rt := NewMockRuntime(map[string]MockResolver{
		"Query.tags": NewMockValueResolver([]any{"a", nil, "c"}),
	})
	exec := NewExecutor(rt, sch)

	gotRes := exec.ExecuteRequest(context.Background(), mustParseQuery(t, "{ tags }"), "", nil, nil)
	// A null non-null item nullifies the list itself.
	wantData := map[string]any{"tags": nil}
	if diff := cmp.Diff(wantData, gotRes.Data); diff != "" {
		t.Fatalf("Data mismatch (-want +got):\n%s", diff)
	}
	if len(gotRes.Errors) != 1 {
		t.Fatalf("expected one non-null violation, got %+v", gotRes.Errors)
	}
	if diff := cmp.Diff(Path{"tags", 1}, gotRes.Errors[0].Path); diff != "" {
		t.Fatalf("error path mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors_TypenameMetaField(t *testing.T) {
	sch := &schema.Schema{
		QueryType: "Query",
		Types: map[string]*schema.Type{
			"Query":  {Name: "Query", Kind: schema.TypeKindObject, Fields: []*schema.Field{{Name: "a", Type: schema.NamedType("String")}}},
			"String": {Name: "String", Kind: schema.TypeKindScalar},
		},
	}
	rt := NewMockRuntime(map[string]MockResolver{"Query.a": NewMockValueResolver("A")})
	exec := NewExecutor(rt, sch)

	gotRes := exec.ExecuteRequest(context.Background(), mustParseQuery(t, "{ __typename a }"), "", nil, nil)
	wantRes := &ExecutionResult{Data: map[string]any{"__typename": "Query", "a": "A"}, Errors: []GraphQLError{}}
	if diff := cmp.Diff(wantRes, gotRes); diff != "" {
		t.Fatalf("ExecutionResult mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors_AbstractTypeResolution(t *testing.T) {
	sch := &schema.Schema{
		QueryType: "Query",
		Types: map[string]*schema.Type{
			"Query": {Name: "Query", Kind: schema.TypeKindObject, Fields: []*schema.Field{
				{Name: "node", Type: schema.NamedType("Node")},
			}},
			"Node": {Name: "Node", Kind: schema.TypeKindInterface, PossibleTypes: []string{"User"}, Fields: []*schema.Field{
				{Name: "id", Type: schema.NamedType("ID")},
			}},
			"User": {Name: "User", Kind: schema.TypeKindObject, Interfaces: []string{"Node"}, Fields: []*schema.Field{
				{Name: "id", Type: schema.NamedType("ID")},
				{Name: "name", Type: schema.NamedType("String")},
			}},
			"ID":     {Name: "ID", Kind: schema.TypeKindScalar},
			"String": {Name: "String", Kind: schema.TypeKindScalar},
		},
	}
	rt := NewMockRuntime(map[string]MockResolver{
		"Query.node": NewMockValueResolver(map[string]any{"__typename": "User", "id": "1", "name": "dotan"}),
		"User.id":    NewMockValueResolver("1"),
		"User.name":  NewMockValueResolver("dotan"),
	})
	exec := NewExecutor(rt, sch)

	doc := mustParseQuery(t, "{ node { id ... on User { name } } }")
	gotRes := exec.ExecuteRequest(context.Background(), doc, "", nil, nil)
	wantRes := &ExecutionResult{
		Data:   map[string]any{"node": map[string]any{"id": "1", "name": "dotan"}},
		Errors: []GraphQLError{},
	}
	if diff := cmp.Diff(wantRes, gotRes); diff != "" {
		t.Fatalf("ExecutionResult mismatch (-want +got):\n%s", diff)
	}
}
