package executor

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	schema "github.com/fieldgate/fieldgate/internal/schema"
)

// funcInterceptor adapts a plain function to FieldInterceptor for tests.
type funcInterceptor func(ctx context.Context, info *ResolveInfo) (ResultTransform, error)

func (f funcInterceptor) Intercept(ctx context.Context, info *ResolveInfo) (ResultTransform, error) {
	return f(ctx, info)
}

func interceptTestSchema() *schema.Schema {
	return &schema.Schema{
		QueryType: "Query",
		Types: map[string]*schema.Type{
			"Query": {Name: "Query", Kind: schema.TypeKindObject, Fields: []*schema.Field{
				{Name: "a", Type: schema.NamedType("String")},
				{Name: "b", Type: schema.NamedType("String")},
			}},
			"String": {Name: "String", Kind: schema.TypeKindScalar},
		},
	}
}

func TestIntercept_TransformAppliedToResolverResult(t *testing.T) {
	rt := NewMockRuntime(map[string]MockResolver{"Query.a": NewMockValueResolver("dotan")})
	upper := funcInterceptor(func(ctx context.Context, info *ResolveInfo) (ResultTransform, error) {
		if info.FieldName() != "a" {
			return nil, nil
		}
		return func(v any) any {
			if s, ok := v.(string); ok {
				return s + "!"
			}
			return v
		}, nil
	})
	exec := NewExecutor(rt, interceptTestSchema(), upper)

	gotRes := exec.ExecuteRequest(context.Background(), mustParseQuery(t, "{ a }"), "", nil, nil)
	wantRes := &ExecutionResult{Data: map[string]any{"a": "dotan!"}, Errors: []GraphQLError{}}
	if diff := cmp.Diff(wantRes, gotRes); diff != "" {
		t.Fatalf("ExecutionResult mismatch (-want +got):\n%s", diff)
	}
}

func TestIntercept_ErrorAbortsFieldOnly(t *testing.T) {
	rt := NewMockRuntime(map[string]MockResolver{
		"Query.a": NewMockValueResolver("A"),
		"Query.b": NewMockValueResolver("B"),
	})
	deny := funcInterceptor(func(ctx context.Context, info *ResolveInfo) (ResultTransform, error) {
		if info.FieldName() == "a" {
			return nil, GraphQLError{Message: "denied", Extensions: map[string]any{"code": "UNAUTHORIZED"}}
		}
		return nil, nil
	})
	exec := NewExecutor(rt, interceptTestSchema(), deny)

	gotRes := exec.ExecuteRequest(context.Background(), mustParseQuery(t, "{ a b }"), "", nil, nil)
	wantRes := &ExecutionResult{
		Data: map[string]any{"a": nil, "b": "B"},
		Errors: []GraphQLError{{
			Message:    "denied",
			Path:       Path{"a"},
			Extensions: map[string]any{"code": "UNAUTHORIZED"},
		}},
	}
	if diff := cmp.Diff(wantRes, gotRes); diff != "" {
		t.Fatalf("ExecutionResult mismatch (-want +got):\n%s", diff)
	}

	// The rejected field's resolver must never run.
	for _, call := range rt.Calls() {
		if call.Field == "a" {
			t.Fatalf("resolver ran for rejected field: %+v", call)
		}
	}
}

func TestIntercept_TransformsApplyInInstallationOrder(t *testing.T) {
	rt := NewMockRuntime(map[string]MockResolver{"Query.a": NewMockValueResolver("x")})
	mark := func(suffix string) funcInterceptor {
		return func(ctx context.Context, info *ResolveInfo) (ResultTransform, error) {
			return func(v any) any { return v.(string) + suffix }, nil
		}
	}
	exec := NewExecutor(rt, interceptTestSchema(), mark("-1"), mark("-2"))

	gotRes := exec.ExecuteRequest(context.Background(), mustParseQuery(t, "{ a }"), "", nil, nil)
	want := "x-1-2"
	if got := gotRes.Data.(map[string]any)["a"]; got != want {
		t.Fatalf("expected %q after ordered transforms, got %q", want, got)
	}
}

func TestIntercept_ErrorSkipsLaterInterceptors(t *testing.T) {
	rt := NewMockRuntime(map[string]MockResolver{"Query.a": NewMockValueResolver("A")})
	secondRan := false
	first := funcInterceptor(func(ctx context.Context, info *ResolveInfo) (ResultTransform, error) {
		return nil, GraphQLError{Message: "nope"}
	})
	second := funcInterceptor(func(ctx context.Context, info *ResolveInfo) (ResultTransform, error) {
		secondRan = true
		return nil, nil
	})
	exec := NewExecutor(rt, interceptTestSchema(), first, second)

	gotRes := exec.ExecuteRequest(context.Background(), mustParseQuery(t, "{ a }"), "", nil, nil)
	if len(gotRes.Errors) != 1 || gotRes.Errors[0].Message != "nope" {
		t.Fatalf("expected the first interceptor's error, got %+v", gotRes.Errors)
	}
	if secondRan {
		t.Fatal("second interceptor ran after the first aborted the field")
	}
	if len(rt.Calls()) != 0 {
		t.Fatalf("resolver ran after interception aborted, calls: %+v", rt.Calls())
	}
}

func TestIntercept_ResolveInfoContents(t *testing.T) {
	rt := NewMockRuntime(map[string]MockResolver{"Query.a": NewMockValueResolver("A")})
	var seen *ResolveInfo
	spy := funcInterceptor(func(ctx context.Context, info *ResolveInfo) (ResultTransform, error) {
		seen = info
		return nil, nil
	})
	sch := interceptTestSchema()
	exec := NewExecutor(rt, sch, spy)

	root := map[string]any{"root": true}
	exec.ExecuteRequest(context.Background(), mustParseQuery(t, "{ a }"), "", nil, root)

	if seen == nil {
		t.Fatal("interceptor was not invoked")
	}
	if seen.Schema != sch {
		t.Error("ResolveInfo.Schema is not the executing schema")
	}
	if seen.ParentType == nil || seen.ParentType.Name != "Query" {
		t.Errorf("ResolveInfo.ParentType = %+v, want Query", seen.ParentType)
	}
	if seen.Field == nil || seen.Field.Name != "a" {
		t.Errorf("ResolveInfo.Field = %+v, want declaration of 'a'", seen.Field)
	}
	if diff := cmp.Diff(Path{"a"}, seen.Path); diff != "" {
		t.Errorf("ResolveInfo.Path mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(root, seen.Source); diff != "" {
		t.Errorf("ResolveInfo.Source mismatch (-want +got):\n%s", diff)
	}
	if seen.Args == nil {
		t.Error("ResolveInfo.Args must be non-nil even without arguments")
	}
}
