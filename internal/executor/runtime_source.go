package executor

import (
	"context"
	"fmt"
	"sync"
)

// ResolverFunc resolves one field. Registered on a SourceRuntime under
// "ObjectType.field" keys.
type ResolverFunc func(ctx context.Context, source any, args map[string]any) (any, error)

// SourceRuntime is a Runtime that projects fields straight out of map-shaped
// source values, with optional per-field resolver overrides. It backs the
// serve command and the examples, where data is a JSON document rather than a
// remote service.
type SourceRuntime struct {
	mu        sync.RWMutex
	resolvers map[string]ResolverFunc
}

func NewSourceRuntime() *SourceRuntime {
	return &SourceRuntime{resolvers: make(map[string]ResolverFunc)}
}

// Register installs a resolver for objectType.field, replacing any projection
// from the source map.
func (r *SourceRuntime) Register(objectType, field string, fn ResolverFunc) *SourceRuntime {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolvers[objectType+"."+field] = fn
	return r
}

// Resolve implements Runtime. Without a registered resolver the field value
// is looked up by name in the source map; absent keys resolve to null.
func (r *SourceRuntime) Resolve(ctx context.Context, objectType string, field string, source any, args map[string]any) (any, error) {
	r.mu.RLock()
	fn := r.resolvers[objectType+"."+field]
	r.mu.RUnlock()
	if fn != nil {
		return fn(ctx, source, args)
	}
	if m, ok := source.(map[string]any); ok {
		return m[field], nil
	}
	return nil, nil
}

// ResolveType implements Runtime via the conventional __typename key.
func (r *SourceRuntime) ResolveType(ctx context.Context, abstractType string, value any) (string, error) {
	if m, ok := value.(map[string]any); ok {
		if typename, ok := m["__typename"].(string); ok {
			return typename, nil
		}
	}
	return "", fmt.Errorf("cannot resolve concrete type for abstract type %s", abstractType)
}

// SerializeLeafValue implements Runtime. JSON-decoded values are already
// JSON-safe; everything else passes through for the encoder to handle.
func (r *SourceRuntime) SerializeLeafValue(ctx context.Context, scalarOrEnumTypeName string, value any) (any, error) {
	return value, nil
}
