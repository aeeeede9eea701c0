package prototype

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/sasha-s/go-deadlock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Registry holds one canonical JobConfig per key and hands out deep clones.
//
// The zero value is not usable; construct with NewRegistry. A Registry has
// caller-managed lifetime: build one at startup and pass it to whoever
// needs templates. Access is guarded by an RW mutex so a registry shared
// across goroutines stays consistent.
type Registry struct {
	mu        deadlock.RWMutex
	templates map[string]*JobConfig

	registers metric.Int64Counter
	hits      metric.Int64Counter
	misses    metric.Int64Counter
}

// NewRegistry constructs an empty template registry.
func NewRegistry() *Registry {
	meter := otel.Meter("github.com/Jorgeamayapabon/design-patterns/prototype")
	registers, _ := meter.Int64Counter("prototype.registry.registers",
		metric.WithDescription("Templates registered (including overwrites)"))
	hits, _ := meter.Int64Counter("prototype.registry.hits",
		metric.WithDescription("Successful template lookups"))
	misses, _ := meter.Int64Counter("prototype.registry.misses",
		metric.WithDescription("Template lookups for unknown keys"))

	return &Registry{
		templates: make(map[string]*JobConfig),
		registers: registers,
		hits:      hits,
		misses:    misses,
	}
}

// Register stores template as the canonical instance for key, replacing any
// prior instance for the same key. The registry keeps the given pointer as
// its source of truth and never mutates it; callers that keep mutating the
// template after registration should register a Clone instead.
func (r *Registry) Register(key string, template *JobConfig) {
	r.mu.Lock()
	r.templates[key] = template
	r.mu.Unlock()

	r.registers.Add(context.Background(), 1)
}

// Get returns a deep clone of the template registered under key. The
// canonical instance is never returned directly and never mutated by a
// lookup. Returns ErrNotFound when the key was never registered.
func (r *Registry) Get(key string) (*JobConfig, error) {
	r.mu.RLock()
	template, ok := r.templates[key]
	r.mu.RUnlock()

	if !ok {
		r.misses.Add(context.Background(), 1)
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	r.hits.Add(context.Background(), 1)
	return template.Clone(), nil
}

// Remove drops the template registered under key. Returns true if a
// template was present.
func (r *Registry) Remove(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.templates[key]
	if ok {
		delete(r.templates, key)
	}
	return ok
}

// Clear removes all templates.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates = make(map[string]*JobConfig)
}

// Keys returns all registered template keys.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.templates))
	for k := range r.templates {
		out = append(out, k)
	}
	return out
}

// Count returns the number of registered templates.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// Schema returns a JSON Schema description of the template type, useful for
// documenting or validating manifests.
func (r *Registry) Schema() map[string]any {
	return typeToSchema(reflect.TypeOf(JobConfig{}))
}

// typeToSchema converts a reflect.Type to a JSON schema map.
func typeToSchema(t reflect.Type) map[string]any {
	reflector := jsonschema.Reflector{
		ExpandedStruct:            true,
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(reflect.New(t).Interface())

	fallback := map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}

	data, err := json.Marshal(schema)
	if err != nil {
		return fallback
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(data, &schemaMap); err != nil {
		return fallback
	}

	if _, ok := schemaMap["type"]; !ok {
		schemaMap["type"] = "object"
	}
	if _, ok := schemaMap["properties"]; !ok {
		schemaMap["properties"] = map[string]any{}
	}
	return schemaMap
}
