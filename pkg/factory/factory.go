// Package factory builds default instances of named resource types for tests.
package factory

import (
	"github.com/arya-analytics/saki/pkg/resource"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"sort"
	"sync"
)

// ErrUndefined is returned when no builder is defined for a name.
var ErrUndefined = errors.New("[factory] - undefined factory")

// Builder constructs a new instance of a resource.
type Builder func() (resource.Model, error)

// Registry maps resource names to builders. A Registry is safe for concurrent
// use so that packages can define factories from init.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// New returns an empty Registry.
func New() *Registry { return &Registry{builders: make(map[string]Builder)} }

// Define registers b under name. Define panics if name is already defined.
func (r *Registry) Define(name string, b Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.builders[name]; ok {
		panic("[factory] - factory already defined: " + name)
	}
	r.builders[name] = b
}

// Build constructs a default instance of name.
func (r *Registry) Build(name string) (resource.Model, error) {
	r.mu.RLock()
	b, ok := r.builders[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUndefined, "%q", name)
	}
	m, err := b()
	if err != nil {
		return nil, errors.Wrapf(err, "[factory] - failed to build %q", name)
	}
	return m, nil
}

// Names returns the defined names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default is the registry used by the package level functions.
var Default = New()

// Define registers b under name in the Default registry.
func Define(name string, b Builder) { Default.Define(name, b) }

// Build constructs a default instance of name from the Default registry.
func Build(name string) (resource.Model, error) { return Default.Build(name) }

// Record is a generic resource built from a fixture.
type Record struct {
	// ID identifies the record.
	ID resource.ID
	// Attrs holds the fixture attributes.
	Attrs map[string]interface{}
}

// ResourceID implements resource.Model.
func (r Record) ResourceID() resource.ID { return r.ID }

// Attr returns the attribute key.
func (r Record) Attr(key string) (interface{}, bool) {
	v, ok := r.Attrs[key]
	return v, ok
}

// Records returns a Builder that produces a Record of type t with a fresh random
// key on every call.
func Records(t resource.Type, attrs map[string]interface{}) Builder {
	return func() (resource.Model, error) {
		return Record{ID: resource.ID{Type: t, Key: uuid.NewString()}, Attrs: copyAttrs(attrs)}, nil
	}
}

func copyAttrs(attrs map[string]interface{}) map[string]interface{} {
	c := make(map[string]interface{}, len(attrs))
	for k, v := range attrs {
		c[k] = v
	}
	return c
}
