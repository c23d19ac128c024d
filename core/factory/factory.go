package factory

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/go-viper/mapstructure/v2"

	"github.com/kilianp07/picapacity/core/model"
)

// Spec selects a sink kind and holds its raw settings.
type Spec struct {
	Type     string         `json:"type"`
	Settings map[string]any `json:"conf"`
}

// Builder creates a T from raw settings.
type Builder[T any] func(settings map[string]any) (T, error)

// Configured wraps fn so that the raw settings are decoded into C first.
func Configured[C, T any](fn func(C) (T, error)) Builder[T] {
	return func(settings map[string]any) (T, error) {
		var c C
		if err := Decode(settings, &c); err != nil {
			var zero T
			return zero, err
		}
		return fn(c)
	}
}

// Registry maps sink kinds to their builders. It is safe for concurrent use.
type Registry[T any] struct {
	mu       sync.RWMutex
	builders map[string]Builder[T]
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{builders: map[string]Builder[T]{}}
}

// Register binds kind to b. A kind can only be bound once.
func (r *Registry[T]) Register(kind string, b Builder[T]) error {
	if kind == "" || b == nil {
		return fmt.Errorf("%w: sink kind %q needs a name and a builder", model.ErrConfiguration, kind)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.builders[kind]; dup {
		return fmt.Errorf("%w: sink kind %q registered twice", model.ErrConfiguration, kind)
	}
	r.builders[kind] = b
	return nil
}

// Kinds returns the registered sink kinds, sorted.
func (r *Registry[T]) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.builders))
}

// Build runs the builder registered for spec.Type.
func (r *Registry[T]) Build(spec Spec) (T, error) {
	r.mu.RLock()
	b, ok := r.builders[spec.Type]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: unknown sink kind %q, expected one of %v", model.ErrConfiguration, spec.Type, r.Kinds())
	}
	return b(spec.Settings)
}

// BuildAll builds every spec in order and stops at the first failure.
func (r *Registry[T]) BuildAll(specs []Spec) ([]T, error) {
	out := make([]T, 0, len(specs))
	for i, s := range specs {
		v, err := r.Build(s)
		if err != nil {
			return nil, fmt.Errorf("sinks[%d]: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Decode copies settings into out following its json tags. Strings are
// converted to the field type, so PIC_ environment overrides decode the same
// way as their YAML counterparts.
func Decode(settings map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(settings); err != nil {
		return fmt.Errorf("%w: sink settings: %v", model.ErrConfiguration, err)
	}
	return nil
}
