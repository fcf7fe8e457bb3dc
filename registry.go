package binrec

import "sync"

// Registry caches compiled schemas by declaration name so each distinct
// structure is compiled once and its Schema shared by every Reader built
// from it. A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Schema
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]*Schema{}}
}

// Compile returns the cached Schema for def.Name, compiling def on first
// use. Subsequent calls with the same name return the originally compiled
// Schema regardless of the declaration passed; failed compilations are not
// cached.
func (r *Registry) Compile(def Struct, opts ...func(*CompileOptions)) (*Schema, error) {
	if def.Name == "" {
		return nil, &ConfigurationError{Reason: "registry schemas require a name"}
	}

	r.mu.RLock()
	s, ok := r.entries[def.Name]
	r.mu.RUnlock()
	if ok {
		return s, nil
	}

	compiled, err := Compile(def, opts...)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.entries[def.Name]; ok {
		return s, nil
	}
	r.entries[def.Name] = compiled
	return compiled, nil
}

// Lookup returns the cached Schema for name, if any.
func (r *Registry) Lookup(name string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.entries[name]
	return s, ok
}
