package entity

import "sync"

// Attributes is a set of named values that animations can read and write.
// It is safe for concurrent use, so state can be read while a driver writes.
type Attributes struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewAttributes creates Attributes holding a copy of values.
func NewAttributes(values map[string]any) *Attributes {
	a := new(Attributes)
	a.values = make(map[string]any, len(values))
	for k, v := range values {
		a.values[k] = v
	}
	return a
}

// Get returns the named value, or nil.
func (a *Attributes) Get(name string) any {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.values[name]
}

// Set stores a value.
func (a *Attributes) Set(name string, value any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.values[name] = value
}

// Has reports whether the name is present.
func (a *Attributes) Has(name string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.values[name]
	return ok
}

// Delete removes the named value.
func (a *Attributes) Delete(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.values, name)
}

// Snapshot returns a copy of all values.
func (a *Attributes) Snapshot() map[string]any {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make(map[string]any, len(a.values))
	for k, v := range a.values {
		out[k] = v
	}
	return out
}
