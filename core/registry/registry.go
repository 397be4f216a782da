// Package registry holds the process-wide store behind the extension
// registries (cmd, cron, api routes, graphql resolvers).
package registry

import (
	"sync"
)

// Registry is a keyed store whose keys can be sealed after init. Once a
// key is locked, registration helpers built on top of it panic instead of
// racing with request handling.
type Registry struct {
	values sync.Map
	sealed sync.Map
}

// GlobalRegistry is the shared process instance.
var GlobalRegistry = &Registry{}

// GetGlobal returns the value stored under key.
func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	return r.values.Load(key)
}

// SetGlobal stores a value under key. Callers check IsLocked first.
func (r *Registry) SetGlobal(key string, value interface{}) {
	r.values.Store(key, value)
}

// Lock seals a key against further writes.
func (r *Registry) Lock(key string) {
	r.sealed.Store(key, struct{}{})
}

// IsLocked reports whether key has been sealed.
func (r *Registry) IsLocked(key string) bool {
	_, ok := r.sealed.Load(key)
	return ok
}

// UnlockForTesting reopens a sealed key. Tests only.
func (r *Registry) UnlockForTesting(key string) {
	r.sealed.Delete(key)
}
