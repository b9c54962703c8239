// Package health defines availability probes for external collaborators.
package health

import "sync"

// Probe reports whether a named collaborator is currently available.
type Probe interface {
	IsAvailable(service string) bool
}

// Registry is a concurrency-safe Probe with explicit registration. Services
// never registered report as unavailable.
type Registry struct {
	mu       sync.RWMutex
	statuses map[string]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{statuses: make(map[string]bool)}
}

// Set records the availability of a service.
func (r *Registry) Set(service string, available bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.statuses[service] = available
}

// IsAvailable implements Probe.
func (r *Registry) IsAvailable(service string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.statuses[service]
}

// Static is a fixed-answer probe, convenient for tests and for deployments
// without a monitoring source.
type Static bool

// IsAvailable implements Probe.
func (s Static) IsAvailable(string) bool {
	return bool(s)
}
