// Package notify implements the change-notification registry used by the
// bookmark cache and the stats engine.
//
// Notify takes a snapshot of the registered listeners and invokes them in
// registration order. A listener registered while a notification is being
// delivered is not called for that notification, but it is called for every
// later one. A listener removed mid-delivery is skipped if it has not run yet.
package notify

import (
	"maps"
	"slices"
	"sync"
)

// Listener is invoked after every state change.
type Listener func()

// Registry is a set of listeners. The zero value is ready to use.
type Registry struct {
	listeners map[uint64]Listener
	mu        sync.Mutex
	next      uint64
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (r *Registry) Subscribe(fn Listener) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listeners == nil {
		r.listeners = make(map[uint64]Listener)
	}

	id := r.next
	r.next++
	r.listeners[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		delete(r.listeners, id)
	}
}

// Len returns the number of registered listeners.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.listeners)
}

// Notify calls each listener registered at the time of the call exactly once.
func (r *Registry) Notify() {
	r.mu.Lock()
	ids := slices.Sorted(maps.Keys(r.listeners))
	r.mu.Unlock()

	for _, id := range ids {
		r.mu.Lock()
		fn, ok := r.listeners[id]
		r.mu.Unlock()

		if ok {
			fn()
		}
	}
}
