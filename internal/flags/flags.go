// Package flags tracks which conversations are flagged as important and fans
// the toggles out to subscribers.
package flags

import "sync"

// Registry is an in-memory important-conversation ledger. Every toggle
// notifies all current subscribers synchronously, in subscription order,
// before Toggle returns.
type Registry struct {
	mu        sync.Mutex
	important map[string]bool
	subs      map[int]func(conversationID string, important bool)
	nextSub   int
}

func NewRegistry() *Registry {
	return &Registry{
		important: make(map[string]bool),
		subs:      make(map[int]func(string, bool)),
	}
}

func (r *Registry) Toggle(conversationID string) bool {
	r.mu.Lock()
	state := !r.important[conversationID]
	if state {
		r.important[conversationID] = true
	} else {
		delete(r.important, conversationID)
	}

	callbacks := make([]func(string, bool), 0, len(r.subs))
	for id := 0; id < r.nextSub; id++ {
		if cb, ok := r.subs[id]; ok {
			callbacks = append(callbacks, cb)
		}
	}
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb(conversationID, state)
	}
	return state
}

func (r *Registry) IsImportant(conversationID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.important[conversationID]
}

// Subscribe registers a callback for future toggles and returns the
// unsubscribe function. Callbacks run on the goroutine that called Toggle.
func (r *Registry) Subscribe(fn func(conversationID string, important bool)) func() {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}
