package store

import "sync/atomic"

// Handle shares one immutable DocumentStore between many readers and lets
// a loader swap in a freshly built store when the source documents change.
// Readers always see a complete store: there is no partial state to observe
// because stores are fully built before Swap publishes them.
type Handle struct {
	current atomic.Pointer[DocumentStore]
}

// NewHandle creates a handle serving the given store.
func NewHandle(s *DocumentStore) *Handle {
	h := &Handle{}
	h.current.Store(s)
	return h
}

// Current returns the store snapshot to query against.
func (h *Handle) Current() *DocumentStore {
	return h.current.Load()
}

// Swap atomically replaces the served store.
func (h *Handle) Swap(s *DocumentStore) {
	h.current.Store(s)
}
