package workspace

import "sync"

// Registry keeps one Store per signed-in user.
type Registry struct {
	mu           sync.Mutex
	stores       map[string]*Store
	discardStale bool
}

func NewRegistry(discardStale bool) *Registry {
	return &Registry{stores: make(map[string]*Store), discardStale: discardStale}
}

// For returns the user's store, creating an empty one on first use.
func (r *Registry) For(userID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stores[userID]
	if !ok {
		s = NewStore(r.discardStale)
		r.stores[userID] = s
	}
	return s
}

// Remove resets and forgets the user's store.
func (r *Registry) Remove(userID string) {
	r.mu.Lock()
	s, ok := r.stores[userID]
	delete(r.stores, userID)
	r.mu.Unlock()
	if ok {
		s.Reset()
	}
}

// Len reports how many users have a workspace.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}
