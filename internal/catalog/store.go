package catalog

import "sync"

// Store owns the item collection for the lifetime of the process. Appends
// are serialized; readers always observe fully constructed items in
// insertion order.
type Store struct {
	mu    sync.RWMutex
	items []Item
}

// NewStore builds an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Append adds a fully constructed item to the collection.
func (s *Store) Append(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// List returns items in insertion order. When house is non-empty only items
// whose House field equals it exactly are returned. The result is a copy.
func (s *Store) List(house string) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if house != "" && item.House != house {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Len reports the number of stored items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
